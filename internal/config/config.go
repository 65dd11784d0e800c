// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials / iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		QuizPageSize int `mapstructure:"quiz_page_size"` // 1回の出題数
	} `mapstructure:"app"`
	JWT struct {
		SecretKey     string `mapstructure:"secret_key"`
		ExpiryMinutes int    `mapstructure:"expiry_minutes"`
	} `mapstructure:"jwt"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Mailer struct {
		Type string `mapstructure:"type"` // log / smtp / ses
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.QuizPageSize <= 0 {
		log.Printf("Quiz page size not set or invalid, using default '%d'", DefaultQuizPageSize)
		Cfg.App.QuizPageSize = DefaultQuizPageSize
	}
	if Cfg.JWT.ExpiryMinutes <= 0 {
		Cfg.JWT.ExpiryMinutes = DefaultJWTExpiryMinutes
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Quiz Page Size: %d", Cfg.App.QuizPageSize)

	return nil
}
