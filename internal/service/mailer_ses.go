// internal/service/mailer_ses.go
package service

import (
	"context"
	"log/slog"

	"skillsphere/internal/config"
	"skillsphere/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer は AWS SES で送信する本番用実装です
type SESMailer struct {
	client *sesv2.Client
	cfg    *config.SESConfig
}

// NewSESMailer は設定に応じて認証方法を切り替えてSESクライアントを生成します
func NewSESMailer(cfg *config.Config) Mailer {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.SES.Region))

	switch cfg.SES.AuthType {
	case "static_credentials":
		slog.Info("Configuring SES with static credentials.")
		if cfg.SES.AccessKeyID == "" || cfg.SES.SecretAccessKey == "" {
			slog.Error("SES auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 設定ミスは起動時に落として気づかせる
			panic("missing static credentials for SES")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.SES.AccessKeyID,
			cfg.SES.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		// SDKが実行環境から認証情報を解決する
		slog.Info("Configuring SES with IAM Role credentials.")

	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.SES.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for SES", "error", err)
		panic(err)
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		cfg:    &cfg.SES,
	}
}

// Send は AWS SES を使用してメールを送信します
func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.cfg.From),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", to)
		return err
	}

	logger.Info("Email sent successfully via SES", "to", to, "subject", subject)
	return nil
}
