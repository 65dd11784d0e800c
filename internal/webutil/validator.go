// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"username":   "ユーザー名",
	"email":      "メールアドレス",
	"password":   "パスワード",
	"name":       "名前",
	"progress":   "進捗",
	"difficulty": "難易度",
	"answers":    "回答",
	"title":      "タイトル",
	"message":    "メッセージ",
	"status":     "ステータス",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// タグごとのメッセージを登録するヘルパー
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("oneof", "{0}に許可されていない値が指定されています。")
}
