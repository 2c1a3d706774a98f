package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// telegramBotTokenRegex 예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 설정 검증용 Validator를 생성하고 커스텀 규칙을 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 설정 파일의 키 이름(json 태그)을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return validation.ValidateCronExpression(fl.Field().String()) == nil
	})
	mustRegister(v, "telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenRegex.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 검증하고, 첫 번째 실패 항목을 설정 키 기준의 한글 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 스케줄(%s) 형식이 올바르지 않습니다: '%v' (예: 0 0 3 * * *)", contextName, fe.Field(), fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "required_if", "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 설정은 필수입니다", contextName, fe.Field()))
	case "file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s에 지정된 파일을 찾을 수 없습니다: '%v'", contextName, fe.Field(), fe.Value()))
	case "min", "max":
		if fe.Field() == "listen_port" {
			return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
		}
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}
