// Package validator 요청 DTO 검증에 사용하는 공용 validator 인스턴스와 한글 에러 메시지 변환을 제공합니다.
package validator

import (
	"fmt"
	"reflect"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

// DateLayout 날짜 필드가 따라야 하는 형식 (YYYY-MM-DD)
const DateLayout = time.DateOnly

const (
	tagKorean    = "korean"
	tagNotFuture = "notfuture"
)

var (
	instance *validator.Validate
	once     sync.Once

	// now 테스트에서 기준 시각을 고정할 수 있도록 변수로 둡니다.
	now = time.Now
)

// Get 초기화된 validator 싱글톤 인스턴스를 반환합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지에 korean 태그 값을 필드명으로 사용하고, 없으면 snake_case 필드명을 사용합니다.
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get(tagKorean); name != "" {
				return name
			}
			return strcase.ToSnake(fld.Name)
		})

		// notfuture: YYYY-MM-DD 형식의 날짜가 오늘 이후가 아니어야 합니다.
		_ = instance.RegisterValidation(tagNotFuture, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			d, err := time.ParseInLocation(DateLayout, s, time.Local)
			if err != nil {
				return false
			}
			return !d.After(now())
		})
	})

	return instance
}

// Struct 구조체의 validate 태그를 기반으로 검증합니다.
func Struct(s interface{}) error {
	return Get().Struct(s)
}

// FormatValidationError validator 에러를 사용자에게 보여줄 한글 메시지로 변환합니다.
// 여러 필드가 실패한 경우 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}

	return formatFieldError(errs[0])
}

func formatFieldError(fe validator.FieldError) string {
	field := withTopicParticle(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 필수입니다", field)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s 최소 %s자 이상이어야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s %s 이상이어야 합니다", field, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s 최대 %s자까지 입력 가능합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s %s 이하이어야 합니다", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s %s보다 커야 합니다", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s %s 형식이어야 합니다", field, "YYYY-MM-DD")
	case tagNotFuture:
		return fmt.Sprintf("%s 미래 날짜일 수 없습니다", field)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", fe.Field(), fe.Tag())
	}
}

// withTopicParticle 마지막 글자의 받침 유무에 따라 보조사 '은/는'을 붙입니다.
// 한글이 아닌 글자로 끝나면 '는'을 사용합니다.
func withTopicParticle(word string) string {
	r, _ := utf8.DecodeLastRuneInString(word)
	if r >= 0xAC00 && r <= 0xD7A3 && (r-0xAC00)%28 != 0 {
		return word + "은"
	}
	return word + "는"
}
