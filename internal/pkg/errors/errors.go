// Package errors ErrorType 기반으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 계층마다 다른 에러 타입을 쓰는 대신, 모든 계층이 AppError를 만들고 Wrap으로
// 컨텍스트를 누적합니다. HTTP 계층은 UnderlyingType으로 원래 분류를 꺼내
// 상태 코드를 결정합니다.
//
//	farm, found, err := repo.FindByID(ctx, id)
//	if err != nil {
//	    return Farm{}, errors.Wrap(err, errors.System, "농장 조회에 실패했습니다")
//	}
//	if !found {
//	    return Farm{}, errors.Newf(errors.NotFound, "농장을 찾을 수 없습니다 (id=%d)", id)
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType), 메시지, 원인 에러, 생성 위치의 스택을 함께 보관합니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 원인 에러를 제외한 메시지만 반환합니다. 클라이언트 응답에 사용됩니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러가 생성된 위치의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v 사용 시 에러 체인과 스택 트레이스를 함께 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			// 스택은 체인의 끝(또는 외부 에러와의 경계)에서 한 번만 출력합니다.
			var inner *AppError
			if e.cause == nil || !errors.As(e.cause, &inner) {
				if len(e.stack) > 0 {
					fmt.Fprint(s, "\nStack trace:")
					for _, f := range e.stack {
						fn := f.Function
						if i := strings.LastIndex(fn, "/"); i != -1 {
							fn = fn[i+1:]
						}
						fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
					}
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap 기존 에러에 분류와 메시지를 덧붙입니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열을 사용하는 Wrap입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(callerSkip),
	}
}

// Is 에러 체인의 어느 AppError든 주어진 타입이면 true를 반환합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As 표준 errors.As의 래퍼입니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 타입을 반환합니다.
// AppError가 없으면 Unknown입니다.
//
//	err := Wrap(New(NotFound, "농장 없음"), Internal, "수정 실패")
//	UnderlyingType(err) // NotFound
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
		err = errors.Unwrap(err)
	}
	return t
}
