// Package log 애플리케이션 전역에서 사용하는 구조화 로깅 기능을 제공합니다.
//
// 내부적으로 logrus를 사용하며, 호출하는 쪽에서 logrus를 직접 import 하지 않도록
// 주요 타입과 레벨을 별칭으로 다시 노출합니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

// componentKey 모든 로그에 공통으로 붙는 컴포넌트 식별 필드명
const componentKey = "component"

// WithComponent 지정된 컴포넌트 이름이 필드로 설정된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields 컴포넌트 이름과 추가 필드가 함께 설정된 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//   - true: TraceLevel
//   - false: InfoLevel
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger 전역 로거 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// GetLevel 현재 전역 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// SetLevel 전역 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetOutput 전역 로거의 기본 출력 대상을 변경합니다. 주로 테스트에서 사용합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// Info, Warn, Error 등은 컴포넌트 정보가 필요 없는 일회성 로그를 위한 단축 함수입니다.
func Info(args ...interface{})  { logrus.Info(args...) }
func Warn(args ...interface{})  { logrus.Warn(args...) }
func Error(args ...interface{}) { logrus.Error(args...) }
func Debug(args ...interface{}) { logrus.Debug(args...) }
func Fatal(args ...interface{}) { logrus.Fatal(args...) }
