package middleware

import (
	"io"

	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 프레임워크 내부 로그의 컴포넌트 이름
const componentEcho = "api.echo"

// Logger Echo의 log.Logger 인터페이스를 애플리케이션 로거 위에 구현한 어댑터입니다.
// Echo 내부 로그(서버 시작 실패 등)도 애플리케이션 로그와 같은 형식과 출력 대상으로 기록됩니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", componentEcho)
}

func (l Logger) Output() io.Writer { return l.Logger.Out }

// Prefix, SetPrefix, SetHeader Echo 고유 기능으로 사용하지 않습니다.
func (l Logger) Prefix() string   { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 애플리케이션 로그 레벨을 Echo 로그 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF입니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel Echo 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) Print(i ...interface{})                    { l.entry().Print(i...) }
func (l Logger) Printf(format string, args ...interface{}) { l.entry().Printf(format, args...) }
func (l Logger) Printj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...interface{})                    { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...interface{})                    { l.entry().Info(i...) }
func (l Logger) Infof(format string, args ...interface{}) { l.entry().Infof(format, args...) }
func (l Logger) Infoj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...interface{})                    { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, args ...interface{}) { l.entry().Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...interface{})                    { l.entry().Error(i...) }
func (l Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...interface{})                    { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, args ...interface{}) { l.entry().Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...interface{})                    { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, args ...interface{}) { l.entry().Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Panic() }
