package middleware

import (
	"bytes"
	"encoding/json"
	"testing"

	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return Logger{Logger: l}, buf
}

func TestLogger_ImplementsEchoLogger(t *testing.T) {
	var _ echo.Logger = Logger{}
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		level  applog.Level
		expect log.Lvl
	}{
		{"Trace는 DEBUG", applog.TraceLevel, log.DEBUG},
		{"Debug", applog.DebugLevel, log.DEBUG},
		{"Info", applog.InfoLevel, log.INFO},
		{"Warn", applog.WarnLevel, log.WARN},
		{"Error", applog.ErrorLevel, log.ERROR},
		{"Fatal은 OFF", applog.FatalLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newTestAdapter()
			l.Logger.SetLevel(tt.level)
			assert.Equal(t, tt.expect, l.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  log.Lvl
		expect applog.Level
	}{
		{"DEBUG", log.DEBUG, applog.DebugLevel},
		{"INFO", log.INFO, applog.InfoLevel},
		{"WARN", log.WARN, applog.WarnLevel},
		{"ERROR", log.ERROR, applog.ErrorLevel},
		{"OFF는 무시", log.OFF, applog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newTestAdapter()
			l.SetLevel(tt.input)
			assert.Equal(t, tt.expect, l.Logger.GetLevel())
		})
	}
}

func TestLogger_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    func(Logger)
		wantMsg   string
		wantLevel string
	}{
		{"Print", func(l Logger) { l.Print("print") }, "print", "info"},
		{"Printf", func(l Logger) { l.Printf("print %d", 1) }, "print 1", "info"},
		{"Debug", func(l Logger) { l.Debug("debug") }, "debug", "debug"},
		{"Debugf", func(l Logger) { l.Debugf("debug %s", "msg") }, "debug msg", "debug"},
		{"Info", func(l Logger) { l.Info("info") }, "info", "info"},
		{"Infof", func(l Logger) { l.Infof("info %s", "formatted") }, "info formatted", "info"},
		{"Warn", func(l Logger) { l.Warn("warn") }, "warn", "warning"},
		{"Warnf", func(l Logger) { l.Warnf("warn %d", 123) }, "warn 123", "warning"},
		{"Error", func(l Logger) { l.Error("error") }, "error", "error"},
		{"Errorf", func(l Logger) { l.Errorf("error %v", true) }, "error true", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := newTestAdapter()
			tt.action(l)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantMsg, entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "api.echo", entry["component"])
		})
	}
}

func TestLogger_JSONMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    func(Logger)
		wantLevel string
	}{
		{"Printj", func(l Logger) { l.Printj(log.JSON{"key": "value"}) }, "info"},
		{"Debugj", func(l Logger) { l.Debugj(log.JSON{"key": "value"}) }, "debug"},
		{"Infoj", func(l Logger) { l.Infoj(log.JSON{"key": "value"}) }, "info"},
		{"Warnj", func(l Logger) { l.Warnj(log.JSON{"key": "value"}) }, "warning"},
		{"Errorj", func(l Logger) { l.Errorj(log.JSON{"key": "value"}) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := newTestAdapter()
			tt.action(l)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "value", entry["key"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestLogger_Panic(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()
	assert.Panics(t, func() { l.Panic("boom") })
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_OutputAndNoops(t *testing.T) {
	t.Parallel()

	l, buf := newTestAdapter()
	assert.Same(t, buf, l.Output())

	other := new(bytes.Buffer)
	l.SetOutput(other)
	assert.Same(t, other, l.Output())

	l.SetPrefix("ignored")
	l.SetHeader("ignored")
	assert.Empty(t, l.Prefix())
}
