package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup()은 프로세스 생명주기 동안 한 번만 실행됩니다.
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 두 번째 이후의 호출은 최초 호출의 결과(Closer, 에러)를 그대로 반환합니다.
// 반환된 Closer는 프로세스 종료 직전에 반드시 Close 해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	newRotator := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, fmt.Sprintf("%s.%s", name, fileExt)),
			MaxSize:    orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}
	main := newRotator("")
	h.mainWriter = main
	closers := []io.Closer{main}

	if opts.EnableCriticalLog {
		critical := newRotator("critical")
		h.criticalWriter = critical
		closers = append(closers, critical)
	}
	if opts.EnableVerboseLog {
		verbose := newRotator("verbose")
		h.verboseWriter = verbose
		closers = append(closers, verbose)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	// 실제 출력은 모두 hook이 담당합니다. 기본 출력은 버리고 포맷팅 비용도 없앱니다.
	logrus.SetOutput(io.Discard)
	logrus.SetFormatter(silentFormatter{})
	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal 로그로 os.Exit 되기 직전에 버퍼를 비웁니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// hook 로그 레벨에 따라 로그를 파일별로 분배합니다.
//
//   - 콘솔: 모든 레벨
//   - critical: ERROR 이상 (main에도 함께 기록)
//   - verbose: DEBUG 이하 (설정된 경우 main에는 기록하지 않음)
//   - main: INFO 이상, verbose 파일이 없으면 모든 레벨
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var errs error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			errs = errors.Join(errs, err)
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "Critical")
	}

	if entry.Level >= DebugLevel && h.verboseWriter != nil {
		write(h.verboseWriter, "Verbose")
		return errs
	}

	write(h.mainWriter, "Main")

	return errs
}

// Close 이후의 모든 로그 기록 요청을 무시합니다.
func (h *hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}

// closer hook을 먼저 닫은 뒤 모든 로그 파일을 닫습니다. 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer
	hook    *hook
	closed  atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// silentFormatter 기본 출력용 포맷터로, 아무것도 출력하지 않습니다.
type silentFormatter struct{}

func (silentFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}
