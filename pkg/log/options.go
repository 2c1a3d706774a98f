package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명에 사용되는 애플리케이션 식별자
	Dir   string // 로그 파일 저장 디렉토리 (기본값: "logs")
	Level Level  // 로그 레벨 (0이면 InfoLevel)

	MaxAge     int // 로테이션된 파일 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 로테이션 파일 최대 보관 개수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상 로그를 별도 파일(*.critical.log)에도 기록
	EnableVerboseLog  bool // DEBUG 이하 로그를 별도 파일(*.verbose.log)로 분리
	EnableConsoleLog  bool // 표준 출력으로도 로그를 출력

	ReportCaller     bool   // 로그 호출 위치(함수명:라인) 기록 여부
	CallerPathPrefix string // 호출 위치 출력 시 잘라낼 패키지 경로 prefix
}

// Validate Options의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
// 모든 로그를 하나의 파일과 콘솔에 함께 출력합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller: true,
	}
}
