package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultListenPort 기본 HTTP 포트
	DefaultListenPort = 8080

	// DefaultRequestTimeout HTTP 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = "60s"

	// DefaultRateLimitPerSecond, DefaultRateLimitBurst IP별 요청 제한 기본값
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40

	// DefaultStoragePath SQLite 데이터베이스 파일 경로
	DefaultStoragePath = "data/farm.db"

	// DefaultMaxOpenConns 데이터베이스 최대 동시 연결 수
	DefaultMaxOpenConns = 4

	// DefaultBackupTimeSpec 매일 03:00:00에 백업합니다.
	DefaultBackupTimeSpec = "0 0 3 * * *"

	// DefaultBackupDir 백업 파일 저장 디렉터리
	DefaultBackupDir = "data/backup"

	// DefaultBackupKeep 보관할 최신 백업 파일 수
	DefaultBackupKeep = 7
)

// AppConfig 애플리케이션의 모든 설정을 담는 최상위 구조체
type AppConfig struct {
	Debug    bool           `json:"debug"`
	HTTP     HTTPConfig     `json:"http"`
	Storage  StorageConfig  `json:"storage"`
	Notifier NotifierConfig `json:"notifier"`
}

// newDefaultConfig 설정 파일에 값이 없을 때 사용할 기본값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		HTTP: HTTPConfig{
			ListenPort:     DefaultListenPort,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit: RateLimitConfig{
				PerSecond: DefaultRateLimitPerSecond,
				Burst:     DefaultRateLimitBurst,
			},
			CORS: CORSConfig{AllowOrigins: []string{"*"}},
		},
		Storage: StorageConfig{
			Path:         DefaultStoragePath,
			MaxOpenConns: DefaultMaxOpenConns,
			Backup: BackupConfig{
				Enabled:  false,
				TimeSpec: DefaultBackupTimeSpec,
				Dir:      DefaultBackupDir,
				Keep:     DefaultBackupKeep,
			},
		},
	}
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	if err := c.Storage.validate(v); err != nil {
		return err
	}
	return c.Notifier.validate(v)
}

// VerifyRecommendations 에러는 아니지만 운영상 주의가 필요한 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if len(c.HTTP.CORS.AllowOrigins) == 1 && c.HTTP.CORS.AllowOrigins[0] == "*" && !c.Debug {
		warnings = append(warnings, "운영 환경에서 모든 Origin(*)에 대한 CORS 요청을 허용하고 있습니다")
	}
	if !c.Storage.Backup.Enabled {
		warnings = append(warnings, "데이터베이스 정기 백업이 비활성화되어 있습니다")
	}

	return warnings
}

// HTTPConfig REST API 서버 설정
type HTTPConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer      bool            `json:"tls_server"`
	TLSCertFile    string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile     string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	RequestTimeout string          `json:"request_timeout"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
	CORS           CORSConfig      `json:"cors"`
}

// Timeout RequestTimeout을 time.Duration으로 변환합니다. validate()를 통과한 값이라고 가정합니다.
func (c *HTTPConfig) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0
	}
	return d
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "HTTP 서버"); err != nil {
		return err
	}

	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 타임아웃(request_timeout) 설정이 올바르지 않습니다: '%s' (예: 30s, 1m)", c.RequestTimeout))
	}

	return c.CORS.validate(v)
}

// RateLimitConfig IP별 초당 요청 제한
type RateLimitConfig struct {
	PerSecond int `json:"per_second" validate:"min=1"`
	Burst     int `json:"burst" validate:"min=1"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(v, c, "CORS")
}

// StorageConfig 농장 데이터 저장소(SQLite) 설정
type StorageConfig struct {
	// Path SQLite 데이터베이스 파일 경로. ":memory:"는 메모리 DB를 사용합니다.
	Path         string       `json:"path" validate:"required"`
	MaxOpenConns int          `json:"max_open_conns" validate:"min=1"`
	Backup       BackupConfig `json:"backup" validate:"-"`
}

// InMemory 메모리 데이터베이스 사용 여부
func (c *StorageConfig) InMemory() bool {
	return c.Path == ":memory:"
}

func (c *StorageConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "저장소"); err != nil {
		return err
	}

	if !c.Backup.Enabled {
		return nil
	}
	if c.InMemory() {
		return apperrors.New(apperrors.InvalidInput, "메모리 데이터베이스(:memory:)는 백업을 활성화할 수 없습니다")
	}

	return checkStruct(v, &c.Backup, "저장소 백업")
}

// BackupConfig 데이터베이스 정기 백업 설정
type BackupConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required,cron_spec"`
	Dir      string `json:"dir" validate:"required"`
	Keep     int    `json:"keep" validate:"min=1"`
}

// NotifierConfig 운영 알림 채널 설정
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram" validate:"-"`
}

func (c *NotifierConfig) validate(v *validator.Validate) error {
	if !c.Telegram.Enabled {
		return nil
	}
	return checkStruct(v, &c.Telegram, "텔레그램 알림")
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}
