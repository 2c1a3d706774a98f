package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/farm-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한 (0이면 기본값 적용)
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 패닉 복구 및 로깅 (다른 미들웨어의 패닉도 복구하도록 가장 먼저)
//  2. RequestID - 요청마다 UUID 기반 X-Request-ID 부여
//  3. ServerHeader - Server 응답 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (429, 503 응답도 기록되도록 RateLimit/Timeout 이전)
//  5. RateLimiting - IP별 초당 요청 수 제한 (초과 시 429)
//  6. BodyLimit - 요청 본문 크기 제한 (128KB, 초과 시 413)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  8. CORS - 허용된 Origin의 교차 출처 요청 처리
//  9. Secure - 보안 헤더 추가
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	rps, burst := cfg.RateLimitPerSecond, cfg.RateLimitBurst
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(rps, burst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	// 9. 보안 헤더
	e.Use(middleware.Secure())

	return e
}
