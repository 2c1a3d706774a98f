package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 IP별 Limiter의 최대 개수
	// 한도에 도달하면 임의의 항목 하나를 제거하고 새 IP를 수용합니다.
	maxIPRateLimiters = 10000

	// headerRetryAfter 클라이언트에게 재시도 시점을 알리는 응답 헤더 (RFC 7231, 7.1.3)
	headerRetryAfter = "Retry-After"

	// retryAfterSeconds 제한 초과 시 Retry-After 헤더로 안내하는 재시도 대기 시간(초)
	retryAfterSeconds = "1"
)

// ipRateLimiter IP 주소별 Token Bucket Limiter를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond int, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter 특정 IP의 Limiter를 반환하며, 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 다른 고루틴이 먼저 생성했을 수 있습니다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// 제한을 초과하면 429 Too Many Requests와 함께 Retry-After 헤더를 응답합니다.
// 메모리 기반이므로 서버 재시작 시 초기화되며, 다중 서버 환경에서는 서버별로 독립적으로 적용됩니다.
//
// Panics:
//   - requestsPerSecond 또는 burst가 0 이하인 경우
func RateLimiting(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip":  ip,
					"path":       c.Request().URL.Path,
					"method":     c.Request().Method,
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(headerRetryAfter, retryAfterSeconds)

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
