package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// =============================================================================
// ipRateLimiter
// =============================================================================

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Empty(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
}

func TestIPRateLimiter_GetLimiter(t *testing.T) {
	t.Parallel()

	t.Run("성공: 같은 IP는 같은 Limiter", func(t *testing.T) {
		t.Parallel()

		limiter := newIPRateLimiter(1, 1)
		assert.Same(t, limiter.getLimiter("1.1.1.1"), limiter.getLimiter("1.1.1.1"))
		assert.NotSame(t, limiter.getLimiter("1.1.1.1"), limiter.getLimiter("2.2.2.2"))
	})

	t.Run("성공: 최대 개수를 넘지 않음", func(t *testing.T) {
		t.Parallel()

		limiter := newIPRateLimiter(1, 1)
		for i := 0; i < maxIPRateLimiters+10; i++ {
			limiter.getLimiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
		}
		assert.Len(t, limiter.limiters, maxIPRateLimiters)
	})

	t.Run("성공: 동시 접근", func(t *testing.T) {
		t.Parallel()

		limiter := newIPRateLimiter(1, 1)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				limiter.getLimiter(fmt.Sprintf("192.168.0.%d", i%5))
			}(i)
		}
		wg.Wait()

		assert.Len(t, limiter.limiters, 5)
	})
}

// =============================================================================
// RateLimiting
// =============================================================================

func TestRateLimiting_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		wantPanic         string
	}{
		{"실패: RPS 0", 0, 20, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: 0)"},
		{"실패: RPS 음수", -10, 20, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: -10)"},
		{"실패: Burst 0", 10, 0, "RateLimiting: burst는 양수여야 합니다 (현재값: 0)"},
		{"실패: 둘 다 0이면 RPS 먼저 검사", 0, 0, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.PanicsWithValue(t, tt.wantPanic, func() {
				RateLimiting(tt.requestsPerSecond, tt.burst)
			})
		})
	}

	assert.NotPanics(t, func() { RateLimiting(10, 20) })
}

func TestRateLimiting_BlocksAfterBurst(t *testing.T) {
	captureLogs(t)

	e := echo.New()
	e.Use(RateLimiting(1, 3))
	e.GET("/api/v1/farms", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/farms", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code, "버스트 한도 내 요청은 허용되어야 합니다")
	}

	rec := do("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// 다른 IP는 독립적으로 제한됩니다.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234").Code)
}
