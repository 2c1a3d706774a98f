package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/darkkaiser/farm-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없을 때(Chunked 전송 등) bytes_in 필드에 기록하는 값
	defaultBytesIn = "0"
)

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//
// 민감한 쿼리 파라미터(password, token 등)는 마스킹하여 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return logHTTPRequest(c, next)
		}
	}
}

// logHTTPRequest 다음 핸들러를 실행한 뒤 요청/응답 정보를 기록합니다.
// 핸들러 에러는 이 시점에 에러 핸들러로 전달해야 실제 응답 상태 코드가 기록됩니다.
func logHTTPRequest(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	defer func() {
		stop := time.Now()
		latency := stop.Sub(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		uri := maskSensitiveQueryParams(req.RequestURI)

		entry := applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
			"time_rfc3339":  stop.Format(time.RFC3339),
			"method":        req.Method,
			"path":          path,
			"uri":           uri,
			"host":          req.Host,
			"protocol":      req.Proto,
			"remote_ip":     c.RealIP(),
			"user_agent":    req.UserAgent(),
			"referer":       req.Referer(),
			"status":        res.Status,
			"bytes_in":      bytesIn,
			"bytes_out":     strconv.FormatInt(res.Size, 10),
			"latency":       strconv.FormatInt(latency.Nanoseconds()/1000, 10),
			"latency_human": latency.String(),
			"request_id":    res.Header().Get(echo.HeaderXRequestID),
		})

		if res.Status >= 500 {
			entry.Warn(constants.LogMsgHTTPRequest)
			return
		}
		entry.Info(constants.LogMsgHTTPRequest)
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 strutil.Mask로 마스킹합니다.
// URI 파싱에 실패하면 원본을 그대로 반환합니다.
//
//	입력: "/api/v1/farms/search?name=sun&token=secret123"
//	출력: "/api/v1/farms/search?name=sun&token=secr***"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			val := q.Get(param)
			q.Set(param, strutil.Mask(val))
			masked = true
		}
	}

	if masked {
		u.RawQuery = q.Encode()
		return u.String()
	}

	return uri
}
