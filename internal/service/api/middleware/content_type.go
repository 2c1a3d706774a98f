package middleware

import (
	"mime"
	"strings"

	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청 본문의 Content-Type이 expectedContentType인지 검증하는 미들웨어를 반환합니다.
//
// 본문이 없는 요청(Content-Length 0)은 검증하지 않습니다. MIME 파라미터(charset 등)와 대소문자는 무시합니다.
//
// Returns:
//   - 415 Unsupported Media Type: Content-Type이 없거나 일치하지 않는 경우
func ValidateContentType(expectedContentType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !strings.EqualFold(mediaType, expectedContentType) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expectedContentType,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedContentType)

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}
