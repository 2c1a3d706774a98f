package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 핸들러가 반환한 AppError는 타입에 따라 HTTP 상태 코드로 변환됩니다.
//   - InvalidInput: 400
//   - NotFound: 404
//   - Conflict: 409
//   - Unavailable: 503
//   - 그 외: 500 (내부 메시지는 응답에 노출하지 않고 로그에만 남깁니다)
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	// 에러 로깅 (보안 및 디버깅 용도)
	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		// 5xx: 서버 내부 오류 - 즉시 조치 필요
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		// 4xx: 클라이언트 요청 오류 - 정상적인 거부 응답
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 HTTP 상태 코드와 클라이언트에게 보여줄 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return resolveHTTPError(he)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch apperrors.UnderlyingType(err) {
		case apperrors.InvalidInput:
			return http.StatusBadRequest, appErr.Message()
		case apperrors.NotFound:
			return http.StatusNotFound, appErr.Message()
		case apperrors.Conflict:
			return http.StatusConflict, appErr.Message()
		case apperrors.Unavailable:
			return http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable
		}
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

func resolveHTTPError(he *echo.HTTPError) (int, string) {
	code := he.Code

	switch msg := he.Message.(type) {
	case response.ErrorResponse:
		return code, msg.Message
	case string:
		// Echo 기본 에러(라우트 없음, 본문 크기 초과 등)는 한국어 메시지로 통일합니다.
		if msg != http.StatusText(code) {
			break
		}
		switch code {
		case http.StatusNotFound:
			return code, constants.ErrMsgNotFound
		case http.StatusRequestEntityTooLarge:
			return code, constants.ErrMsgRequestEntityTooLarge
		case http.StatusUnsupportedMediaType:
			return code, constants.ErrMsgUnsupportedMediaType
		case http.StatusTooManyRequests:
			return code, constants.ErrMsgTooManyRequests
		}
	}

	if msg, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
		return code, msg
	}

	if code >= http.StatusInternalServerError {
		return code, constants.ErrMsgInternalServer
	}
	return code, http.StatusText(code)
}
