package httputil

import (
	"net/http"

	"github.com/darkkaiser/farm-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// newHTTPError 표준 ErrorResponse를 메시지로 갖는 echo.HTTPError를 생성합니다.
func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewUnsupportedMediaTypeError 415 Unsupported Media Type 에러를 생성합니다
func NewUnsupportedMediaTypeError(message string) error {
	return newHTTPError(http.StatusUnsupportedMediaType, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}
