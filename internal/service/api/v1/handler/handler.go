// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩하고 검증한 뒤 farm.Service를 호출하며,
// 서비스가 반환한 에러는 그대로 전역 에러 핸들러로 전달하여 상태 코드로 변환합니다.
package handler

import (
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 농장(Farm) 리소스 요청을 처리합니다.
type Handler struct {
	farmService farm.Service
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(farmService farm.Service) *Handler {
	if farmService == nil {
		panic(constants.PanicMsgFarmServiceRequired)
	}

	return &Handler{
		farmService: farmService,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
