// Package v1 농장(Farm) API의 v1 버전 라우트를 정의합니다.
//
// 등록되는 엔드포인트 (기본 경로 /api/v1/farms):
//   - GET    /api/v1/farms         - 농장 목록 조회
//   - GET    /api/v1/farms/search  - 농장 검색 (name, location)
//   - GET    /api/v1/farms/:id     - 농장 단건 조회
//   - POST   /api/v1/farms         - 농장 등록
//   - PUT    /api/v1/farms/:id     - 농장 수정 (전체 교체)
//   - DELETE /api/v1/farms/:id     - 농장 삭제
package v1

import (
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/middleware"
	"github.com/darkkaiser/farm-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 농장 API 라우트를 등록합니다.
//
// 본문을 받는 POST, PUT 요청에는 Content-Type(application/json) 검증 미들웨어가 적용됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	farms := e.Group(constants.FarmsBasePath)

	requireJSON := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	farms.GET("", h.ListFarmsHandler)
	farms.GET("/", h.ListFarmsHandler)
	farms.POST("", h.CreateFarmHandler, requireJSON)
	farms.POST("/", h.CreateFarmHandler, requireJSON)

	// 정적 경로(/search)는 Echo 라우터에서 파라미터 경로(/:id)보다 우선합니다.
	farms.GET("/search", h.SearchFarmsHandler)

	farms.GET("/:id", h.GetFarmHandler)
	farms.PUT("/:id", h.UpdateFarmHandler, requireJSON)
	farms.DELETE("/:id", h.DeleteFarmHandler)
}
