// Package system 헬스체크, 버전 정보 등 시스템 수준의 엔드포인트 핸들러를 제공합니다.
package system

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/farm-server/internal/pkg/version"
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/model/system"
	"github.com/darkkaiser/farm-server/internal/service/notification"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Pinger 데이터베이스 연결 상태를 확인할 수 있는 대상입니다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	db            Pinger
	healthChecker notification.HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(db Pinger, healthChecker notification.HealthChecker, buildInfo version.Info) *Handler {
	if db == nil {
		panic(constants.PanicMsgDatabaseRequired)
	}
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		db:            db,
		healthChecker: healthChecker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성(데이터베이스, 알림 서비스)의 상태를 확인합니다.
// @Description 의존성 중 하나라도 비정상이면 status는 unhealthy이며, HTTP 상태 코드는 항상 200입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyDatabase:            h.checkDatabase(c.Request().Context()),
		constants.DependencyNotificationService: checkStatus(h.healthChecker.Health(), 0),
	}

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) checkDatabase(ctx context.Context) system.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultHealthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)

	return checkStatus(err, time.Since(start).Milliseconds())
}

func checkStatus(err error, latencyMs int64) system.DependencyStatus {
	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latencyMs,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latencyMs,
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
