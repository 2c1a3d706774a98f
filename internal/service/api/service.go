// Package api 농장 관리 REST API 서버의 구성과 생명주기를 담당합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/farm-server/docs"
	"github.com/darkkaiser/farm-server/internal/config"
	"github.com/darkkaiser/farm-server/internal/pkg/version"
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/farm-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/farm-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/darkkaiser/farm-server/internal/service/notification"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// NotificationService API 서비스가 사용하는 알림 기능입니다.
// 서버 장애 알림 발송과 헬스체크에 사용됩니다.
type NotificationService interface {
	notification.Sender
	notification.HealthChecker
}

// Service 농장 API 서버의 생명주기를 관리하는 서비스입니다.
//
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 시스템 엔드포인트, Swagger UI, v1 농장 API 라우팅
//   - Graceful Shutdown (5초 타임아웃)
//   - 예상치 못한 서버 에러 발생 시 관리자 알림 전송
//
// Start()로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	farmService farm.Service
	db          system.Pinger

	notificationService NotificationService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, farmService farm.Service, db system.Pinger, notificationService NotificationService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if farmService == nil {
		panic(constants.PanicMsgFarmServiceRequired)
	}
	if db == nil {
		panic(constants.PanicMsgDatabaseRequired)
	}
	if notificationService == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}

	return &Service{
		appConfig: appConfig,

		farmService: farmService,
		db:          db,

		notificationService: notificationService,

		buildInfo: buildInfo,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// serviceStopCtx가 취소되면 Graceful Shutdown을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.db, s.notificationService, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.farmService)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.HTTP.CORS.AllowOrigins,
		RequestTimeout:     s.appConfig.HTTP.Timeout(),
		RateLimitPerSecond: s.appConfig.HTTP.RateLimit.PerSecond,
		RateLimitBurst:     s.appConfig.HTTP.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다.
// 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpConfig := s.appConfig.HTTP
	address := fmt.Sprintf(":%d", httpConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpConfig.ListenPort,
		"tls":  httpConfig.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if httpConfig.TLSServer {
		err = e.StartTLS(address, httpConfig.TLSCertFile, httpConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown 완료
//   - 그 외: Error 로깅 + 관리자 알림 전송
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(message)

	if notifyErr := s.notificationService.NotifyDefaultWithError(fmt.Sprintf("%s\n\n%s", message, err)); notifyErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": notifyErr,
		}).Warn(constants.LogMsgServiceNotifyFailed)
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// isRunning 서비스 실행 여부를 반환합니다.
func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
