package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/darkkaiser/farm-server/internal/config"
	"github.com/darkkaiser/farm-server/internal/pkg/version"
	"github.com/darkkaiser/farm-server/internal/service/api"
	"github.com/darkkaiser/farm-server/internal/service/backup"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/darkkaiser/farm-server/internal/service/farm/storage"
	"github.com/darkkaiser/farm-server/internal/service/notification"
	applog "github.com/darkkaiser/farm-server/pkg/log"
)

const component = "main"

// runOptions serve 명령의 실행 옵션
type runOptions struct {
	ConfigFile string
	LogDir     string
}

// service main이 생명주기를 관리하는 백그라운드 서비스입니다.
type service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

// run 설정을 로드하고 모든 서비스를 시작한 뒤, ctx가 취소되면 서비스를 종료하고 반환합니다.
func run(ctx context.Context, out io.Writer, opts runOptions) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	logOpts.Dir = opts.LogDir

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Fprintf(out, banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	// 3. 저장소 및 서비스 생성
	store, err := storage.Open(ctx, appConfig.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("저장소 종료 실패")
		}
	}()

	notificationService, err := notification.NewService(appConfig.Notifier, appConfig.Debug)
	if err != nil {
		return err
	}

	farmService := farm.NewService(store.Repository())
	backupService := backup.NewService(appConfig.Storage.Backup, store, notificationService)
	apiService := api.NewService(appConfig, farmService, store, notificationService, buildInfo)

	// 4. 서비스 시작
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	services := []service{notificationService, backupService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}
	}

	applog.WithComponent(component).Info("서버 가동 완료")
	_ = notificationService.NotifyDefault(fmt.Sprintf("서버가 시작되었습니다 (%s)", buildInfo.Version))

	<-ctx.Done()

	// 5. 종료
	applog.WithComponent(component).Info("종료 신호 수신: 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(component).Info("서버 종료 완료")

	return nil
}
