// Package backup 설정된 Cron 스케줄에 따라 데이터베이스를 백업하고 오래된 백업 파일을 정리하는 서비스를 제공합니다.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/farm-server/internal/config"
	"github.com/darkkaiser/farm-server/internal/service/notification"
	"github.com/darkkaiser/farm-server/pkg/cronx"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Backup 서비스의 로깅용 컴포넌트 이름
const component = "backup.service"

const (
	// backupTimeout 백업 한 번에 허용되는 최대 시간
	backupTimeout = 10 * time.Minute

	// filePrefix, fileExt 백업 파일 이름 형식: farm-20240601-030000.db
	filePrefix = "farm-"
	fileExt    = ".db"

	fileTimeLayout = "20060102-150405"
)

// Backuper 데이터베이스 스냅샷을 파일로 저장하는 기능을 정의합니다.
type Backuper interface {
	Backup(ctx context.Context, dest string) error
}

// Service 백업 스케줄을 Cron 엔진에 등록하고 실행합니다.
type Service struct {
	cfg config.BackupConfig

	backuper Backuper

	// notificationSender 백업 실패 시 관리자 알림을 담당합니다.
	notificationSender notification.Sender

	cron *cron.Cron

	// now 백업 파일 이름에 사용할 시각 (테스트에서 교체)
	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Backup 서비스 인스턴스를 생성합니다.
func NewService(cfg config.BackupConfig, backuper Backuper, notificationSender notification.Sender) *Service {
	if backuper == nil {
		panic("Backuper는 필수입니다")
	}
	if notificationSender == nil {
		panic("NotificationSender는 필수입니다")
	}

	return &Service{
		cfg: cfg,

		backuper: backuper,

		notificationSender: notificationSender,

		now: time.Now,
	}
}

// Start 백업이 활성화되어 있으면 Cron 엔진에 백업 작업을 등록하고 시작합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Backup 서비스 초기화 프로세스를 시작합니다")

	if s.backuper == nil {
		serviceStopWG.Done()
		return ErrBackuperNotInitialized
	}
	if s.notificationSender == nil {
		serviceStopWG.Done()
		return ErrNotificationSenderNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Backup 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !s.cfg.Enabled {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("데이터베이스 백업이 비활성화되어 있어 Backup 서비스를 시작하지 않습니다")
		return nil
	}

	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	if _, err := s.cron.AddFunc(s.cfg.TimeSpec, s.runScheduled); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return NewErrInvalidCronSpec(s.cfg.TimeSpec, err)
	}

	s.cron.Start()
	s.running = true

	fields := applog.Fields{
		"time_spec": s.cfg.TimeSpec,
		"dir":       s.cfg.Dir,
		"keep":      s.cfg.Keep,
	}
	if next, err := cronx.Next(s.cfg.TimeSpec, s.now()); err == nil {
		fields["next_run"] = next.Format(time.RFC3339)
	}
	applog.WithComponentAndFields(component, fields).Info("서비스 시작 완료: Backup 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지하고, 진행 중인 백업이 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Backup 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Backup 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// runScheduled Cron 엔진이 호출하는 백업 작업입니다.
//
// 종료 시 cron.Stop()이 실행 중인 작업의 완료를 기다리므로, 서비스 종료 컨텍스트 대신
// 독립된 타임아웃 컨텍스트를 사용해 백업 도중 중단되지 않게 합니다.
func (s *Service) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logAndNotifyError("데이터베이스 백업 실패", err)
	}
}

// RunOnce 즉시 백업을 한 번 수행하고, 보관 개수를 넘는 오래된 백업 파일을 삭제합니다.
func (s *Service) RunOnce(ctx context.Context) (string, error) {
	dest := filepath.Join(s.cfg.Dir, filePrefix+s.now().Format(fileTimeLayout)+fileExt)

	startedAt := time.Now()
	if err := s.backuper.Backup(ctx, dest); err != nil {
		return "", err
	}

	removed, err := s.prune()
	if err != nil {
		// 백업 자체는 성공했으므로 정리 실패는 알림만 보냅니다.
		s.logAndNotifyError("오래된 백업 파일 정리 실패", err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"dest":        dest,
		"removed":     removed,
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("데이터베이스 백업 완료")

	return dest, nil
}

// prune 이름순(=시각순)으로 정렬해 최신 Keep개를 제외한 백업 파일을 삭제합니다.
func (s *Service) prune() (int, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return 0, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), filePrefix) && strings.HasSuffix(e.Name(), fileExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= s.cfg.Keep {
		return 0, nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	removed := 0
	for _, name := range names[s.cfg.Keep:] {
		if err := os.Remove(filepath.Join(s.cfg.Dir, name)); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// logAndNotifyError 백업 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Service) logAndNotifyError(message string, err error) {
	message = fmt.Sprintf("%s: %v", message, err)

	applog.WithComponentAndFields(component, applog.Fields{
		"dir":   s.cfg.Dir,
		"error": err,
	}).Error(message)

	if notifyErr := s.notificationSender.NotifyDefaultWithError(message); notifyErr != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": notifyErr,
		}).Warn("백업 실패 알림 발송 요청이 거부되었습니다")
	}
}
