// Package notification 운영 알림(서버 장애, 백업 실패 등)을 관리자에게 비동기로 발송하는 서비스를 제공합니다.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/farm-server/internal/config"
	applog "github.com/darkkaiser/farm-server/pkg/log"
)

// component Notification 서비스의 로깅용 컴포넌트 이름
const component = "notification.service"

const (
	// queueSize 발송 대기열 크기
	queueSize = 100

	// deliverTimeout 메시지 한 건 전송에 허용되는 최대 시간
	deliverTimeout = 2 * time.Minute

	// shutdownTimeout 종료 시 대기열에 남은 메시지를 처리하기 위해 기다리는 최대 시간
	shutdownTimeout = 30 * time.Second
)

// Service 알림 요청을 대기열에 받아 별도의 고루틴에서 순차적으로 발송합니다.
type Service struct {
	notifier notifier

	queue chan Message

	shutdownTimeout time.Duration

	running   bool
	runningMu sync.RWMutex
}

// NewService 설정에 따라 알림 서비스를 생성합니다.
// 텔레그램이 비활성화되어 있으면 메시지를 로그로만 남깁니다.
func NewService(cfg config.NotifierConfig, debug bool) (*Service, error) {
	if !cfg.Telegram.Enabled {
		applog.WithComponent(component).Info("외부 알림 채널이 설정되지 않아 알림을 로그로만 기록합니다")
		return newService(logNotifier{}), nil
	}

	n, err := newTelegramNotifier(cfg.Telegram, debug)
	if err != nil {
		return nil, err
	}

	return newService(n), nil
}

func newService(n notifier) *Service {
	return &Service{
		notifier: n,

		queue: make(chan Message, queueSize),

		shutdownTimeout: shutdownTimeout,
	}
}

// Start 발송 고루틴을 시작합니다.
//
// serviceStopCtx가 취소되면 새 요청을 거부하고 대기열에 남은 메시지를 shutdownTimeout 동안 처리한 뒤
// serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Notification 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": s.notifier.ID(),
	}).Info("서비스 시작 완료: Notification 서비스가 정상적으로 초기화되었습니다")

	return nil
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case m := <-s.queue:
			ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			s.deliver(ctx, m)
			cancel()

		case <-serviceStopCtx.Done():
			s.shutdown()
			return
		}
	}
}

// shutdown 새 요청을 차단한 뒤 대기열에 남은 메시지를 처리합니다.
func (s *Service) shutdown() {
	applog.WithComponent(component).Info("종료 절차 진입: Notification 서비스 중지 시그널을 수신했습니다")

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	drained := 0
	for {
		select {
		case m := <-s.queue:
			if ctx.Err() != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"remaining": len(s.queue) + 1,
				}).Warn("종료 대기 시간 초과: 남은 알림 메시지를 폐기합니다")
				return
			}
			s.deliver(ctx, m)
			drained++

		default:
			applog.WithComponentAndFields(component, applog.Fields{
				"drained": drained,
			}).Info("Notification 서비스 종료 완료")
			return
		}
	}
}

// deliver 메시지 한 건을 전송합니다. 패닉이 발생해도 발송 고루틴은 유지됩니다.
func (s *Service) deliver(ctx context.Context, m Message) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": s.notifier.ID(),
				"panic":       r,
			}).Error("메시지 처리 실패: 발송 로직 수행 중 패닉 발생 (해당 건 스킵)")
		}
	}()

	if err := s.notifier.Deliver(ctx, m); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": s.notifier.ID(),
			"error":       err,
		}).Error("알림 메시지 전송 실패")
	}
}

// NotifyDefault 기본 알림 채널로 일반 메시지를 발송합니다.
func (s *Service) NotifyDefault(message string) error {
	return s.enqueue(Message{Text: message})
}

// NotifyDefaultWithError 기본 알림 채널로 오류 메시지를 발송합니다.
func (s *Service) NotifyDefaultWithError(message string) error {
	return s.enqueue(Message{Text: message, ErrorOccurred: true})
}

// enqueue 대기열이 가득 차 있으면 기다리지 않고 ErrQueueFull을 반환합니다.
func (s *Service) enqueue(m Message) error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return ErrServiceNotRunning
	}

	select {
	case s.queue <- m:
		return nil
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"queue_size": cap(s.queue),
		}).Warn("알림 발송 대기열이 가득 차 메시지를 버립니다")
		return ErrQueueFull
	}
}

// Health 서비스 실행 여부를 확인합니다.
func (s *Service) Health() error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	return nil
}

var (
	_ Sender        = (*Service)(nil)
	_ HealthChecker = (*Service)(nil)
)
