package notification

import (
	"context"

	applog "github.com/darkkaiser/farm-server/pkg/log"
)

// logNotifier 외부 알림 채널이 설정되지 않았을 때 메시지를 로그로만 남기는 구현체입니다.
type logNotifier struct{}

func (logNotifier) ID() string {
	return "log"
}

func (logNotifier) Deliver(_ context.Context, m Message) error {
	entry := applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id":    "log",
		"error_occurred": m.ErrorOccurred,
	})
	if m.ErrorOccurred {
		entry.Warn(m.Text)
	} else {
		entry.Info(m.Text)
	}
	return nil
}
