package notification

import (
	"context"
	"fmt"
)

const (
	// messageTitle 모든 알림 메시지 앞에 붙는 발신 애플리케이션 표시
	messageTitle = "[farm-server]"

	// errorFormat 오류 알림 메시지 형식
	errorFormat = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// Message 발송 대기열에 등록되는 알림 한 건입니다.
type Message struct {
	Text          string
	ErrorOccurred bool
}

// String 알림 채널로 전송될 최종 문자열을 반환합니다.
func (m Message) String() string {
	text := messageTitle + "\n" + m.Text
	if m.ErrorOccurred {
		return fmt.Sprintf(errorFormat, text)
	}
	return text
}

// notifier 실제로 메시지를 외부 채널에 전달하는 구현체입니다.
type notifier interface {
	// ID 로깅용 알림 채널 식별자
	ID() string

	// Deliver 메시지 한 건을 전송합니다.
	Deliver(ctx context.Context, m Message) error
}
