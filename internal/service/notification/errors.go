package notification

import (
	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
)

var (
	// ErrServiceNotRunning 서비스가 시작되지 않았거나 종료 절차가 진행 중이어서 알림 요청을 받을 수 없을 때 반환하는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "알림 서비스가 실행 중이 아니어서 알림을 보낼 수 없습니다")

	// ErrQueueFull 발송 대기열이 가득 차서 알림 요청이 버려졌을 때 반환하는 에러입니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 대기열이 가득 찼습니다")
)

// NewErrNotifierInitFailed 알림 채널 생성 중 에러가 발생했을 때 반환하는 에러를 생성합니다.
func NewErrNotifierInitFailed(err error) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
}
