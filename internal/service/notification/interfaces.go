package notification

// Sender 운영 알림 발송 기능을 제공하는 인터페이스입니다.
// API 서버, 백업 스케줄러 등은 이 인터페이스를 통해 관리자에게 알림을 보냅니다.
//
// 반환값은 발송 요청이 대기열에 정상적으로 등록되었는지 여부이며, 실제 전송 결과와는 무관합니다.
type Sender interface {
	// NotifyDefault 기본 알림 채널로 일반 메시지를 발송합니다.
	NotifyDefault(message string) error

	// NotifyDefaultWithError 기본 알림 채널로 "오류" 성격의 메시지를 발송합니다.
	NotifyDefaultWithError(message string) error
}

// HealthChecker 알림 서비스의 상태를 확인하는 인터페이스입니다.
type HealthChecker interface {
	// Health 서비스가 실행 중이면 nil, 아니면 ErrServiceNotRunning을 반환합니다.
	Health() error
}
