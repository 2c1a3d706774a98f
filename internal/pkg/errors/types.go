package errors

// ErrorType 에러의 성격을 분류합니다. HTTP 계층은 이 값을 기준으로 응답 상태 코드를 결정합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 예상하지 못한 상태)
	Internal

	// System 디스크, 데이터베이스 연결 등 인프라 수준의 장애
	System

	// InvalidInput 사용자 입력값 검증 실패
	InvalidInput

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// Conflict 중복 생성 등 리소스 상태 충돌
	Conflict

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없는 상태 (종료 중, 큐 포화 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Conflict:     "Conflict",
	Timeout:      "Timeout",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(?)"
	}
	return errorTypeNames[t]
}
