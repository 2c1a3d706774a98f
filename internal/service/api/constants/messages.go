package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidJSON = "잘못된 JSON 형식입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestInvalidID   = "농장 ID는 1 이상의 정수여야 합니다 (id=%s)"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 409 Conflict
	ErrMsgConflict = "요청이 현재 리소스 상태와 충돌합니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 미디어 타입입니다. Content-Type은 application/json이어야 합니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"
)
