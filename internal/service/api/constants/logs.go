package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."
	LogMsgServiceNotifyFailed            = "API 서비스 > 장애 알림 발송 요청 실패"
	LogMsgServiceUnexpectedExit          = "API 서비스 > http 서버가 예기치 않게 종료됨"
)

// HTTP 에러 로깅 메시지 상수입니다.
const (
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
)

// 미들웨어 로깅 메시지 상수입니다.
const (
	LogMsgHTTPRequest            = "HTTP 요청"
	LogMsgPanicRecovered         = "패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다"
	LogMsgRateLimitExceeded      = "요청 차단: 속도 제한(Rate Limit)을 초과하였습니다"
	LogMsgUnsupportedContentType = "요청 차단: 지원하지 않는 Content-Type입니다"
)

// 시스템 핸들러 로깅 메시지 상수입니다.
const (
	LogMsgHealthCheck = "헬스체크 요청"
	LogMsgVersionInfo = "버전 정보 요청"
)
