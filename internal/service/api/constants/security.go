package constants

import "time"

// 보안 및 리소스 보호 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	DefaultMaxBodySize = "128K"

	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 최대 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 시간. RequestTimeout보다 길어야 타임아웃 응답을 보낼 수 있습니다.
	DefaultWriteTimeout = 75 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 최대 시간
	DefaultIdleTimeout = 120 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
