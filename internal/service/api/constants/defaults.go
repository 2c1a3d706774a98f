package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 처리 중인 요청을 기다리는 최대 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultHealthCheckTimeout 헬스체크 시 데이터베이스 응답을 기다리는 최대 시간
	DefaultHealthCheckTimeout = 2 * time.Second
)

// API 경로 상수입니다.
const (
	// FarmsBasePath 농장 리소스의 기본 경로
	FarmsBasePath = "/api/v1/farms"
)

// 요청 제한 기본값 상수입니다.
const (
	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 순간 최대 허용 요청 수
	DefaultRateLimitBurst = 40
)
