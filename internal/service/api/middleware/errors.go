package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/httputil"
)

var (
	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 요청 본문의 Content-Type이 허용되지 않을 때 반환하는 415 에러입니다.
	ErrUnsupportedMediaType = httputil.NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
