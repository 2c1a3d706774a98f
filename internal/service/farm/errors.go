package farm

import (
	"fmt"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
)

// ErrDuplicateName 저장소가 이름 중복(유니크 제약 위반)을 감지했을 때 반환하는 에러입니다.
var ErrDuplicateName = apperrors.New(apperrors.Conflict, "이미 같은 이름의 농장이 존재합니다")

// NewErrNotFound 농장이 존재하지 않음을 나타내는 에러를 생성합니다.
func NewErrNotFound(id int64) error {
	return apperrors.New(apperrors.NotFound, fmt.Sprintf("농장을 찾을 수 없습니다 (id=%d)", id))
}

// NewErrInvalidID ID가 양의 정수가 아님을 나타내는 에러를 생성합니다.
func NewErrInvalidID(id int64) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("농장 ID는 1 이상의 정수여야 합니다 (id=%d)", id))
}

// NewErrDuplicateName 같은 이름의 농장이 이미 존재함을 나타내는 에러를 생성합니다.
func NewErrDuplicateName(name string) error {
	return apperrors.New(apperrors.Conflict, fmt.Sprintf("이미 같은 이름의 농장이 존재합니다: '%s'", name))
}

func newErrInvalidInput(format string, args ...any) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf(format, args...))
}

func newErrStorage(err error, message string) error {
	return apperrors.Wrap(err, apperrors.System, message)
}
