package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(NotFound, "농장을 찾을 수 없습니다")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, NotFound, appErr.Type())
	assert.Equal(t, "농장을 찾을 수 없습니다", appErr.Message())
	assert.Equal(t, "[NotFound] 농장을 찾을 수 없습니다", err.Error())

	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File, "스택의 첫 프레임은 New를 호출한 위치여야 합니다")
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "잘못된 ID입니다 (id=%d)", -1)
	assert.Equal(t, "[InvalidInput] 잘못된 ID입니다 (id=-1)", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환한다", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Wrap(nil, System, "x"))
		assert.Nil(t, Wrapf(nil, System, "x %d", 1))
	})

	t.Run("원인 에러를 보존한다", func(t *testing.T) {
		t.Parallel()

		cause := context.DeadlineExceeded
		err := Wrapf(cause, Timeout, "조회 시간 초과 (id=%d)", 3)

		assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
		assert.Equal(t, cause, RootCause(err))
		assert.Contains(t, err.Error(), "context deadline exceeded")
	})
}

func TestIsAndUnderlyingType(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "농장 없음")
	outer := Wrap(inner, Internal, "수정 실패")
	wrapped := fmt.Errorf("handler: %w", outer)

	assert.True(t, Is(wrapped, NotFound))
	assert.True(t, Is(wrapped, Internal))
	assert.False(t, Is(wrapped, Conflict))
	assert.Equal(t, NotFound, UnderlyingType(wrapped))

	assert.Equal(t, Unknown, UnderlyingType(stderrors.New("plain")))
	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Nil(t, RootCause(nil))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(stderrors.New("disk full"), System, "백업 실패")

	detailed := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detailed, "[System] 백업 실패"))
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "disk full")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Conflict", Conflict.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(?)", ErrorType(99).String())
}
