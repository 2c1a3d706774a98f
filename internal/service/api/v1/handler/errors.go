package handler

import (
	"fmt"

	"github.com/darkkaiser/farm-server/internal/service/api/constants"
	"github.com/darkkaiser/farm-server/internal/service/api/httputil"
)

// NewErrInvalidID 경로의 농장 ID가 양의 정수가 아닐 때 발생하는 에러를 생성합니다.
func NewErrInvalidID(raw string) error {
	return httputil.NewBadRequestError(fmt.Sprintf(constants.ErrMsgBadRequestInvalidID, raw))
}

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니거나 필드 타입이 맞지 않을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrInvalidQuery 쿼리 파라미터를 해석할 수 없을 때 발생하는 에러를 생성합니다.
func NewErrInvalidQuery() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
}

// NewErrValidationFailed 필수 값 누락, 형식 위반 등 유효성 검증에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}
