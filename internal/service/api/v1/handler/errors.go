package handler

import (
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문(Body)의 데이터 형식이 올바르지 않거나(예: 잘못된 JSON), 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError("요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요")
}

// NewErrValidationFailed 요청 데이터의 필수 값 누락, 형식 위반 등 유효성 검증(Validation)에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrProductNotFound 요청한 상품이 카탈로그에 존재하지 않을 때 발생하는 에러를 생성합니다.
func NewErrProductNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
}

// NewErrCategoryNotFound 요청한 카테고리가 카탈로그에 존재하지 않을 때 발생하는 에러를 생성합니다.
func NewErrCategoryNotFound() error {
	return httputil.NewNotFoundError(constants.ErrMsgCategoryNotFound)
}
