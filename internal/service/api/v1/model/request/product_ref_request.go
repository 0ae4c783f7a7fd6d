package request

// ProductRefRequest 상품 하나를 가리키는 공통 요청 본문
//
// 위시리스트 추가/토글과 최근 본 상품 기록처럼 상품 식별자만 필요한
// 엔드포인트에서 공용으로 사용합니다.
type ProductRefRequest struct {
	// 대상 상품의 식별자
	ProductID string `json:"product_id" form:"product_id" validate:"required" korean:"상품 ID" example:"hl-peak-200"`
}
