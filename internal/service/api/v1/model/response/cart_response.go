package response

import "github.com/highcountrygear/storefront-server/internal/service/contract"

// CartResponse 장바구니 현재 상태 응답
//
// Subtotal은 할인 전 소계이며, 할인/배송비/세금이 포함된 전체 견적은
// 견적 엔드포인트(/cart/quote)에서 조회합니다.
type CartResponse struct {
	// 담긴 상품 목록 (상품 ID 기준 정렬)
	Items []contract.CartLine `json:"items"`
	// 총 상품 수량 (수량 합계)
	TotalItems int `json:"total_items" example:"3"`
	// 할인 전 소계 (USD)
	Subtotal float64 `json:"subtotal" example:"104.97"`
}
