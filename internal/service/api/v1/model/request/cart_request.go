package request

// AddCartItemRequest 장바구니 상품 추가 요청
type AddCartItemRequest struct {
	// 담을 상품의 식별자
	ProductID string `json:"product_id" form:"product_id" validate:"required" korean:"상품 ID" example:"hl-peak-200"`
	// 담을 수량 (1 이상)
	Quantity int `json:"quantity" form:"quantity" validate:"required,gt=0" korean:"수량" example:"2"`
}
