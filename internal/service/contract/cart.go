package contract

import (
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

// CartLine 장바구니에 담긴 단일 상품 항목입니다.
//
// Price는 장바구니에 담는 시점의 상품 단가 스냅샷입니다.
// 카탈로그 가격이 변경되더라도 담겨있는 항목의 단가는 유지됩니다.
type CartLine struct {
	ProductID ProductID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url,omitempty"`
	Quantity  int       `json:"quantity"`
}

// Validate 장바구니 항목의 필수 값과 수량 하한(1 이상)을 검증합니다.
func (l *CartLine) Validate() error {
	if err := l.ProductID.Validate(); err != nil {
		return err
	}
	if l.Quantity < 1 {
		return apperrors.New(apperrors.InvalidInput, "장바구니 항목의 수량은 1 이상이어야 합니다")
	}
	if l.Price < 0 {
		return apperrors.New(apperrors.InvalidInput, "장바구니 항목의 단가는 음수일 수 없습니다")
	}
	return nil
}

// LineTotal 항목의 소계(단가 x 수량)를 반환합니다. 반올림하지 않은 원시 값입니다.
func (l *CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
