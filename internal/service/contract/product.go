package contract

// Badge 상품 카드에 노출되는 프로모션 뱃지입니다. (예: "Best Seller", "New", "Limited")
type Badge string

const (
	BadgeBestSeller Badge = "Best Seller"
	BadgeNew        Badge = "New"
	BadgeLimited    Badge = "Limited"
)

// Category 상품이 속한 카탈로그 카테고리입니다.
type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
	// ImageURL 카테고리 타일에 표시되는 대표 이미지 URL입니다.
	ImageURL string `json:"image_url"`
}

// Product 판매 상품의 카탈로그 정보입니다.
//
// Price와 CompareAtPrice는 USD 단위의 float64이며,
// CompareAtPrice가 0이면 할인 전 가격 표시가 없는 상품입니다.
type Product struct {
	ID         ProductID  `json:"id"`
	CategoryID CategoryID `json:"category_id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	// CompareAtPrice 할인 전 정가입니다. 0이면 미표시.
	CompareAtPrice float64 `json:"compare_at_price,omitempty"`
	Rating         float64 `json:"rating"`
	Badge          Badge   `json:"badge,omitempty"`
	ImageURL       string  `json:"image_url"`
	// Description 상품 퀵뷰에 표시되는 짧은 설명입니다.
	Description string `json:"description,omitempty"`
	// Stock 현재 재고 수량입니다. 음수는 허용되지 않습니다.
	Stock int `json:"stock"`
}

// InStock 상품의 재고가 남아있는지 여부를 반환합니다.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
