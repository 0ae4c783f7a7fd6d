package response

import "github.com/highcountrygear/storefront-server/internal/service/contract"

// WishlistResponse 위시리스트 현재 상태 응답
type WishlistResponse struct {
	// 담긴 상품 목록 (순서 비보장)
	Items []contract.Product `json:"items"`
	// 담긴 상품 수
	Count int `json:"count" example:"2"`
}

// ToggleWishlistResponse 위시리스트 토글 결과 응답
type ToggleWishlistResponse struct {
	// 토글 결과 위시리스트에 담겨있는지 여부 (true: 추가됨, false: 제거됨)
	InWishlist bool `json:"in_wishlist" example:"true"`
}
