package response

import "github.com/highcountrygear/storefront-server/internal/service/contract"

// RecentlyViewedResponse 최근 본 상품 목록 응답
type RecentlyViewedResponse struct {
	// 최근 본 상품 목록 (최신순, 최대 10개)
	Items []contract.Product `json:"items"`
}
