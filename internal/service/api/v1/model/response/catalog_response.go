// Package response v1 API의 응답 모델을 정의합니다.
package response

import "github.com/highcountrygear/storefront-server/internal/service/contract"

// CategoryListResponse 카테고리 목록 응답
type CategoryListResponse struct {
	// 전체 카테고리 목록
	Categories []contract.Category `json:"categories"`
}

// ProductListResponse 상품 목록 응답
type ProductListResponse struct {
	// 필터링/검색 결과 상품 목록
	Products []contract.Product `json:"products"`
	// 결과 상품 수
	Count int `json:"count" example:"8"`
}

// StockStatusResponse 상품 재고 상태 응답
type StockStatusResponse struct {
	// 상품 식별자
	ProductID string `json:"product_id" example:"hl-peak-200"`
	// 현재 재고 수량
	Stock int `json:"stock" example:"3"`
	// 재고 보유 여부
	InStock bool `json:"in_stock" example:"true"`
	// 품절 임박 여부 (카테고리별 기준 이하)
	LowStock bool `json:"low_stock" example:"true"`
	// 품절 임박 판정 기준 수량
	Threshold int `json:"threshold" example:"5"`
}
