// Package inventory 카테고리별 재고 부족(low-stock) 기준치를 제공합니다.
//
// 기준치는 카테고리별 판매 속도와 재입고 주기를 반영한 정적 설정이며,
// 프레젠테이션 계층의 긴급성 메시지("Only 3 left!") 노출 판단에 사용됩니다.
package inventory

import (
	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

// DefaultLowStockThreshold 알 수 없는 카테고리에 적용되는 기본 기준치
const DefaultLowStockThreshold = 5

// categoryLowStock 카테고리별 재고 부족 기준치 (기준치 이하이면 재고 부족)
var categoryLowStock = map[contract.CategoryID]int{
	// 조명 및 하드굿
	"headlamps":   5,
	"cookware":    5,
	"knives":      3,
	"multi-tools": 4,

	// 소프트굿 (사이즈/색상 변형이 많아 기준치가 높음)
	"base-layers":  7,
	"hiking-socks": 8,
	"gloves":       6,
	"hats":         6,

	// 하이드레이션 (재고는 많지만 희소성 신호의 가치가 큼)
	"water-bottles": 6,
}

// LowStockThreshold 카테고리의 재고 부족 기준치를 반환합니다.
// 정의되지 않은 카테고리(또는 빈 식별자)는 기본 기준치를 사용합니다.
func LowStockThreshold(categoryID contract.CategoryID) int {
	if categoryID.IsEmpty() {
		return DefaultLowStockThreshold
	}
	if threshold, ok := categoryLowStock[categoryID]; ok {
		return threshold
	}
	return DefaultLowStockThreshold
}

// IsLowStock 주어진 재고 수량이 재고 부족에 해당하는지 판정합니다.
//
// 재고가 0 이하인 경우는 '품절'이라는 별개의 상태이므로 재고 부족으로
// 판정하지 않습니다. 재고를 알 수 없는 상품은 호출 측에서 stock에 0을
// 전달하여 판정에서 제외합니다.
func IsLowStock(stock int, categoryID contract.CategoryID) bool {
	if stock <= 0 {
		return false
	}
	return stock <= LowStockThreshold(categoryID)
}
