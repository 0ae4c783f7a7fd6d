// Package pricing 장바구니 스냅샷과 활성 커머스 설정으로부터 번들 할인,
// 배송비, 예상 세금, 사은품 자격을 계산하는 순수 함수들을 제공합니다.
//
// 모든 함수는 입력이 같으면 결과가 같은 결정적(deterministic) 함수이며,
// 반올림은 각 금액의 최종 산출 시점에 한 번만 적용합니다.
package pricing

import (
	"math"

	"github.com/highcountrygear/storefront-server/internal/pkg/money"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

const (
	// FlatShippingCost 무료배송 기준액 미달 시 적용되는 고정 배송비 (USD)
	FlatShippingCost = 5.99

	// DefaultTaxRate 세금 추정에 사용되는 기본 세율 (콜로라도 메트로 근사치, 8.2%)
	DefaultTaxRate = 0.082

	// ShippingLabelFree 무료배송 표시 라벨
	ShippingLabelFree = "Free"
	// ShippingLabelFlat 고정 배송비 표시 라벨
	ShippingLabelFlat = "Flat"
)

// Discount 장바구니에 적용된 번들 할인 결과입니다.
type Discount struct {
	// Rate 적용된 할인율 (소수)
	Rate float64 `json:"rate"`
	// Amount 할인 금액 (USD, 센트 단위 반올림 적용)
	Amount float64 `json:"amount"`
}

// Shipping 배송비 추정 결과입니다.
type Shipping struct {
	Cost  float64 `json:"cost"`
	Label string  `json:"label"`
}

// GiftEligibility 사은품 증정 자격 판정 결과입니다.
type GiftEligibility struct {
	Eligible bool `json:"eligible"`
	// Remaining 자격까지 남은 금액 (USD). 자격 충족 시 0.
	Remaining float64 `json:"remaining"`
	// Threshold 판정에 사용된 기준액 (USD)
	Threshold float64 `json:"threshold"`
}

// DiscountRate 상품 수량과 할인 래더로부터 적용 할인율을 계산합니다.
//
// 래더를 순서대로 순회하며 'MinItems <= itemCount'를 만족하는 마지막 단계의
// 할인율을 선택합니다. 래더는 MinItems 오름차순 정렬을 전제하며, 이 함수는
// 방어적으로 재정렬하지 않습니다. (commerce.Config.Validate가 정렬을 보장)
//
// 수량이 0이거나 가장 낮은 단계의 최소 수량에 미달하면 0을 반환합니다.
func DiscountRate(itemCount int, ladder []commerce.DiscountStep) float64 {
	rate := 0.0
	for _, step := range ladder {
		if itemCount >= step.MinItems {
			rate = step.Rate
		}
	}
	return rate
}

// CartDiscount 장바구니 항목 전체에 대한 번들 할인율과 할인 금액을 계산합니다.
//
// 할인율은 상품 종류 수가 아닌 총 수량 기준으로 판정됩니다. 단일 상품 3개와
// 서로 다른 상품 3개는 동일하게 취급됩니다. 할인 금액은 소계 x 할인율을
// 센트 단위로 반올림한 값입니다.
func CartDiscount(lines []contract.CartLine, ladder []commerce.DiscountStep) Discount {
	itemCount := 0
	subtotal := 0.0
	for _, l := range lines {
		itemCount += l.Quantity
		subtotal += l.LineTotal()
	}

	rate := DiscountRate(itemCount, ladder)
	return Discount{
		Rate:   rate,
		Amount: money.Round2(subtotal * rate),
	}
}

// EstimateShipping 할인 적용 후 소계를 기준으로 배송비를 추정합니다.
//
// 소계가 기준액 이상이면 무료("Free"), 미만이면 고정 배송비("Flat")입니다.
// 무게/부피 기반 계산은 하지 않습니다.
func EstimateShipping(subtotalAfterDiscount, freeThreshold float64) Shipping {
	if subtotalAfterDiscount >= freeThreshold {
		return Shipping{Cost: 0, Label: ShippingLabelFree}
	}
	return Shipping{Cost: FlatShippingCost, Label: ShippingLabelFlat}
}

// EstimateTax 장바구니 미리보기용 예상 세금을 계산합니다.
//
// 과세 기준액은 max(0, 할인 적용 후 소계 + 배송비)이며, 'tax on total' 정책에
// 따라 배송비도 과세 대상에 포함됩니다. 결과는 센트 단위로 반올림됩니다.
// 이 값은 추정치이며 최종 세액은 결제 단계에서 확정됩니다.
func EstimateTax(subtotalAfterDiscount, shippingCost, rate float64) float64 {
	base := math.Max(0, subtotalAfterDiscount+shippingCost)
	return money.Round2(base * rate)
}

// FreeGiftEligibility 할인 적용 후 소계(배송비 제외)를 기준으로 사은품 자격을 판정합니다.
// 소계가 기준액과 정확히 같은 경우에도 자격이 인정됩니다.
func FreeGiftEligibility(subtotalAfterDiscount, giftThreshold float64) GiftEligibility {
	remaining := math.Max(0, giftThreshold-subtotalAfterDiscount)
	return GiftEligibility{
		Eligible:  remaining <= 0,
		Remaining: remaining,
		Threshold: giftThreshold,
	}
}
