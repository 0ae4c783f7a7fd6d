package pricing

import (
	"github.com/highcountrygear/storefront-server/internal/pkg/money"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

// Quote 장바구니 스냅샷 하나에 대한 전체 가격 견적입니다.
//
// 모든 금액은 USD이며 최종 산출 단계에서만 센트 단위 반올림이 적용됩니다.
// 세금은 추정치이므로 Total 역시 결제 전 미리보기 금액입니다.
type Quote struct {
	// Variant 견적 계산에 사용된 커머스 변형
	Variant commerce.VariantID `json:"variant"`
	// ItemCount 장바구니의 총 상품 수량
	ItemCount int `json:"item_count"`
	// Subtotal 할인 전 소계
	Subtotal float64 `json:"subtotal"`
	// Discount 번들 할인 결과
	Discount Discount `json:"discount"`
	// SubtotalAfterDiscount 할인 적용 후 소계
	SubtotalAfterDiscount float64 `json:"subtotal_after_discount"`
	// Shipping 배송비 추정 결과
	Shipping Shipping `json:"shipping"`
	// Tax 예상 세금
	Tax float64 `json:"tax"`
	// Gift 사은품 자격 판정 결과
	Gift GiftEligibility `json:"gift"`
	// Total 최종 예상 결제 금액 (소계 - 할인 + 배송비 + 세금)
	Total float64 `json:"total"`
}

// ComputeQuote 장바구니 항목과 커머스 설정으로부터 전체 견적을 구성합니다.
//
// 계산 순서: 소계 → 번들 할인 → 할인 적용 후 소계 → 배송비(무료배송 판정) →
// 예상 세금(소계+배송비 기준) → 사은품 자격(배송비 제외 기준) → 최종 금액.
func ComputeQuote(lines []contract.CartLine, cfg commerce.Config) Quote {
	itemCount := 0
	subtotal := 0.0
	for _, l := range lines {
		itemCount += l.Quantity
		subtotal += l.LineTotal()
	}

	discount := CartDiscount(lines, cfg.DiscountLadder)
	afterDiscount := subtotal - discount.Amount
	shipping := EstimateShipping(afterDiscount, cfg.FreeShippingThreshold)
	tax := EstimateTax(afterDiscount, shipping.Cost, DefaultTaxRate)
	gift := FreeGiftEligibility(afterDiscount, cfg.FreeGiftThreshold)

	return Quote{
		Variant:               cfg.ID,
		ItemCount:             itemCount,
		Subtotal:              money.Round2(subtotal),
		Discount:              discount,
		SubtotalAfterDiscount: money.Round2(afterDiscount),
		Shipping:              shipping,
		Tax:                   tax,
		Gift:                  gift,
		Total:                 money.Round2(afterDiscount + shipping.Cost + tax),
	}
}
