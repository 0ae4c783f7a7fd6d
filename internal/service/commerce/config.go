// Package commerce A/B 실험용 커머스 설정(할인 래더, 무료배송/사은품 기준액)과
// 세션별 활성 변형(Variant) 결정 로직을 제공합니다.
package commerce

import (
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

// VariantID 커머스 설정 변형을 식별하는 식별자입니다. "A"(대조군) 또는 "B"(실험군)만 유효합니다.
type VariantID string

const (
	// VariantA 대조군(Control) 변형
	VariantA VariantID = "A"
	// VariantB 실험군(Alternative) 변형
	VariantB VariantID = "B"

	// DefaultVariant 오버라이드도 저장된 값도 없을 때 배정되는 기본 변형
	DefaultVariant = VariantA
)

// IsValid 변형 식별자가 정의된 변형 중 하나인지 여부를 반환합니다.
func (id VariantID) IsValid() bool {
	return id == VariantA || id == VariantB
}

func (id VariantID) String() string {
	return string(id)
}

// DiscountStep 할인 래더의 단일 단계입니다.
// 장바구니의 총 상품 수량이 MinItems 이상이면 Rate가 적용 후보가 됩니다.
type DiscountStep struct {
	// MinItems 이 단계가 적용되기 위한 최소 상품 수량
	MinItems int `json:"min_items"`
	// Rate 할인율 (소수, 예: 0.1 = 10%)
	Rate float64 `json:"rate"`
}

// Config 단일 변형의 커머스 설정입니다.
type Config struct {
	// ID 변형 식별자
	ID VariantID `json:"id"`
	// DiscountLadder 상품 수량 기반의 누진 할인 래더. MinItems 오름차순으로 정렬되어 있어야 합니다.
	DiscountLadder []DiscountStep `json:"discount_ladder"`
	// FreeShippingThreshold 무료배송 기준액 (USD, 할인 적용 후 소계 기준)
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
	// FreeGiftThreshold 사은품 증정 기준액 (USD, 할인 적용 후 소계 기준)
	FreeGiftThreshold float64 `json:"free_gift_threshold"`
}

// Validate 커머스 설정의 구조적 유효성을 검증합니다.
//
// 할인 래더 조회는 '마지막으로 일치하는 단계'의 할인율을 선택하므로,
// 래더가 MinItems 오름차순 및 Rate 비내림차순이 아니면 수량이 늘어날수록
// 할인율이 나빠지는 모순이 생길 수 있습니다. 이 함수는 그런 설정을 거부합니다.
func (c *Config) Validate() error {
	if !c.ID.IsValid() {
		return apperrors.Newf(apperrors.InvalidInput, "유효하지 않은 변형 식별자입니다 (id=%q)", c.ID)
	}
	if c.FreeShippingThreshold < 0 {
		return apperrors.New(apperrors.InvalidInput, "무료배송 기준액은 음수일 수 없습니다")
	}
	if c.FreeGiftThreshold < 0 {
		return apperrors.New(apperrors.InvalidInput, "사은품 기준액은 음수일 수 없습니다")
	}

	for i, step := range c.DiscountLadder {
		if step.MinItems < 1 {
			return apperrors.Newf(apperrors.InvalidInput, "할인 단계의 최소 수량은 1 이상이어야 합니다 (index=%d)", i)
		}
		if step.Rate < 0 || step.Rate >= 1 {
			return apperrors.Newf(apperrors.InvalidInput, "할인율은 [0, 1) 범위여야 합니다 (index=%d, rate=%f)", i, step.Rate)
		}
		if i > 0 {
			prev := c.DiscountLadder[i-1]
			if step.MinItems <= prev.MinItems {
				return apperrors.Newf(apperrors.InvalidInput, "할인 래더는 최소 수량 오름차순으로 정렬되어야 합니다 (index=%d)", i)
			}
			if step.Rate < prev.Rate {
				return apperrors.Newf(apperrors.InvalidInput, "할인 래더의 할인율은 비내림차순이어야 합니다 (index=%d)", i)
			}
		}
	}

	return nil
}

// variantA 대조군 설정
var variantA = Config{
	ID: VariantA,
	DiscountLadder: []DiscountStep{
		{MinItems: 2, Rate: 0.10},
		{MinItems: 3, Rate: 0.15},
	},
	FreeShippingThreshold: 39,
	FreeGiftThreshold:     120,
}

// variantB 실험군 설정
var variantB = Config{
	ID: VariantB,
	DiscountLadder: []DiscountStep{
		{MinItems: 2, Rate: 0.05},
		{MinItems: 3, Rate: 0.10},
		{MinItems: 4, Rate: 0.15},
	},
	FreeShippingThreshold: 49,
	FreeGiftThreshold:     150,
}

// ConfigFor 변형 식별자에 해당하는 커머스 설정을 반환합니다.
// 유효하지 않은 식별자는 기본 변형(A)의 설정으로 처리됩니다.
func ConfigFor(id VariantID) Config {
	if id == VariantB {
		return variantB
	}
	return variantA
}

// ApplyOverrides 설정 파일에서 로드된 변형 데이터로 내장 기본값을 교체합니다.
//
// 전달된 모든 설정이 Validate를 통과해야 하며, 하나라도 유효하지 않거나
// 변형 식별자가 중복되면 아무것도 교체하지 않고 에러를 반환합니다.
// 패키지 전역 변형 데이터를 변경하므로 서버 구동 시점(단일 고루틴)에만 호출해야 합니다.
func ApplyOverrides(overrides []Config) error {
	seen := make(map[VariantID]bool, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		if err := o.Validate(); err != nil {
			return err
		}
		if seen[o.ID] {
			return apperrors.Newf(apperrors.InvalidInput, "변형 설정이 중복되었습니다 (id=%q)", o.ID)
		}
		seen[o.ID] = true
	}

	for _, o := range overrides {
		switch o.ID {
		case VariantA:
			variantA = o
		case VariantB:
			variantB = o
		}
	}

	return nil
}
