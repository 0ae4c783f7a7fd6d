// Package money 상거래 금액 계산에 사용되는 반올림 및 표시 형식 유틸리티를 제공합니다.
//
// 모든 가격 계산은 float64로 수행하고, 최종 결과에만 Round2를 적용하는 것이 원칙입니다.
// 중간 계산 단계에서 반올림하면 합산 오차가 누적되므로 주의해야 합니다.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// Round2 금액을 센트 단위(소수점 둘째 자리)로 반올림합니다.
//
// 음수에 대해서도 0에서 멀어지는 방향이 아닌 가장 가까운 값으로 반올림되도록
// math.Round(v*100)/100 방식을 사용합니다.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatUSD 금액을 미국 달러 표시 형식("$1,234.56")의 문자열로 변환합니다.
// API 응답의 표시용 필드에만 사용하며, 계산에는 절대 사용하지 않습니다.
func FormatUSD(v float64) string {
	return usdPrinter.Sprintf("$%v", number.Decimal(Round2(v), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
