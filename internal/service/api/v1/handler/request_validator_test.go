package handler

import (
	"errors"
	"testing"

	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       interface{}
		wantErr   bool
		errSubstr []string
	}{
		{
			name: "성공: 유효한 장바구니 추가 요청",
			req: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
				Quantity:  2,
			},
			wantErr: false,
		},
		{
			name: "실패: 상품 ID 누락 시 korean 태그 필드명으로 메시지 생성",
			req: request.AddCartItemRequest{
				Quantity: 1,
			},
			wantErr:   true,
			errSubstr: []string{"상품 ID", "필수"},
		},
		{
			name: "실패: 수량 0은 gt=0 위반",
			req: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
				Quantity:  0,
			},
			wantErr:   true,
			errSubstr: []string{"수량", "필수"}, // 0은 zero value이므로 required가 먼저 걸림
		},
		{
			name: "실패: 음수 수량은 gt=0 위반",
			req: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
				Quantity:  -3,
			},
			wantErr:   true,
			errSubstr: []string{"수량", "커야 합니다"},
		},
		{
			name: "실패: 허용되지 않은 변형 코드는 oneof 위반",
			req: request.SetVariantRequest{
				Variant: "C",
			},
			wantErr:   true,
			errSubstr: []string{"변형", "다음 값 중 하나여야 합니다", "A B"},
		},
		{
			name: "성공: 변형 코드 A",
			req: request.SetVariantRequest{
				Variant: "A",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			message := FormatValidationError(err)
			for _, substr := range tt.errSubstr {
				assert.Contains(t, message, substr)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil 에러는 빈 문자열 반환", func(t *testing.T) {
		assert.Empty(t, FormatValidationError(nil))
	})

	t.Run("validator 에러가 아닌 경우 원본 메시지 반환", func(t *testing.T) {
		err := errors.New("plain error")
		assert.Equal(t, "plain error", FormatValidationError(err))
	})
}

// TestGetValidator_Singleton은 validator 인스턴스가 재사용되는지 검증합니다.
func TestGetValidator_Singleton(t *testing.T) {
	v1 := getValidator()
	v2 := getValidator()

	assert.Same(t, v1, v2, "validator 인스턴스는 한 번만 생성되어야 합니다")
}
