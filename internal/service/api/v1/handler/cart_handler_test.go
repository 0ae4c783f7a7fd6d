package handler

import (
	"net/http"
	"net/url"
	"testing"

	apiresponse "github.com/highcountrygear/storefront-server/internal/service/api/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addCartItem 장바구니에 상품을 담는 테스트 헬퍼입니다.
func addCartItem(t *testing.T, h *Handler, sessionID contract.SessionID, productID string, quantity int) {
	t.Helper()

	rec, c := createTestRequest(t, http.MethodPost, "/api/v1/cart/items", request.AddCartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, sessionID)

	require.NoError(t, invokeHandler(h.AddCartItemHandler, c))
	require.Equal(t, http.StatusOK, rec.Code)
}

// TestGetCartHandler_EmptyCart는 비어있는 세션의 장바구니 조회를 검증합니다.
func TestGetCartHandler_EmptyCart(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)
	rec, c := createTestRequest(t, http.MethodGet, "/api/v1/cart", nil, "")

	require.NoError(t, invokeHandler(h.GetCartHandler, c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.CartResponse
	decodeBody(t, rec, &resp)

	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalItems)
	assert.Zero(t, resp.Subtotal)
}

// TestAddCartItemHandler는 장바구니 상품 추가 핸들러를 검증합니다.
//
// 검증 범위:
//   - 정상 추가 및 응답의 장바구니 상태
//   - 동일 상품 반복 추가 시 수량 누적
//   - 필수 필드 누락/수량 하한 검증
//   - JSON 바인딩 오류 처리
//   - 존재하지 않는 상품 처리
func TestAddCartItemHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		reqBody           interface{}
		expectedStatus    int
		verifyResponse    func(*testing.T, response.CartResponse)
		verifyErrResponse func(*testing.T, apiresponse.ErrorResponse)
	}{
		{
			name: "성공: 정상적인 상품 추가",
			reqBody: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
				Quantity:  2,
			},
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, resp response.CartResponse) {
				require.Len(t, resp.Items, 1)
				assert.Equal(t, contract.ProductID("hl-peak-200"), resp.Items[0].ProductID)
				assert.Equal(t, "Peak 200 Headlamp", resp.Items[0].Name)
				assert.InDelta(t, 34.99, resp.Items[0].Price, 0.001)
				assert.Equal(t, 2, resp.Items[0].Quantity)
				assert.Equal(t, 2, resp.TotalItems)
				assert.InDelta(t, 69.98, resp.Subtotal, 0.001)
			},
		},
		{
			name: "실패: 상품 ID 누락",
			reqBody: request.AddCartItemRequest{
				ProductID: "",
				Quantity:  1,
			},
			expectedStatus: http.StatusBadRequest,
			verifyErrResponse: func(t *testing.T, errResp apiresponse.ErrorResponse) {
				// 검증 라이브러리 메시지는 상수가 아니므로 부분 일치 확인
				assert.Contains(t, errResp.Message, "상품 ID")
				assert.Contains(t, errResp.Message, "필수")
			},
		},
		{
			name: "실패: 수량 누락",
			reqBody: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
			},
			expectedStatus: http.StatusBadRequest,
			verifyErrResponse: func(t *testing.T, errResp apiresponse.ErrorResponse) {
				assert.Contains(t, errResp.Message, "수량")
			},
		},
		{
			name: "실패: 수량이 음수",
			reqBody: request.AddCartItemRequest{
				ProductID: "hl-peak-200",
				Quantity:  -3,
			},
			expectedStatus: http.StatusBadRequest,
			verifyErrResponse: func(t *testing.T, errResp apiresponse.ErrorResponse) {
				assert.Contains(t, errResp.Message, "수량")
			},
		},
		{
			name:           "실패: 잘못된 JSON 형식",
			reqBody:        "invalid-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "실패: 존재하지 않는 상품 (404)",
			reqBody: request.AddCartItemRequest{
				ProductID: "no-such-product",
				Quantity:  1,
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := setupTestHandler(t)
			rec, c := createTestRequest(t, http.MethodPost, "/api/v1/cart/items", tt.reqBody, "")

			err := invokeHandler(h.AddCartItemHandler, c)

			if tt.expectedStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp response.CartResponse
				decodeBody(t, rec, &resp)
				tt.verifyResponse(t, resp)
			} else {
				httpErr := requireHTTPError(t, err, tt.expectedStatus)

				if tt.verifyErrResponse != nil {
					errResp, ok := httpErr.Message.(apiresponse.ErrorResponse)
					require.True(t, ok, "에러 메시지는 response.ErrorResponse 타입이어야 합니다")
					tt.verifyErrResponse(t, errResp)
				}
			}
		})
	}
}

// TestAddCartItemHandler_AccumulatesQuantity는 동일 상품을 반복해서 담으면
// 별도의 항목이 생기지 않고 수량이 누적됨을 검증합니다.
func TestAddCartItemHandler_AccumulatesQuantity(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)
	sessionID := contract.NewSessionID()

	addCartItem(t, h, sessionID, "hl-peak-200", 1)
	addCartItem(t, h, sessionID, "hl-peak-200", 2)

	rec, c := createTestRequest(t, http.MethodGet, "/api/v1/cart", nil, sessionID)
	require.NoError(t, invokeHandler(h.GetCartHandler, c))

	var resp response.CartResponse
	decodeBody(t, rec, &resp)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 3, resp.TotalItems)
}

// TestCartQuantityHandlers는 수량 증가/감소/제거 핸들러의 상태 전이를 검증합니다.
func TestCartQuantityHandlers(t *testing.T) {
	t.Parallel()

	t.Run("증가: 담긴 상품의 수량이 1 증가", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		addCartItem(t, h, sessionID, "wb-titan-1l", 1)

		rec, c := createTestRequest(t, http.MethodPost, "/api/v1/cart/items/:id/increment", nil, sessionID)
		setPathParam(c, "wb-titan-1l")

		require.NoError(t, invokeHandler(h.IncrementCartItemHandler, c))

		var resp response.CartResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)
	})

	t.Run("감소: 수량이 0이 되면 항목이 제거됨", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		addCartItem(t, h, sessionID, "wb-titan-1l", 1)

		rec, c := createTestRequest(t, http.MethodPost, "/api/v1/cart/items/:id/decrement", nil, sessionID)
		setPathParam(c, "wb-titan-1l")

		require.NoError(t, invokeHandler(h.DecrementCartItemHandler, c))

		var resp response.CartResponse
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Items)
		assert.Zero(t, resp.TotalItems)
	})

	t.Run("제거: 수량과 무관하게 항목 전체가 제거됨", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		addCartItem(t, h, sessionID, "hl-peak-200", 5)

		rec, c := createTestRequest(t, http.MethodDelete, "/api/v1/cart/items/:id", nil, sessionID)
		setPathParam(c, "hl-peak-200")

		require.NoError(t, invokeHandler(h.RemoveCartItemHandler, c))

		var resp response.CartResponse
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Items)
	})

	t.Run("제거: 담기지 않은 상품은 아무 일도 하지 않음", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		addCartItem(t, h, sessionID, "hl-peak-200", 1)

		rec, c := createTestRequest(t, http.MethodDelete, "/api/v1/cart/items/:id", nil, sessionID)
		setPathParam(c, "wb-titan-1l")

		require.NoError(t, invokeHandler(h.RemoveCartItemHandler, c))

		var resp response.CartResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, contract.ProductID("hl-peak-200"), resp.Items[0].ProductID)
	})
}

// TestClearCartHandler는 장바구니 비우기 핸들러를 검증합니다.
func TestClearCartHandler(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)
	sessionID := contract.NewSessionID()
	addCartItem(t, h, sessionID, "hl-peak-200", 2)
	addCartItem(t, h, sessionID, "wb-titan-1l", 1)

	rec, c := createTestRequest(t, http.MethodDelete, "/api/v1/cart", nil, sessionID)
	require.NoError(t, invokeHandler(h.ClearCartHandler, c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var success apiresponse.SuccessResponse
	decodeBody(t, rec, &success)
	assert.Equal(t, 0, success.ResultCode)

	// 비운 후 장바구니는 비어있어야 합니다.
	rec, c = createTestRequest(t, http.MethodGet, "/api/v1/cart", nil, sessionID)
	require.NoError(t, invokeHandler(h.GetCartHandler, c))

	var resp response.CartResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
}

// TestGetCartQuoteHandler는 장바구니 가격 견적 핸들러를 검증합니다.
//
// 기준 장바구니: Titan 1L Bottle($24.00) x 2 = $48.00
//
// 변형 A: 2개 이상 10% 할인($4.80) → $43.20, 무료배송 기준 $39 충족,
// 세금 $43.20 x 8.2% = $3.54, 합계 $46.74
//
// 변형 B: 2개 이상 5% 할인($2.40) → $45.60, 무료배송 기준 $49 미달로
// 고정 배송비 $5.99, 세금 ($45.60+$5.99) x 8.2% = $4.23, 합계 $55.82
func TestGetCartQuoteHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		verify func(*testing.T, pricing.Quote)
	}{
		{
			name: "성공: 기본 변형(A) 견적",
			url:  "/api/v1/cart/quote",
			verify: func(t *testing.T, quote pricing.Quote) {
				assert.Equal(t, "A", quote.Variant.String())
				assert.Equal(t, 2, quote.ItemCount)
				assert.InDelta(t, 48.00, quote.Subtotal, 0.001)
				assert.InDelta(t, 0.10, quote.Discount.Rate, 0.001)
				assert.InDelta(t, 4.80, quote.Discount.Amount, 0.001)
				assert.InDelta(t, 43.20, quote.SubtotalAfterDiscount, 0.001)
				assert.Zero(t, quote.Shipping.Cost)
				assert.Equal(t, pricing.ShippingLabelFree, quote.Shipping.Label)
				assert.InDelta(t, 3.54, quote.Tax, 0.001)
				assert.False(t, quote.Gift.Eligible)
				assert.InDelta(t, 46.74, quote.Total, 0.001)
			},
		},
		{
			name: "성공: url 파라미터의 해시 프래그먼트로 변형 B 지정 견적",
			url:  "/api/v1/cart/quote?url=" + url.QueryEscape("https://shop.example.com/#/?variant=B"),
			verify: func(t *testing.T, quote pricing.Quote) {
				assert.Equal(t, "B", quote.Variant.String())
				assert.InDelta(t, 0.05, quote.Discount.Rate, 0.001)
				assert.InDelta(t, 55.82, quote.Total, 0.001)
			},
		},
		{
			name: "성공: 변형 B 강제 지정 견적",
			url:  "/api/v1/cart/quote?variant=B",
			verify: func(t *testing.T, quote pricing.Quote) {
				assert.Equal(t, "B", quote.Variant.String())
				assert.InDelta(t, 0.05, quote.Discount.Rate, 0.001)
				assert.InDelta(t, 2.40, quote.Discount.Amount, 0.001)
				assert.InDelta(t, 45.60, quote.SubtotalAfterDiscount, 0.001)
				assert.InDelta(t, pricing.FlatShippingCost, quote.Shipping.Cost, 0.001)
				assert.Equal(t, pricing.ShippingLabelFlat, quote.Shipping.Label)
				assert.InDelta(t, 4.23, quote.Tax, 0.001)
				assert.InDelta(t, 55.82, quote.Total, 0.001)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := setupTestHandler(t)
			sessionID := contract.NewSessionID()
			addCartItem(t, h, sessionID, "wb-titan-1l", 2)

			rec, c := createTestRequest(t, http.MethodGet, tt.url, nil, sessionID)
			require.NoError(t, invokeHandler(h.GetCartQuoteHandler, c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var quote pricing.Quote
			decodeBody(t, rec, &quote)
			tt.verify(t, quote)
		})
	}
}

// TestGetCartQuoteHandler_PersistsVariantOverride는 견적 조회 시 지정한 변형이
// 세션에 유지되어 이후 견적에도 적용됨을 검증합니다.
func TestGetCartQuoteHandler_PersistsVariantOverride(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)
	sessionID := contract.NewSessionID()
	addCartItem(t, h, sessionID, "wb-titan-1l", 2)

	// 변형 B를 강제 지정하여 견적 조회
	rec, c := createTestRequest(t, http.MethodGet, "/api/v1/cart/quote?variant=B", nil, sessionID)
	require.NoError(t, invokeHandler(h.GetCartQuoteHandler, c))

	// 이후 파라미터 없이 조회해도 변형 B가 유지되어야 합니다.
	rec, c = createTestRequest(t, http.MethodGet, "/api/v1/cart/quote", nil, sessionID)
	require.NoError(t, invokeHandler(h.GetCartQuoteHandler, c))

	var quote pricing.Quote
	decodeBody(t, rec, &quote)
	assert.Equal(t, "B", quote.Variant.String())
}

// TestCartHandlers_StoreFailure는 저장소 장애 시 쓰기 경로의 동작을 검증합니다.
//
// 장바구니 스토어는 fail-soft 정책을 따르므로, 저장 실패가 요청 실패(5xx)로
// 이어지지 않습니다. 다만 상태는 유지되지 않으므로 응답은 빈 장바구니입니다.
func TestCartHandlers_StoreFailure(t *testing.T) {
	t.Parallel()

	h, backend := setupTestHandler(t)
	sessionID := contract.NewSessionID()

	backend.FailSaves = true

	rec, c := createTestRequest(t, http.MethodPost, "/api/v1/cart/items", request.AddCartItemRequest{
		ProductID: "hl-peak-200",
		Quantity:  1,
	}, sessionID)

	require.NoError(t, invokeHandler(h.AddCartItemHandler, c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.CartResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
}
