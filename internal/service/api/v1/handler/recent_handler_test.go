package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordRecentlyViewed 상품 열람을 기록하는 테스트 헬퍼입니다.
func recordRecentlyViewed(t *testing.T, h *Handler, sessionID contract.SessionID, productID string) {
	t.Helper()

	rec, c := createTestRequest(t, http.MethodPost, "/api/v1/recently-viewed", request.ProductRefRequest{
		ProductID: productID,
	}, sessionID)

	require.NoError(t, invokeHandler(h.RecordRecentlyViewedHandler, c))
	require.Equal(t, http.StatusOK, rec.Code)
}

// listRecentlyViewed 최근 본 상품 목록을 조회하는 테스트 헬퍼입니다.
func listRecentlyViewed(t *testing.T, h *Handler, sessionID contract.SessionID) response.RecentlyViewedResponse {
	t.Helper()

	rec, c := createTestRequest(t, http.MethodGet, "/api/v1/recently-viewed", nil, sessionID)
	require.NoError(t, invokeHandler(h.GetRecentlyViewedHandler, c))

	var resp response.RecentlyViewedResponse
	decodeBody(t, rec, &resp)
	return resp
}

// TestRecentlyViewedHandlers는 최근 본 상품 기록/조회 핸들러를 검증합니다.
//
// 검증 범위:
//   - 최신순 반환
//   - 재열람 시 중복 없이 맨 앞으로 이동
//   - 최대 길이 초과 시 가장 오래된 항목 제거
func TestRecentlyViewedHandlers(t *testing.T) {
	t.Parallel()

	t.Run("성공: 빈 목록", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		resp := listRecentlyViewed(t, h, contract.NewSessionID())
		assert.Empty(t, resp.Items)
	})

	t.Run("성공: 최신순 반환", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		recordRecentlyViewed(t, h, sessionID, "hl-peak-200")
		recordRecentlyViewed(t, h, sessionID, "wb-titan-1l")
		recordRecentlyViewed(t, h, sessionID, "ck-trailset")

		resp := listRecentlyViewed(t, h, sessionID)
		require.Len(t, resp.Items, 3)
		assert.Equal(t, contract.ProductID("ck-trailset"), resp.Items[0].ID)
		assert.Equal(t, contract.ProductID("wb-titan-1l"), resp.Items[1].ID)
		assert.Equal(t, contract.ProductID("hl-peak-200"), resp.Items[2].ID)
	})

	t.Run("성공: 재열람 시 중복 없이 맨 앞으로 이동", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()
		recordRecentlyViewed(t, h, sessionID, "hl-peak-200")
		recordRecentlyViewed(t, h, sessionID, "wb-titan-1l")
		recordRecentlyViewed(t, h, sessionID, "hl-peak-200")

		resp := listRecentlyViewed(t, h, sessionID)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, contract.ProductID("hl-peak-200"), resp.Items[0].ID)
		assert.Equal(t, contract.ProductID("wb-titan-1l"), resp.Items[1].ID)
	})

	t.Run("성공: 최대 길이 초과 시 가장 오래된 항목 제거", func(t *testing.T) {
		t.Parallel()

		h, _ := setupTestHandler(t)
		sessionID := contract.NewSessionID()

		// 내장 카탈로그 전체(최대 길이보다 많음)를 순서대로 열람
		products := h.catalog.Products()
		require.Greater(t, len(products), store.MaxRecentlyViewed)

		for _, p := range products {
			recordRecentlyViewed(t, h, sessionID, p.ID.String())
		}

		resp := listRecentlyViewed(t, h, sessionID)
		require.Len(t, resp.Items, store.MaxRecentlyViewed)

		// 맨 앞은 마지막으로 열람한 상품이어야 합니다.
		last := products[len(products)-1]
		assert.Equal(t, last.ID, resp.Items[0].ID,
			fmt.Sprintf("마지막 열람 상품(%s)이 목록 맨 앞이어야 합니다", last.ID))

		// 처음 열람한 상품은 밀려나서 목록에 없어야 합니다.
		for _, item := range resp.Items {
			assert.NotEqual(t, products[0].ID, item.ID)
		}
	})
}

// TestRecordRecentlyViewedHandler_InvalidRequests는 기록 요청의 검증 실패 처리를 확인합니다.
func TestRecordRecentlyViewedHandler_InvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		reqBody        interface{}
		expectedStatus int
	}{
		{
			name:           "실패: 상품 ID 누락",
			reqBody:        request.ProductRefRequest{ProductID: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 잘못된 JSON 형식",
			reqBody:        "invalid-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 존재하지 않는 상품 (404)",
			reqBody:        request.ProductRefRequest{ProductID: "no-such-product"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := setupTestHandler(t)
			_, c := createTestRequest(t, http.MethodPost, "/api/v1/recently-viewed", tt.reqBody, "")

			err := invokeHandler(h.RecordRecentlyViewedHandler, c)
			requireHTTPError(t, err, tt.expectedStatus)
		})
	}
}

// TestClearRecentlyViewedHandler는 최근 본 상품 기록 비우기 핸들러를 검증합니다.
func TestClearRecentlyViewedHandler(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)
	sessionID := contract.NewSessionID()
	recordRecentlyViewed(t, h, sessionID, "hl-peak-200")
	recordRecentlyViewed(t, h, sessionID, "wb-titan-1l")

	rec, c := createTestRequest(t, http.MethodDelete, "/api/v1/recently-viewed", nil, sessionID)
	require.NoError(t, invokeHandler(h.ClearRecentlyViewedHandler, c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := listRecentlyViewed(t, h, sessionID)
	assert.Empty(t, resp.Items)
}
