package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/middleware"
	"github.com/highcountrygear/storefront-server/internal/service/catalog"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/store"
	"github.com/highcountrygear/storefront-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// setupTestHandler 내장 카탈로그와 인메모리 저장소로 테스트용 핸들러를 생성합니다.
func setupTestHandler(t *testing.T) (*Handler, *testutil.MemStateStore) {
	t.Helper()

	backend := testutil.NewMemStateStore()
	h := NewHandler(catalog.New(), store.New(backend), commerce.NewResolver(backend))

	return h, backend
}

// createTestRequest 테스트용 HTTP 요청을 생성합니다.
//
// sessionID가 비어있지 않으면 X-Session-ID 헤더로 전달되어, 세션 미들웨어를
// 통과한 뒤 해당 세션의 상태에 접근하게 됩니다.
func createTestRequest(t *testing.T, method, url string, body interface{}, sessionID contract.SessionID) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()

	var bodyBytes []byte
	if s, ok := body.(string); ok {
		bodyBytes = []byte(s)
	} else if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "Body marshaling failed")
		bodyBytes = b
	}

	req := httptest.NewRequest(method, url, strings.NewReader(string(bodyBytes)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if !sessionID.IsEmpty() {
		req.Header.Set(constants.HeaderSessionID, sessionID.String())
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, c
}

// invokeHandler 실제 라우팅과 동일하게 세션 미들웨어를 거쳐 핸들러를 실행합니다.
func invokeHandler(h echo.HandlerFunc, c echo.Context) error {
	return middleware.SessionID()(h)(c)
}

// setPathParam Echo Context에 경로 파라미터(:id)를 설정합니다.
func setPathParam(c echo.Context, value string) {
	c.SetParamNames(constants.PathParamProductID)
	c.SetParamValues(value)
}

// decodeBody 응답 본문을 JSON으로 역직렬화합니다.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "응답 본문이 올바른 JSON이어야 합니다")
}

// requireHTTPError 핸들러 에러가 기대한 상태 코드의 *echo.HTTPError인지 검증하고 반환합니다.
func requireHTTPError(t *testing.T, err error, expectedStatus int) *echo.HTTPError {
	t.Helper()

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "에러는 *echo.HTTPError 타입이어야 합니다")
	assert.Equal(t, expectedStatus, httpErr.Code)

	return httpErr
}

// =============================================================================
// NewHandler Tests
// =============================================================================

func TestNewHandler(t *testing.T) {
	t.Parallel()

	testCatalog := catalog.New()
	backend := testutil.NewMemStateStore()
	testStores := store.New(backend)
	testResolver := commerce.NewResolver(backend)

	tests := []struct {
		name        string
		catalog     *catalog.Catalog
		stores      *store.Stores
		resolver    *commerce.Resolver
		expectPanic bool
		panicMsg    string // 패닉 발생 시 기대 메시지
	}{
		{
			name:        "성공: 올바른 의존성으로 핸들러 생성",
			catalog:     testCatalog,
			stores:      testStores,
			resolver:    testResolver,
			expectPanic: false,
		},
		{
			name:        "실패: Catalog가 nil인 경우 Panic",
			catalog:     nil,
			stores:      testStores,
			resolver:    testResolver,
			expectPanic: true,
			panicMsg:    constants.PanicMsgCatalogRequired,
		},
		{
			name:        "실패: Stores가 nil인 경우 Panic",
			catalog:     testCatalog,
			stores:      nil,
			resolver:    testResolver,
			expectPanic: true,
			panicMsg:    constants.PanicMsgStoresRequired,
		},
		{
			name:        "실패: Resolver가 nil인 경우 Panic",
			catalog:     testCatalog,
			stores:      testStores,
			resolver:    nil,
			expectPanic: true,
			panicMsg:    constants.PanicMsgResolverRequired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.expectPanic {
				assert.PanicsWithValue(t, tt.panicMsg, func() {
					NewHandler(tt.catalog, tt.stores, tt.resolver)
				})
			} else {
				h := NewHandler(tt.catalog, tt.stores, tt.resolver)
				require.NotNil(t, h)
				assert.Equal(t, tt.catalog, h.catalog)
				assert.Equal(t, tt.stores, h.stores)
				assert.Equal(t, tt.resolver, h.resolver)
			}
		})
	}
}

// TestHandler_SessionIDFallback은 세션 미들웨어 없이 핸들러가 직접 호출되어도
// 새 세션 ID를 발급하여 동작함을 검증합니다.
func TestHandler_SessionIDFallback(t *testing.T) {
	t.Parallel()

	h, _ := setupTestHandler(t)

	// 미들웨어를 거치지 않은 Context
	_, c := createTestRequest(t, http.MethodGet, "/", nil, "")

	sessionID := h.sessionID(c)
	assert.False(t, sessionID.IsEmpty(), "빈 세션 ID 대신 새 세션이 발급되어야 합니다")
	assert.NoError(t, sessionID.Validate())
}
