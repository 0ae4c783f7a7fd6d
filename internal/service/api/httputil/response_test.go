package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorResponses는 모든 에러 응답 헬퍼 함수를 검증합니다.
func TestErrorResponses(t *testing.T) {
	t.Parallel()

	longMessage := strings.Repeat("a", 10000) // 10KB 메시지
	specialChars := "특수문자: <>&\"'\n\t\r"

	tests := []struct {
		name           string
		createError    func(string) error
		message        string
		expectedStatus int
	}{
		{
			name:           "BadRequest_일반 메시지",
			createError:    NewBadRequestError,
			message:        constants.ErrMsgBadRequest,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "BadRequest_빈 메시지",
			createError:    NewBadRequestError,
			message:        "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "NotFound_리소스 없음",
			createError:    NewNotFoundError,
			message:        constants.ErrMsgProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Conflict_상태 충돌",
			createError:    NewConflictError,
			message:        "이미 처리된 요청입니다",
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "TooManyRequests_요청 제한",
			createError:    NewTooManyRequestsError,
			message:        constants.ErrMsgTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:           "InternalServerError_서버 오류",
			createError:    NewInternalServerError,
			message:        constants.ErrMsgInternalServer,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "ServiceUnavailable_서비스 불가",
			createError:    NewServiceUnavailableError,
			message:        "서비스 이용 불가",
			expectedStatus: http.StatusServiceUnavailable,
		},
		// 엣지 케이스 통합
		{
			name:           "EdgeCase_매우 긴 메시지",
			createError:    NewBadRequestError,
			message:        longMessage,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "EdgeCase_특수 문자 포함",
			createError:    NewNotFoundError,
			message:        specialChars,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.createError(tt.message)
			require.Error(t, err)

			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok, "반환된 에러는 *echo.HTTPError 타입이어야 합니다")

			assert.Equal(t, tt.expectedStatus, httpErr.Code)

			errResp, ok := httpErr.Message.(response.ErrorResponse)
			require.True(t, ok, "에러 메시지는 response.ErrorResponse 타입이어야 합니다")

			assert.Equal(t, tt.message, errResp.Message)
			assert.Equal(t, tt.expectedStatus, errResp.ResultCode)
		})
	}
}

// TestSuccess는 성공 응답 생성을 검증합니다.
func TestSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Success(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp response.SuccessResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ResultCode)
	assert.Equal(t, "성공", resp.Message)
}
