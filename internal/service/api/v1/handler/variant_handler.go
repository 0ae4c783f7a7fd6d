package handler

import (
	"net/http"

	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/labstack/echo/v4"
)

// variantOverride 요청에서 커머스 변형 강제 지정 값을 추출합니다.
//
// 요청 URI의 variant 쿼리 파라미터가 우선합니다. 프래그먼트는 HTTP 요청에 실리지
// 않으므로, 해시 라우팅 클라이언트(예: https://shop.example.com/#/?variant=B)는
// url 파라미터로 브라우저 주소 전체를 전달하면 프래그먼트의 지정값이 추출됩니다.
// 유효한 지정이 없으면 빈 값을 반환합니다.
func variantOverride(c echo.Context) commerce.VariantID {
	if override := commerce.ParseVariantOverride(c.Request().RequestURI); override != "" {
		return override
	}
	return commerce.ParseVariantOverride(c.QueryParam(constants.QueryParamPageURL))
}

// GetVariantHandler godoc
// @Summary 활성 커머스 변형 조회
// @Description 세션의 활성 커머스 변형(A/B)을 반환합니다. 아직 배정되지 않은 세션이면
// @Description 기본 변형(A)을 배정한 뒤 반환하며, variant 파라미터로 강제 지정할 수 있습니다.
// @Tags Variant
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param variant query string false "커머스 변형 강제 지정 (A 또는 B)" example(B)
// @Param url query string false "브라우저 주소 전체 (해시 라우팅 프래그먼트의 variant 지정 추출용)" example(https://shop.example.com/#/?variant=B)
// @Success 200 {object} response.VariantResponse "활성 변형"
// @Router /api/v1/variant [get]
func (h *Handler) GetVariantHandler(c echo.Context) error {
	variant := h.resolver.Resolve(c.Request().Context(), h.sessionID(c), variantOverride(c))

	return c.JSON(http.StatusOK, response.VariantResponse{
		Variant: variant.String(),
	})
}

// SetVariantHandler godoc
// @Summary 커머스 변형 지정
// @Description 세션의 활성 커머스 변형을 강제로 지정합니다. 지정된 변형은
// @Description 세션 저장소에 유지되어 이후 요청에서도 동일하게 적용됩니다.
// @Tags Variant
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param variant body request.SetVariantRequest true "지정할 변형"
// @Success 200 {object} response.VariantResponse "지정된 변형"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/variant [put]
func (h *Handler) SetVariantHandler(c echo.Context) error {
	req := new(request.SetVariantRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := ValidateRequest(req); err != nil {
		return NewErrValidationFailed(FormatValidationError(err))
	}

	variant := h.resolver.Resolve(c.Request().Context(), h.sessionID(c), commerce.VariantID(req.Variant))

	return c.JSON(http.StatusOK, response.VariantResponse{
		Variant: variant.String(),
	})
}
