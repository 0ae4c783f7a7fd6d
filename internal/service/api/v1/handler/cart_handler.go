package handler

import (
	"net/http"

	"github.com/highcountrygear/storefront-server/internal/pkg/money"
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/httputil"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/pricing"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// GetCartHandler godoc
// @Summary 장바구니 조회
// @Description 세션의 현재 장바구니 상태(담긴 상품, 총 수량, 할인 전 소계)를 반환합니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.CartResponse "장바구니 상태"
// @Router /api/v1/cart [get]
func (h *Handler) GetCartHandler(c echo.Context) error {
	sessionID := h.sessionID(c)
	ctx := c.Request().Context()

	lines, err := h.stores.Cart.Lines(ctx, sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, newCartResponse(lines))
}

// AddCartItemHandler godoc
// @Summary 장바구니 상품 추가
// @Description 상품을 장바구니에 담습니다. 이미 담긴 상품이면 수량이 누적됩니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param item body request.AddCartItemRequest true "담을 상품과 수량"
// @Success 200 {object} response.CartResponse "변경된 장바구니 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/cart/items [post]
func (h *Handler) AddCartItemHandler(c echo.Context) error {
	req := new(request.AddCartItemRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := ValidateRequest(req); err != nil {
		return NewErrValidationFailed(FormatValidationError(err))
	}

	product, err := h.catalog.Product(contract.ProductID(req.ProductID))
	if err != nil {
		return NewErrProductNotFound()
	}

	sessionID := h.sessionID(c)
	ctx := c.Request().Context()

	if err := h.stores.Cart.Add(ctx, sessionID, product, req.Quantity); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"session_id": sessionID.String(),
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	}).Debug("장바구니 상품 추가")

	return h.respondWithCart(c, sessionID)
}

// RemoveCartItemHandler godoc
// @Summary 장바구니 상품 제거
// @Description 장바구니에서 해당 상품 줄을 통째로 제거합니다. 없는 상품이면 아무 일도 하지 않습니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} response.CartResponse "변경된 장바구니 상태"
// @Router /api/v1/cart/items/{id} [delete]
func (h *Handler) RemoveCartItemHandler(c echo.Context) error {
	sessionID := h.sessionID(c)

	if err := h.stores.Cart.Remove(c.Request().Context(), sessionID, contract.ProductID(c.Param(constants.PathParamProductID))); err != nil {
		return httputil.FromAppError(err)
	}

	return h.respondWithCart(c, sessionID)
}

// IncrementCartItemHandler godoc
// @Summary 장바구니 상품 수량 증가
// @Description 담긴 상품의 수량을 1 증가시킵니다. 담기지 않은 상품이면 아무 일도 하지 않습니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} response.CartResponse "변경된 장바구니 상태"
// @Router /api/v1/cart/items/{id}/increment [post]
func (h *Handler) IncrementCartItemHandler(c echo.Context) error {
	sessionID := h.sessionID(c)

	if err := h.stores.Cart.Increment(c.Request().Context(), sessionID, contract.ProductID(c.Param(constants.PathParamProductID))); err != nil {
		return httputil.FromAppError(err)
	}

	return h.respondWithCart(c, sessionID)
}

// DecrementCartItemHandler godoc
// @Summary 장바구니 상품 수량 감소
// @Description 담긴 상품의 수량을 1 감소시킵니다. 수량이 0이 되면 상품 줄이 제거됩니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} response.CartResponse "변경된 장바구니 상태"
// @Router /api/v1/cart/items/{id}/decrement [post]
func (h *Handler) DecrementCartItemHandler(c echo.Context) error {
	sessionID := h.sessionID(c)

	if err := h.stores.Cart.Decrement(c.Request().Context(), sessionID, contract.ProductID(c.Param(constants.PathParamProductID))); err != nil {
		return httputil.FromAppError(err)
	}

	return h.respondWithCart(c, sessionID)
}

// ClearCartHandler godoc
// @Summary 장바구니 비우기
// @Description 세션의 장바구니를 비웁니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/cart [delete]
func (h *Handler) ClearCartHandler(c echo.Context) error {
	if err := h.stores.Cart.Clear(c.Request().Context(), h.sessionID(c)); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}

// GetCartQuoteHandler godoc
// @Summary 장바구니 가격 견적 조회
// @Description 세션의 장바구니 전체에 대한 가격 견적(번들 할인, 배송비, 예상 세금,
// @Description 사은품 자격, 최종 금액)을 반환합니다. 견적에 사용되는 커머스 변형은
// @Description variant 파라미터로 강제 지정할 수 있으며, 지정하면 세션에 유지됩니다.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param variant query string false "커머스 변형 강제 지정 (A 또는 B)" example(B)
// @Param url query string false "브라우저 주소 전체 (해시 라우팅 프래그먼트의 variant 지정 추출용)" example(https://shop.example.com/#/?variant=B)
// @Success 200 {object} pricing.Quote "가격 견적"
// @Router /api/v1/cart/quote [get]
func (h *Handler) GetCartQuoteHandler(c echo.Context) error {
	sessionID := h.sessionID(c)
	ctx := c.Request().Context()

	lines, err := h.stores.Cart.Lines(ctx, sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	cfg := h.resolver.ResolveConfig(ctx, sessionID, variantOverride(c))

	return c.JSON(http.StatusOK, pricing.ComputeQuote(lines, cfg))
}

// respondWithCart 변경 이후의 장바구니 상태를 응답으로 반환합니다.
func (h *Handler) respondWithCart(c echo.Context, sessionID contract.SessionID) error {
	lines, err := h.stores.Cart.Lines(c.Request().Context(), sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, newCartResponse(lines))
}

// newCartResponse 장바구니 스냅샷으로부터 응답 모델을 구성합니다.
func newCartResponse(lines []contract.CartLine) response.CartResponse {
	totalItems := 0
	subtotal := 0.0
	for _, l := range lines {
		totalItems += l.Quantity
		subtotal += l.LineTotal()
	}

	return response.CartResponse{
		Items:      lines,
		TotalItems: totalItems,
		Subtotal:   money.Round2(subtotal),
	}
}
