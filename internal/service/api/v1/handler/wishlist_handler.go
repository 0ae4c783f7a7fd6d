package handler

import (
	"net/http"

	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/httputil"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/request"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// GetWishlistHandler godoc
// @Summary 위시리스트 조회
// @Description 세션의 위시리스트에 담긴 상품 목록을 반환합니다.
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.WishlistResponse "위시리스트 상태"
// @Router /api/v1/wishlist [get]
func (h *Handler) GetWishlistHandler(c echo.Context) error {
	sessionID := h.sessionID(c)

	items, err := h.stores.Wishlist.List(c.Request().Context(), sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.WishlistResponse{
		Items: items,
		Count: len(items),
	})
}

// AddWishlistItemHandler godoc
// @Summary 위시리스트 상품 추가
// @Description 상품을 위시리스트에 담습니다. 이미 담긴 상품이면 아무 일도 하지 않습니다.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param item body request.ProductRefRequest true "담을 상품"
// @Success 200 {object} response.WishlistResponse "변경된 위시리스트 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/wishlist/items [post]
func (h *Handler) AddWishlistItemHandler(c echo.Context) error {
	product, err := h.bindProductRef(c)
	if err != nil {
		return err
	}

	sessionID := h.sessionID(c)
	ctx := c.Request().Context()

	if err := h.stores.Wishlist.Add(ctx, sessionID, product); err != nil {
		return httputil.FromAppError(err)
	}

	items, err := h.stores.Wishlist.List(ctx, sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.WishlistResponse{
		Items: items,
		Count: len(items),
	})
}

// RemoveWishlistItemHandler godoc
// @Summary 위시리스트 상품 제거
// @Description 위시리스트에서 상품을 제거합니다. 없는 상품이면 아무 일도 하지 않습니다.
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/wishlist/items/{id} [delete]
func (h *Handler) RemoveWishlistItemHandler(c echo.Context) error {
	if err := h.stores.Wishlist.Remove(c.Request().Context(), h.sessionID(c), contract.ProductID(c.Param(constants.PathParamProductID))); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}

// ToggleWishlistItemHandler godoc
// @Summary 위시리스트 상품 토글
// @Description 상품이 위시리스트에 없으면 추가하고, 있으면 제거합니다.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param item body request.ProductRefRequest true "토글할 상품"
// @Success 200 {object} response.ToggleWishlistResponse "토글 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/wishlist/toggle [post]
func (h *Handler) ToggleWishlistItemHandler(c echo.Context) error {
	product, err := h.bindProductRef(c)
	if err != nil {
		return err
	}

	sessionID := h.sessionID(c)

	inWishlist, err := h.stores.Wishlist.Toggle(c.Request().Context(), sessionID, product)
	if err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"session_id":  sessionID.String(),
		"product_id":  product.ID.String(),
		"in_wishlist": inWishlist,
	}).Debug("위시리스트 토글")

	return c.JSON(http.StatusOK, response.ToggleWishlistResponse{
		InWishlist: inWishlist,
	})
}

// ClearWishlistHandler godoc
// @Summary 위시리스트 비우기
// @Description 세션의 위시리스트를 비웁니다.
// @Tags Wishlist
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/wishlist [delete]
func (h *Handler) ClearWishlistHandler(c echo.Context) error {
	if err := h.stores.Wishlist.Clear(c.Request().Context(), h.sessionID(c)); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}

// bindProductRef 상품 참조 요청 본문을 바인딩/검증하고 카탈로그에서 상품을 찾습니다.
func (h *Handler) bindProductRef(c echo.Context) (*contract.Product, error) {
	req := new(request.ProductRefRequest)
	if err := c.Bind(req); err != nil {
		return nil, NewErrInvalidBody()
	}
	if err := ValidateRequest(req); err != nil {
		return nil, NewErrValidationFailed(FormatValidationError(err))
	}

	product, err := h.catalog.Product(contract.ProductID(req.ProductID))
	if err != nil {
		return nil, NewErrProductNotFound()
	}

	return product, nil
}
