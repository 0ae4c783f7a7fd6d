package handler

import (
	"net/http"

	"github.com/highcountrygear/storefront-server/internal/service/api/httputil"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetRecentlyViewedHandler godoc
// @Summary 최근 본 상품 목록 조회
// @Description 세션에서 최근에 본 상품을 최신순으로 최대 10개까지 반환합니다.
// @Tags RecentlyViewed
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.RecentlyViewedResponse "최근 본 상품 목록"
// @Router /api/v1/recently-viewed [get]
func (h *Handler) GetRecentlyViewedHandler(c echo.Context) error {
	items, err := h.stores.Recent.List(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.RecentlyViewedResponse{
		Items: items,
	})
}

// RecordRecentlyViewedHandler godoc
// @Summary 최근 본 상품 기록
// @Description 상품 열람을 기록합니다. 이미 기록된 상품이면 목록의 맨 앞으로 이동하며,
// @Description 목록이 10개를 초과하면 가장 오래된 항목이 제거됩니다.
// @Tags RecentlyViewed
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Param item body request.ProductRefRequest true "열람한 상품"
// @Success 200 {object} response.RecentlyViewedResponse "변경된 최근 본 상품 목록"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/recently-viewed [post]
func (h *Handler) RecordRecentlyViewedHandler(c echo.Context) error {
	product, err := h.bindProductRef(c)
	if err != nil {
		return err
	}

	sessionID := h.sessionID(c)
	ctx := c.Request().Context()

	if err := h.stores.Recent.Add(ctx, sessionID, product); err != nil {
		return httputil.FromAppError(err)
	}

	items, err := h.stores.Recent.List(ctx, sessionID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, response.RecentlyViewedResponse{
		Items: items,
	})
}

// ClearRecentlyViewedHandler godoc
// @Summary 최근 본 상품 목록 비우기
// @Description 세션의 최근 본 상품 기록을 모두 삭제합니다.
// @Tags RecentlyViewed
// @Produce json
// @Param X-Session-ID header string false "세션 식별자 (없으면 새로 발급)"
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/recently-viewed [delete]
func (h *Handler) ClearRecentlyViewedHandler(c echo.Context) error {
	if err := h.stores.Recent.Clear(c.Request().Context(), h.sessionID(c)); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}
