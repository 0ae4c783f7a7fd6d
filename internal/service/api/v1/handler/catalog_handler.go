package handler

import (
	"net/http"
	"strings"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/httputil"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/model/response"
	"github.com/highcountrygear/storefront-server/internal/service/catalog"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/inventory"
	"github.com/labstack/echo/v4"
)

// ListCategoriesHandler godoc
// @Summary 카테고리 목록 조회
// @Description 스토어의 전체 상품 카테고리 목록을 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.CategoryListResponse "카테고리 목록"
// @Router /api/v1/categories [get]
func (h *Handler) ListCategoriesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.CategoryListResponse{
		Categories: h.catalog.Categories(),
	})
}

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 전체 상품 목록을 반환합니다. category 파라미터로 카테고리를 필터링하거나
// @Description q 파라미터로 상품명/설명을 검색할 수 있습니다. 두 파라미터가 모두 주어지면
// @Description 검색 결과를 카테고리로 다시 필터링합니다.
// @Tags Catalog
// @Produce json
// @Param category query string false "카테고리 식별자" example(headlamps)
// @Param q query string false "검색어" example(peak)
// @Success 200 {object} response.ProductListResponse "상품 목록"
// @Failure 404 {object} response.ErrorResponse "카테고리 없음"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam(constants.QueryParamSearch))
	categoryParam := strings.TrimSpace(c.QueryParam(constants.QueryParamCategory))

	var products []contract.Product
	if query != "" {
		products = h.catalog.Search(query)
	} else {
		products = h.catalog.Products()
	}

	if categoryParam != "" {
		categoryID := contract.CategoryID(catalog.NormalizeSlug(categoryParam))
		if _, err := h.catalog.Category(categoryID); err != nil {
			return NewErrCategoryNotFound()
		}

		filtered := make([]contract.Product, 0, len(products))
		for _, p := range products {
			if p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(http.StatusOK, response.ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Description 상품 식별자로 단일 상품의 상세 정보를 반환합니다.
// @Tags Catalog
// @Produce json
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} contract.Product "상품 상세 정보"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	product, err := h.findProduct(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// GetStockStatusHandler godoc
// @Summary 상품 재고 상태 조회
// @Description 상품의 현재 재고 수량과 품절 임박 여부를 반환합니다.
// @Description 품절 임박 기준 수량은 상품이 속한 카테고리에 따라 다릅니다.
// @Tags Catalog
// @Produce json
// @Param id path string true "상품 식별자" example(hl-peak-200)
// @Success 200 {object} response.StockStatusResponse "재고 상태"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id}/stock [get]
func (h *Handler) GetStockStatusHandler(c echo.Context) error {
	product, err := h.findProduct(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.StockStatusResponse{
		ProductID: product.ID.String(),
		Stock:     product.Stock,
		InStock:   product.InStock(),
		LowStock:  inventory.IsLowStock(product.Stock, product.CategoryID),
		Threshold: inventory.LowStockThreshold(product.CategoryID),
	})
}

// findProduct 경로 파라미터의 상품 식별자로 카탈로그에서 상품을 찾습니다.
func (h *Handler) findProduct(c echo.Context) (*contract.Product, error) {
	productID := contract.ProductID(c.Param(constants.PathParamProductID))
	if err := productID.Validate(); err != nil {
		return nil, httputil.NewBadRequestError(constants.ErrMsgBadRequest)
	}

	product, err := h.catalog.Product(productID)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return nil, NewErrProductNotFound()
		}
		return nil, httputil.FromAppError(err)
	}

	return product, nil
}
