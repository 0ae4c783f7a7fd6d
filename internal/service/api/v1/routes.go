// Package v1 Storefront API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 카탈로그 조회와 세션별 장바구니/위시리스트/최근 본 상품 상태 관리를 위한
// RESTful API를 제공합니다.
//
// 주요 엔드포인트:
//   - GET    /api/v1/categories            - 카테고리 목록 조회
//   - GET    /api/v1/products              - 상품 목록 조회 (카테고리 필터/검색)
//   - GET    /api/v1/products/:id          - 상품 상세 조회
//   - GET    /api/v1/products/:id/stock    - 상품 재고 상태 조회
//   - GET    /api/v1/cart                  - 장바구니 조회
//   - POST   /api/v1/cart/items            - 장바구니 상품 추가
//   - GET    /api/v1/cart/quote            - 장바구니 가격 견적 조회
//   - GET    /api/v1/wishlist              - 위시리스트 조회
//   - POST   /api/v1/wishlist/toggle       - 위시리스트 상품 토글
//   - GET    /api/v1/recently-viewed       - 최근 본 상품 목록 조회
//   - GET    /api/v1/variant               - 활성 커머스 변형 조회
//
// 모든 엔드포인트는 세션 미들웨어를 거치며, X-Session-ID 헤더가 없거나
// 유효하지 않은 요청에는 새 세션 ID가 발급됩니다.
package v1

import (
	"github.com/highcountrygear/storefront-server/internal/service/api/middleware"
	"github.com/highcountrygear/storefront-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// 이 함수는 /api/v1 그룹을 생성하고, 세션 미들웨어를 적용한 후
// 카탈로그/장바구니/위시리스트/최근 본 상품/변형 엔드포인트를 등록합니다.
//
// 미들웨어 적용:
//   - 모든 엔드포인트: SessionID (세션 식별자 발급/검증)
//   - 본문이 있는 엔드포인트: ValidateContentType (JSON 검증)
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	// 1. API v1 그룹 생성 (/api/v1 prefix) + 세션 미들웨어 적용
	v1Group := e.Group("/api/v1", middleware.SessionID())

	jsonBody := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 2. 카탈로그 엔드포인트 (읽기 전용)
	v1Group.GET("/categories", h.ListCategoriesHandler)
	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:id", h.GetProductHandler)
	v1Group.GET("/products/:id/stock", h.GetStockStatusHandler)

	// 3. 장바구니 엔드포인트
	v1Group.GET("/cart", h.GetCartHandler)
	v1Group.DELETE("/cart", h.ClearCartHandler)
	v1Group.GET("/cart/quote", h.GetCartQuoteHandler)
	v1Group.POST("/cart/items", h.AddCartItemHandler, jsonBody)
	v1Group.DELETE("/cart/items/:id", h.RemoveCartItemHandler)
	v1Group.POST("/cart/items/:id/increment", h.IncrementCartItemHandler)
	v1Group.POST("/cart/items/:id/decrement", h.DecrementCartItemHandler)

	// 4. 위시리스트 엔드포인트
	v1Group.GET("/wishlist", h.GetWishlistHandler)
	v1Group.DELETE("/wishlist", h.ClearWishlistHandler)
	v1Group.POST("/wishlist/items", h.AddWishlistItemHandler, jsonBody)
	v1Group.DELETE("/wishlist/items/:id", h.RemoveWishlistItemHandler)
	v1Group.POST("/wishlist/toggle", h.ToggleWishlistItemHandler, jsonBody)

	// 5. 최근 본 상품 엔드포인트
	v1Group.GET("/recently-viewed", h.GetRecentlyViewedHandler)
	v1Group.POST("/recently-viewed", h.RecordRecentlyViewedHandler, jsonBody)
	v1Group.DELETE("/recently-viewed", h.ClearRecentlyViewedHandler)

	// 6. 커머스 변형 엔드포인트
	v1Group.GET("/variant", h.GetVariantHandler)
	v1Group.PUT("/variant", h.SetVariantHandler, jsonBody)
}
