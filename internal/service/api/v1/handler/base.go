// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 비즈니스 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/middleware"
	"github.com/highcountrygear/storefront-server/internal/service/catalog"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/store"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 세션 식별자 확인
//   - 비즈니스 로직(카탈로그 조회, 장바구니/위시리스트 상태 변경, 가격 견적) 호출
//   - HTTP 응답 생성
//
// Handler는 의존성 주입을 통해 생성됩니다.
type Handler struct {
	// catalog 상품/카테고리 카탈로그
	catalog *catalog.Catalog

	// stores 세션별 장바구니/위시리스트/최근 본 상품 스토어 집합
	stores *store.Stores

	// resolver 세션별 활성 커머스 변형(A/B) 결정자
	resolver *commerce.Resolver
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(c *catalog.Catalog, stores *store.Stores, resolver *commerce.Resolver) *Handler {
	if c == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if stores == nil {
		panic(constants.PanicMsgStoresRequired)
	}
	if resolver == nil {
		panic(constants.PanicMsgResolverRequired)
	}

	return &Handler{
		catalog: c,

		stores: stores,

		resolver: resolver,
	}
}

// sessionID 요청의 세션 식별자를 반환합니다.
//
// 세션 미들웨어가 항상 유효한 세션 ID를 보장하지만, 미들웨어 없이 직접
// 호출되는 경우(테스트 등)를 대비해 빈 값이면 새로 발급합니다.
func (h *Handler) sessionID(c echo.Context) contract.SessionID {
	sessionID := middleware.SessionIDFromContext(c)
	if sessionID.IsEmpty() {
		sessionID = contract.NewSessionID()
	}
	return sessionID
}

// log는 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
