// Package store 세션별로 유지되는 쇼핑 상태(장바구니, 위시리스트, 최근 본 상품)를
// 관리합니다.
//
// 각 스토어는 변경 연산마다 전체 상태를 저장소에 직렬화하고(스냅샷 방식),
// 조회 시 복원합니다. 파생 값(총 수량, 소계)은 절대 저장하지 않고 매 조회마다
// 현재 상태에서 다시 계산합니다.
//
// [Fail-Soft 영속성 정책]
// 저장소 쓰기 실패는 쇼핑 흐름을 중단시키지 않습니다. 변경 연산의 결과는
// 정상적으로 반환되고 경고 로그만 남습니다. 저장소 읽기 실패와 손상된 상태는
// 빈 상태로 취급됩니다.
package store

import (
	"context"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/concurrency"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
)

// Stores 세션 상태 스토어들의 집합입니다.
//
// 모든 스토어는 동일한 백엔드 저장소와 세션 단위 뮤텍스를 공유합니다.
// 서로 다른 세션의 요청은 병렬로 처리되고, 동일 세션에 대한 변경은 직렬화됩니다.
type Stores struct {
	Cart     *Cart
	Wishlist *Wishlist
	Recent   *RecentlyViewed
}

// New 백엔드 저장소 위에서 동작하는 스토어 집합을 생성합니다.
func New(backend contract.SessionStateStore) *Stores {
	if backend == nil {
		panic("store.New: backend는 필수입니다")
	}

	locks := concurrency.NewKeyedMutex[string]()
	return &Stores{
		Cart:     &Cart{backend: backend, locks: locks},
		Wishlist: &Wishlist{backend: backend, locks: locks},
		Recent:   &RecentlyViewed{backend: backend, locks: locks},
	}
}

// lockKey 세션과 상태 키 조합의 뮤텍스 키를 생성합니다.
func lockKey(sessionID contract.SessionID, key contract.StateKey) string {
	return sessionID.String() + "/" + string(key)
}

// loadState 저장된 상태를 읽어옵니다. 상태가 없거나 손상된 경우, 또는 저장소
// 읽기에 실패한 경우 false를 반환하며 호출 측은 빈 상태로 시작해야 합니다.
func loadState(ctx context.Context, backend contract.SessionStateStore, sessionID contract.SessionID, key contract.StateKey, v any, component string) bool {
	err := backend.Load(ctx, sessionID, key, v)
	if err == nil {
		return true
	}
	if err != contract.ErrStateNotFound {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
			"error":      err,
		}).Warn("세션 상태 읽기 실패 (빈 상태로 처리)")
	}
	return false
}

// persistState 상태를 저장합니다. 실패는 경고 로그만 남기고 무시합니다.
func persistState(ctx context.Context, backend contract.SessionStateStore, sessionID contract.SessionID, key contract.StateKey, v any, component string) {
	if err := backend.Save(ctx, sessionID, key, v); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
			"error":      err,
		}).Warn("세션 상태 저장 실패 (변경 결과는 이번 응답에 한해 유효)")
	}
}
