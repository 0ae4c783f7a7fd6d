package store

import (
	"context"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/concurrency"
)

// recentComponent 최근 본 상품 스토어 로깅용 컴포넌트 이름
const recentComponent = "store.recent"

// MaxRecentlyViewed 최근 본 상품 목록의 최대 길이입니다.
// 초과분은 가장 오래 전에 본 항목(꼬리)부터 제거됩니다.
const MaxRecentlyViewed = 10

// recentState 최근 본 상품의 영속 표현입니다. 최신 항목이 맨 앞에 옵니다.
type recentState struct {
	Items []contract.Product `json:"items"`
}

// RecentlyViewed 세션별 최근 본 상품 스토어입니다.
//
// 목록은 중복 없이 최신순으로 유지됩니다. 이미 본 상품을 다시 보면 중복
// 항목이 생기는 것이 아니라 기존 위치에서 제거된 후 맨 앞으로 이동합니다.
type RecentlyViewed struct {
	backend contract.SessionStateStore
	locks   *concurrency.KeyedMutex[string]
}

func (r *RecentlyViewed) load(ctx context.Context, sessionID contract.SessionID) recentState {
	var state recentState
	loadState(ctx, r.backend, sessionID, contract.StateKeyRecent, &state, recentComponent)
	return state
}

// Add 상품 조회를 기록합니다. (move-to-front, 최대 길이 초과 시 꼬리 제거)
func (r *RecentlyViewed) Add(ctx context.Context, sessionID contract.SessionID, product *contract.Product) error {
	if product == nil {
		return apperrors.New(apperrors.InvalidInput, "기록할 상품은 필수입니다")
	}
	if err := sessionID.Validate(); err != nil {
		return err
	}

	key := lockKey(sessionID, contract.StateKeyRecent)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	state := r.load(ctx, sessionID)

	next := make([]contract.Product, 0, len(state.Items)+1)
	next = append(next, *product)
	for _, p := range state.Items {
		if p.ID == product.ID {
			continue
		}
		next = append(next, p)
	}
	if len(next) > MaxRecentlyViewed {
		next = next[:MaxRecentlyViewed]
	}
	state.Items = next

	persistState(ctx, r.backend, sessionID, contract.StateKeyRecent, state, recentComponent)
	return nil
}

// Clear 최근 본 상품 목록을 무조건 비웁니다.
func (r *RecentlyViewed) Clear(ctx context.Context, sessionID contract.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	key := lockKey(sessionID, contract.StateKeyRecent)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	persistState(ctx, r.backend, sessionID, contract.StateKeyRecent, recentState{Items: []contract.Product{}}, recentComponent)
	return nil
}

// List 최근 본 상품 목록을 최신순으로 반환합니다.
func (r *RecentlyViewed) List(ctx context.Context, sessionID contract.SessionID) ([]contract.Product, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	key := lockKey(sessionID, contract.StateKeyRecent)
	r.locks.Lock(key)
	state := r.load(ctx, sessionID)
	r.locks.Unlock(key)

	if state.Items == nil {
		return []contract.Product{}, nil
	}
	return state.Items, nil
}
