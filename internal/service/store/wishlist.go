package store

import (
	"context"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/concurrency"
)

// wishlistComponent 위시리스트 스토어 로깅용 컴포넌트 이름
const wishlistComponent = "store.wishlist"

// wishlistState 위시리스트의 영속 표현입니다. 상품 ID를 키로 하는 집합입니다.
type wishlistState struct {
	Items map[contract.ProductID]contract.Product `json:"items"`
}

func newWishlistState() wishlistState {
	return wishlistState{Items: make(map[contract.ProductID]contract.Product)}
}

// Wishlist 세션별 위시리스트 스토어입니다. 장바구니와 독립적인 생명주기를 가집니다.
type Wishlist struct {
	backend contract.SessionStateStore
	locks   *concurrency.KeyedMutex[string]
}

func (w *Wishlist) load(ctx context.Context, sessionID contract.SessionID) wishlistState {
	state := newWishlistState()
	if loadState(ctx, w.backend, sessionID, contract.StateKeyWishlist, &state, wishlistComponent) && state.Items == nil {
		state.Items = make(map[contract.ProductID]contract.Product)
	}
	return state
}

func (w *Wishlist) mutate(ctx context.Context, sessionID contract.SessionID, fn func(*wishlistState) bool) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	key := lockKey(sessionID, contract.StateKeyWishlist)
	w.locks.Lock(key)
	defer w.locks.Unlock(key)

	state := w.load(ctx, sessionID)
	if fn(&state) {
		persistState(ctx, w.backend, sessionID, contract.StateKeyWishlist, state, wishlistComponent)
	}
	return nil
}

// Add 상품을 위시리스트에 추가합니다. 이미 있는 상품이면 스냅샷만 갱신됩니다.
func (w *Wishlist) Add(ctx context.Context, sessionID contract.SessionID, product *contract.Product) error {
	if product == nil {
		return apperrors.New(apperrors.InvalidInput, "위시리스트에 담을 상품은 필수입니다")
	}

	return w.mutate(ctx, sessionID, func(state *wishlistState) bool {
		state.Items[product.ID] = *product
		return true
	})
}

// Remove 상품을 위시리스트에서 제거합니다. 없는 상품이면 아무 일도 하지 않습니다.
func (w *Wishlist) Remove(ctx context.Context, sessionID contract.SessionID, productID contract.ProductID) error {
	return w.mutate(ctx, sessionID, func(state *wishlistState) bool {
		if _, ok := state.Items[productID]; !ok {
			return false
		}
		delete(state.Items, productID)
		return true
	})
}

// Toggle 상품의 위시리스트 소속 여부를 반전시키고, 반전 후의 소속 여부를 반환합니다.
// 두 번 연속 호출하면 상태가 원래대로 돌아옵니다.
func (w *Wishlist) Toggle(ctx context.Context, sessionID contract.SessionID, product *contract.Product) (bool, error) {
	if product == nil {
		return false, apperrors.New(apperrors.InvalidInput, "위시리스트에 담을 상품은 필수입니다")
	}

	var added bool
	err := w.mutate(ctx, sessionID, func(state *wishlistState) bool {
		if _, ok := state.Items[product.ID]; ok {
			delete(state.Items, product.ID)
			added = false
		} else {
			state.Items[product.ID] = *product
			added = true
		}
		return true
	})
	return added, err
}

// Clear 위시리스트를 무조건 비웁니다.
func (w *Wishlist) Clear(ctx context.Context, sessionID contract.SessionID) error {
	return w.mutate(ctx, sessionID, func(state *wishlistState) bool {
		state.Items = make(map[contract.ProductID]contract.Product)
		return true
	})
}

// Has 상품이 위시리스트에 있는지 여부를 반환합니다.
func (w *Wishlist) Has(ctx context.Context, sessionID contract.SessionID, productID contract.ProductID) (bool, error) {
	if err := sessionID.Validate(); err != nil {
		return false, err
	}

	key := lockKey(sessionID, contract.StateKeyWishlist)
	w.locks.Lock(key)
	state := w.load(ctx, sessionID)
	w.locks.Unlock(key)

	_, ok := state.Items[productID]
	return ok, nil
}

// Count 위시리스트에 담긴 상품 수를 반환합니다.
func (w *Wishlist) Count(ctx context.Context, sessionID contract.SessionID) (int, error) {
	list, err := w.List(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// List 위시리스트에 담긴 상품 목록을 반환합니다. 순서에 대한 계약은 없습니다.
func (w *Wishlist) List(ctx context.Context, sessionID contract.SessionID) ([]contract.Product, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	key := lockKey(sessionID, contract.StateKeyWishlist)
	w.locks.Lock(key)
	state := w.load(ctx, sessionID)
	w.locks.Unlock(key)

	list := make([]contract.Product, 0, len(state.Items))
	for _, p := range state.Items {
		list = append(list, p)
	}
	return list, nil
}
