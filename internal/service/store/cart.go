package store

import (
	"context"
	"sort"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/concurrency"
)

// cartComponent 장바구니 스토어 로깅용 컴포넌트 이름
const cartComponent = "store.cart"

// cartState 장바구니의 영속 표현입니다. 파생 값은 포함하지 않습니다.
type cartState struct {
	Items map[contract.ProductID]cartItem `json:"items"`
}

// cartItem 장바구니 한 줄의 영속 표현입니다.
// Product는 담는 시점의 카탈로그 스냅샷으로, 이후 카탈로그 변경의 영향을 받지 않습니다.
type cartItem struct {
	Product contract.Product `json:"product"`
	Qty     int              `json:"qty"`
}

func newCartState() cartState {
	return cartState{Items: make(map[contract.ProductID]cartItem)}
}

// Cart 세션별 장바구니 스토어입니다.
type Cart struct {
	backend contract.SessionStateStore
	locks   *concurrency.KeyedMutex[string]
}

func (c *Cart) load(ctx context.Context, sessionID contract.SessionID) cartState {
	state := newCartState()
	if loadState(ctx, c.backend, sessionID, contract.StateKeyCart, &state, cartComponent) && state.Items == nil {
		state.Items = make(map[contract.ProductID]cartItem)
	}
	return state
}

// mutate 세션 락을 획득한 상태로 장바구니를 읽고, fn을 적용한 뒤 저장합니다.
// fn이 false를 반환하면 상태가 변경되지 않은 것이므로 저장을 생략합니다.
func (c *Cart) mutate(ctx context.Context, sessionID contract.SessionID, fn func(*cartState) bool) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	key := lockKey(sessionID, contract.StateKeyCart)
	c.locks.Lock(key)
	defer c.locks.Unlock(key)

	state := c.load(ctx, sessionID)
	if fn(&state) {
		persistState(ctx, c.backend, sessionID, contract.StateKeyCart, state, cartComponent)
	}
	return nil
}

// Add 상품을 장바구니에 담습니다. 이미 담긴 상품이면 수량이 누적됩니다.
// qty는 1 이상이어야 하며, 검증은 API 경계에서도 수행되지만 여기서도 방어합니다.
func (c *Cart) Add(ctx context.Context, sessionID contract.SessionID, product *contract.Product, qty int) error {
	if product == nil {
		return apperrors.New(apperrors.InvalidInput, "장바구니에 담을 상품은 필수입니다")
	}
	if qty < 1 {
		return apperrors.New(apperrors.InvalidInput, "장바구니에 담는 수량은 1 이상이어야 합니다")
	}

	return c.mutate(ctx, sessionID, func(state *cartState) bool {
		item := state.Items[product.ID]
		item.Product = *product
		item.Qty += qty
		state.Items[product.ID] = item
		return true
	})
}

// Remove 장바구니에서 해당 상품 줄을 통째로 제거합니다. 없는 상품이면 아무 일도 하지 않습니다.
func (c *Cart) Remove(ctx context.Context, sessionID contract.SessionID, productID contract.ProductID) error {
	return c.mutate(ctx, sessionID, func(state *cartState) bool {
		if _, ok := state.Items[productID]; !ok {
			return false
		}
		delete(state.Items, productID)
		return true
	})
}

// Increment 담긴 상품의 수량을 1 증가시킵니다. 없는 상품이면 아무 일도 하지 않습니다.
func (c *Cart) Increment(ctx context.Context, sessionID contract.SessionID, productID contract.ProductID) error {
	return c.mutate(ctx, sessionID, func(state *cartState) bool {
		item, ok := state.Items[productID]
		if !ok {
			return false
		}
		item.Qty++
		state.Items[productID] = item
		return true
	})
}

// Decrement 담긴 상품의 수량을 1 감소시킵니다. 없는 상품이면 아무 일도 하지
// 않으며, 수량이 0이 되는 시점에 줄이 완전히 제거됩니다. 수량 0인 줄은
// 저장되지 않습니다.
func (c *Cart) Decrement(ctx context.Context, sessionID contract.SessionID, productID contract.ProductID) error {
	return c.mutate(ctx, sessionID, func(state *cartState) bool {
		item, ok := state.Items[productID]
		if !ok {
			return false
		}
		item.Qty--
		if item.Qty <= 0 {
			delete(state.Items, productID)
		} else {
			state.Items[productID] = item
		}
		return true
	})
}

// Clear 장바구니를 무조건 비웁니다.
func (c *Cart) Clear(ctx context.Context, sessionID contract.SessionID) error {
	return c.mutate(ctx, sessionID, func(state *cartState) bool {
		state.Items = make(map[contract.ProductID]cartItem)
		return true
	})
}

// Lines 장바구니를 가격 계산에 사용하는 스냅샷 형태로 반환합니다.
// 반환 순서는 상품 ID 기준으로 정렬되어 결정적입니다.
func (c *Cart) Lines(ctx context.Context, sessionID contract.SessionID) ([]contract.CartLine, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	key := lockKey(sessionID, contract.StateKeyCart)
	c.locks.Lock(key)
	state := c.load(ctx, sessionID)
	c.locks.Unlock(key)

	lines := make([]contract.CartLine, 0, len(state.Items))
	for id, item := range state.Items {
		lines = append(lines, contract.CartLine{
			ProductID: id,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			ImageURL:  item.Product.ImageURL,
			Quantity:  item.Qty,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

// TotalItems 장바구니의 총 수량을 반환합니다. 매 호출마다 현재 상태에서 다시 계산합니다.
func (c *Cart) TotalItems(ctx context.Context, sessionID contract.SessionID) (int, error) {
	lines, err := c.Lines(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total, nil
}

// Subtotal 장바구니의 할인 전 소계를 반환합니다. 반올림하지 않은 원시 값입니다.
func (c *Cart) Subtotal(ctx context.Context, sessionID contract.SessionID) (float64, error) {
	lines, err := c.Lines(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	return subtotal, nil
}
