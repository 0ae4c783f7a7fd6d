package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/testutil"
)

var (
	headlamp = contract.Product{ID: "hl-peak-200", CategoryID: "headlamps", Name: "Peak 200 Headlamp", Price: 34.99, Stock: 7}
	bottle   = contract.Product{ID: "wb-titan-1l", CategoryID: "water-bottles", Name: "Titan 1L Bottle", Price: 24.00, Stock: 23}
	knife    = contract.Product{ID: "kn-edge-pro", CategoryID: "knives", Name: "Edge Pro Folding Knife", Price: 69.00, Stock: 3}
)

func newTestStores() (*Stores, *testutil.MemStateStore) {
	backend := testutil.NewMemStateStore()
	return New(backend), backend
}

func TestCartAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("new line created", func(t *testing.T) {
		s, _ := newTestStores()
		sessionID := contract.NewSessionID()

		require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 2))

		lines, err := s.Cart.Lines(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, headlamp.ID, lines[0].ProductID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.InDelta(t, 34.99, lines[0].Price, 1e-9)
	})

	t.Run("existing line accumulates quantity", func(t *testing.T) {
		s, _ := newTestStores()
		sessionID := contract.NewSessionID()

		require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 2))
		require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 3))

		total, err := s.Cart.TotalItems(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("invalid quantity rejected", func(t *testing.T) {
		s, _ := newTestStores()
		sessionID := contract.NewSessionID()

		assert.Error(t, s.Cart.Add(ctx, sessionID, &headlamp, 0))
		assert.Error(t, s.Cart.Add(ctx, sessionID, &headlamp, -1))
		assert.Error(t, s.Cart.Add(ctx, sessionID, nil, 1))
	})

	t.Run("invalid session rejected", func(t *testing.T) {
		s, _ := newTestStores()
		assert.Error(t, s.Cart.Add(ctx, contract.SessionID("not-a-uuid"), &headlamp, 1))
	})
}

func TestCartQuantityRoundTrip(t *testing.T) {
	// add(P, 2) → increment → decrement ×2 → decrement 1회 더:
	// 수량은 2→3→2→1→0이 되고 0이 되는 시점에 줄이 제거된다
	ctx := context.Background()
	s, _ := newTestStores()
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 2))
	require.NoError(t, s.Cart.Increment(ctx, sessionID, headlamp.ID))
	require.NoError(t, s.Cart.Decrement(ctx, sessionID, headlamp.ID))
	require.NoError(t, s.Cart.Decrement(ctx, sessionID, headlamp.ID))

	total, err := s.Cart.TotalItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	require.NoError(t, s.Cart.Decrement(ctx, sessionID, headlamp.ID))

	lines, err := s.Cart.Lines(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// 0 이하로 내려간 뒤의 감소는 no-op이다
	require.NoError(t, s.Cart.Decrement(ctx, sessionID, headlamp.ID))
	total, err = s.Cart.TotalItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores()
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 3))
	require.NoError(t, s.Cart.Remove(ctx, sessionID, headlamp.ID))

	lines, err := s.Cart.Lines(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// 없는 상품의 제거는 no-op이다
	assert.NoError(t, s.Cart.Remove(ctx, sessionID, "no-such-product"))
}

func TestCartIncrementAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStores()
	sessionID := contract.NewSessionID()

	before := backend.SaveCount
	require.NoError(t, s.Cart.Increment(ctx, sessionID, "no-such-product"))
	// 상태가 바뀌지 않았으면 저장도 일어나지 않는다
	assert.Equal(t, before, backend.SaveCount)
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores()
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 1))
	require.NoError(t, s.Cart.Add(ctx, sessionID, &bottle, 2))
	require.NoError(t, s.Cart.Clear(ctx, sessionID))

	total, err := s.Cart.TotalItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCartDerivedAggregates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores()
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 2)) // 69.98
	require.NoError(t, s.Cart.Add(ctx, sessionID, &bottle, 3))   // 72.00

	total, err := s.Cart.TotalItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	subtotal, err := s.Cart.Subtotal(ctx, sessionID)
	require.NoError(t, err)
	assert.InDelta(t, 141.98, subtotal, 1e-9)
}

func TestCartPriceSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores()
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 1))

	// 담은 이후의 카탈로그 가격 변경은 담긴 줄에 영향을 주지 않는다
	changed := headlamp
	changed.Price = 99.99
	_ = changed

	lines, err := s.Cart.Lines(ctx, sessionID)
	require.NoError(t, err)
	assert.InDelta(t, 34.99, lines[0].Price, 1e-9)
}

func TestCartFailSoftPersistence(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewMemStateStore()
	backend.FailSaves = true
	s := New(backend)
	sessionID := contract.NewSessionID()

	// 저장 실패는 변경 연산을 실패시키지 않는다
	assert.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 1))
	assert.NoError(t, s.Cart.Clear(ctx, sessionID))
}

func TestCartCorruptStateFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewMemStateStore()
	s := New(backend)
	sessionID := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionID, &headlamp, 2))
	backend.Corrupt(sessionID, contract.StateKeyCart)

	lines, err := s.Cart.Lines(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSessionsIsolated(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores()
	sessionA := contract.NewSessionID()
	sessionB := contract.NewSessionID()

	require.NoError(t, s.Cart.Add(ctx, sessionA, &knife, 1))

	total, err := s.Cart.TotalItems(ctx, sessionB)
	require.NoError(t, err)
	assert.Zero(t, total)
}
