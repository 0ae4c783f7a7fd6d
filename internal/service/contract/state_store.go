package contract

import (
	"context"
	"time"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

// StateKey 세션 상태 저장소에서 상태 종류를 구분하는 네임스페이스 키입니다.
type StateKey string

const (
	// StateKeyCart 장바구니 상태 키
	StateKeyCart StateKey = "hcg-cart"
	// StateKeyWishlist 위시리스트 상태 키
	StateKeyWishlist StateKey = "hcg-wishlist"
	// StateKeyRecent 최근 본 상품 상태 키
	StateKeyRecent StateKey = "hcg-recent"
	// StateKeyVariant 커머스 설정 A/B 배정 상태 키
	StateKeyVariant StateKey = "hcg-variant"
)

// ErrStateNotFound 저장된 세션 상태를 찾을 수 없을 때 반환하는 에러입니다.
var ErrStateNotFound = apperrors.New(apperrors.NotFound, "조회 실패: 저장된 세션 상태 없음")

// SessionStateStore 세션별 상태(장바구니, 위시리스트 등)를 저장하고 불러오는 저장소 인터페이스입니다.
//
// 모든 쓰기는 동일한 (sessionID, key) 조합에 대해 기존 데이터를 통째로 덮어쓰는
// 스냅샷 방식이며, 부분 갱신은 지원하지 않습니다.
type SessionStateStore interface {
	// Save 세션 상태를 저장합니다.
	//
	// 동일한 sessionID와 key 조합으로 Save를 호출하면 기존 데이터를 덮어씁니다.
	Save(ctx context.Context, sessionID SessionID, key StateKey, v any) error

	// Load 저장된 세션 상태를 불러옵니다.
	//
	// 저장된 데이터가 없는 경우 ErrStateNotFound 에러를 반환합니다.
	// 호출자는 이 에러를 확인하여 최초 방문 여부를 판단해야 합니다.
	// 저장된 데이터가 손상되어 해석할 수 없는 경우에도 ErrStateNotFound를 반환하며,
	// 이 경우 호출자는 빈 상태로 처리해야 합니다.
	Load(ctx context.Context, sessionID SessionID, key StateKey, v any) error

	// Delete 저장된 세션 상태를 삭제합니다. 데이터가 없어도 에러를 반환하지 않습니다.
	Delete(ctx context.Context, sessionID SessionID, key StateKey) error

	// PruneStale 마지막 수정 이후 maxAge가 경과한 세션 상태를 일괄 삭제하고,
	// 삭제된 항목의 개수를 반환합니다.
	PruneStale(ctx context.Context, maxAge time.Duration) (int, error)
}
