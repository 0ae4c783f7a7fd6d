package contract

import (
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

// ProductID 카탈로그 상품을 식별하는 고유 식별자입니다. (예: "hl-peak-200")
type ProductID string

func (id ProductID) IsEmpty() bool {
	return len(id) == 0
}

func (id ProductID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return apperrors.New(apperrors.InvalidInput, "ProductID는 필수입니다")
	}
	return nil
}

func (id ProductID) String() string {
	return string(id)
}

// CategoryID 카탈로그 카테고리를 식별하는 고유 식별자입니다. (예: "headlamps")
type CategoryID string

func (id CategoryID) IsEmpty() bool {
	return len(id) == 0
}

func (id CategoryID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return apperrors.New(apperrors.InvalidInput, "CategoryID는 필수입니다")
	}
	return nil
}

func (id CategoryID) String() string {
	return string(id)
}

// SessionID 방문자 세션을 식별하는 고유 식별자입니다.
//
// 클라이언트가 X-Session-ID 헤더로 전달하며, UUID 형식이어야 합니다.
// 세션별 장바구니/위시리스트/최근 본 상품 상태의 저장소 키로 사용됩니다.
type SessionID string

// NewSessionID 새로운 무작위 세션 식별자를 생성합니다.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (id SessionID) IsEmpty() bool {
	return len(id) == 0
}

// Validate 세션 식별자가 유효한 UUID 형식인지 검증합니다.
//
// 세션 ID는 저장소의 파일명 및 Redis 키로 직접 사용되므로,
// UUID 형식 강제는 경로 조작(Path Traversal) 차단의 첫 번째 방어선 역할도 합니다.
func (id SessionID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return apperrors.New(apperrors.InvalidInput, "SessionID는 필수입니다")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "SessionID는 UUID 형식이어야 합니다")
	}
	return nil
}

func (id SessionID) String() string {
	return string(id)
}
