package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

// MemStateStore 테스트용 인메모리 세션 상태 저장소입니다.
//
// contract.SessionStateStore 인터페이스를 만족하며, 실패 주입(FailSaves,
// FailLoads)을 통해 저장소 장애 상황에서의 fail-soft 동작을 검증할 수 있습니다.
type MemStateStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailSaves true면 모든 Save 호출이 에러를 반환합니다.
	FailSaves bool
	// FailLoads true면 모든 Load 호출이 에러를 반환합니다.
	FailLoads bool

	// SaveCount Save 호출 횟수 (실패 포함)
	SaveCount int
}

// NewMemStateStore MemStateStore 인스턴스를 생성합니다.
func NewMemStateStore() *MemStateStore {
	return &MemStateStore{data: make(map[string][]byte)}
}

func (s *MemStateStore) entryKey(sessionID contract.SessionID, key contract.StateKey) string {
	return sessionID.String() + "/" + string(key)
}

func (s *MemStateStore) Save(_ context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SaveCount++
	if s.FailSaves {
		return assertErr("저장소 쓰기 실패 주입")
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[s.entryKey(sessionID, key)] = b
	return nil
}

func (s *MemStateStore) Load(_ context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailLoads {
		return assertErr("저장소 읽기 실패 주입")
	}

	b, ok := s.data[s.entryKey(sessionID, key)]
	if !ok {
		return contract.ErrStateNotFound
	}
	return json.Unmarshal(b, v)
}

func (s *MemStateStore) Delete(_ context.Context, sessionID contract.SessionID, key contract.StateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, s.entryKey(sessionID, key))
	return nil
}

func (s *MemStateStore) PruneStale(context.Context, time.Duration) (int, error) {
	return 0, nil
}

// Corrupt 저장된 항목을 해석 불가능한 페이로드로 덮어씁니다. 손상 상태 테스트용입니다.
func (s *MemStateStore) Corrupt(sessionID contract.SessionID, key contract.StateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[s.entryKey(sessionID, key)] = []byte("{not-json")
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
