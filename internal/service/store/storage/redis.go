package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
)

// redisKeyPrefix Redis에 저장되는 모든 세션 상태 키의 공통 접두사입니다.
const redisKeyPrefix = "storefront:session"

// redisSessionStateStore Redis를 기반으로 세션 상태를 저장하는 저장소 구현체입니다.
//
// 여러 서버 인스턴스가 세션 상태를 공유해야 하는 환경에서 파일 저장소 대신
// 사용합니다. 키는 "storefront:session:{sessionID}:{key}" 형식이며, 값은 JSON
// 페이로드입니다.
//
// [만료 정책]
// 모든 쓰기에 TTL을 갱신(Sliding Expiration)하므로, 활동이 없는 세션의 상태는
// Redis가 자체적으로 만료시킵니다. 따라서 PruneStale은 별도의 작업을 수행하지
// 않습니다.
type redisSessionStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.SessionStateStore = (*redisSessionStateStore)(nil)

// NewRedisSessionStateStore Redis 기반의 세션 상태 저장소를 생성합니다.
//
// ttl은 세션 상태의 유휴 보존 기간입니다. 0 이하를 전달하면 만료 없이 저장되며,
// 이 경우 운영자가 별도의 정리 정책을 마련해야 합니다.
func NewRedisSessionStateStore(client *redis.Client, ttl time.Duration) (contract.SessionStateStore, error) {
	if client == nil {
		return nil, NewErrRedisCommandFailed(nil, "초기화 (client 누락)")
	}

	// 초기화 시점에 연결 상태를 확인하여 설정 오류를 조기에 발견합니다.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, NewErrRedisCommandFailed(err, "PING")
	}

	return &redisSessionStateStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func (s *redisSessionStateStore) redisKey(sessionID contract.SessionID, key contract.StateKey) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, sessionID, key)
}

func (s *redisSessionStateStore) Save(ctx context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return NewErrJSONMarshalFailed(err)
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.redisKey(sessionID, key), data, ttl).Err(); err != nil {
		return NewErrRedisCommandFailed(err, "SET")
	}
	return nil
}

func (s *redisSessionStateStore) Load(ctx context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	data, err := s.client.Get(ctx, s.redisKey(sessionID, key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return contract.ErrStateNotFound
		}
		return NewErrRedisCommandFailed(err, "GET")
	}

	// 손상 데이터 정책은 파일 저장소와 동일합니다: 경고 후 빈 상태로 처리합니다.
	if !gjson.ValidBytes(data) {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
		}).Warn("세션 상태 손상 감지: 유효하지 않은 JSON 페이로드 (빈 상태로 처리)")

		return contract.ErrStateNotFound
	}

	if err := json.Unmarshal(data, v); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
			"error":      err,
		}).Warn("세션 상태 손상 감지: 역직렬화 실패 (빈 상태로 처리)")

		return contract.ErrStateNotFound
	}

	return nil
}

func (s *redisSessionStateStore) Delete(ctx context.Context, sessionID contract.SessionID, key contract.StateKey) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.redisKey(sessionID, key)).Err(); err != nil {
		return NewErrRedisCommandFailed(err, "DEL")
	}
	return nil
}

// PruneStale Redis 저장소에서는 TTL 기반 만료가 정리를 대신하므로 아무 작업도 수행하지 않습니다.
func (s *redisSessionStateStore) PruneStale(context.Context, time.Duration) (int, error) {
	return 0, nil
}
