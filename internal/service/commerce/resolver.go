package commerce

import (
	"context"
	"net/url"
	"strings"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
)

// Resolver 세션별 활성 커머스 변형을 결정하고 유지하는 컴포넌트입니다.
//
// 결정 우선순위:
//  1. 명시적 오버라이드 (URL의 variant 파라미터)
//  2. 세션 저장소에 저장된 이전 배정값
//  3. 기본 변형(A)
//
// 오버라이드 또는 기본값으로 결정된 경우, 이후 요청에서 동일한 변형이
// 유지되도록 결정 결과를 세션 저장소에 저장합니다.
type Resolver struct {
	store contract.SessionStateStore
}

// NewResolver Resolver 인스턴스를 생성합니다.
func NewResolver(store contract.SessionStateStore) *Resolver {
	if store == nil {
		panic("commerce.NewResolver: store는 필수입니다")
	}
	return &Resolver{store: store}
}

// overrideQueryParam 변형 오버라이드를 전달하는 쿼리 파라미터 키
const overrideQueryParam = "variant"

// ParseVariantOverride 요청 URL에서 변형 오버라이드 값을 추출합니다.
//
// 표준 쿼리 스트링과 해시 라우팅 형식의 프래그먼트 내장 쿼리(#/?variant=A)를
// 모두 지원합니다. 두 위치에 모두 존재하면 표준 쿼리 스트링이 우선합니다.
// 값이 없거나 유효하지 않으면 빈 문자열을 반환하며, 에러는 발생하지 않습니다.
func ParseVariantOverride(rawURL string) VariantID {
	if strings.TrimSpace(rawURL) == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	if v := VariantID(u.Query().Get(overrideQueryParam)); v.IsValid() {
		return v
	}

	// 해시 라우팅: 프래그먼트 내부의 쿼리 스트링 확인 (예: "#/?variant=B")
	if idx := strings.Index(u.Fragment, "?"); idx >= 0 {
		if params, err := url.ParseQuery(u.Fragment[idx+1:]); err == nil {
			if v := VariantID(params.Get(overrideQueryParam)); v.IsValid() {
				return v
			}
		}
	}

	return ""
}

// Resolve 세션의 활성 변형을 결정합니다.
//
// override가 유효한 변형이면 그 값이 선택되고 세션 저장소에 기록됩니다.
// 그렇지 않으면 저장된 배정값을 사용하고, 저장된 값도 없으면 기본 변형(A)을
// 배정한 뒤 저장합니다. 유효하지 않은 입력은 에러가 아니라 '없음'으로 취급합니다.
//
// 저장소 쓰기 실패는 경고 로그만 남기고 무시합니다. 결정된 변형은 이번 요청에
// 한해 유효하며, 쇼핑 흐름을 중단시키지 않습니다.
func (r *Resolver) Resolve(ctx context.Context, sessionID contract.SessionID, override VariantID) VariantID {
	logger := applog.WithComponentAndFields("commerce.resolver", applog.Fields{"session_id": sessionID.String()})

	if override.IsValid() {
		r.persist(ctx, sessionID, override, logger)
		return override
	}

	var persisted string
	if err := r.store.Load(ctx, sessionID, contract.StateKeyVariant, &persisted); err == nil {
		if v := VariantID(persisted); v.IsValid() {
			return v
		}
		logger.WithField("persisted", persisted).Warn("저장된 변형 배정값이 유효하지 않아 기본 변형으로 재배정합니다")
	}

	r.persist(ctx, sessionID, DefaultVariant, logger)
	return DefaultVariant
}

// ResolveConfig 세션의 활성 변형을 결정하고 해당 변형의 커머스 설정을 반환합니다.
func (r *Resolver) ResolveConfig(ctx context.Context, sessionID contract.SessionID, override VariantID) Config {
	return ConfigFor(r.Resolve(ctx, sessionID, override))
}

func (r *Resolver) persist(ctx context.Context, sessionID contract.SessionID, v VariantID, logger *applog.Entry) {
	if err := r.store.Save(ctx, sessionID, contract.StateKeyVariant, string(v)); err != nil {
		logger.WithError(err).Warn("변형 배정값 저장 실패 (이번 요청에 한해 메모리 값 사용)")
	}
}
