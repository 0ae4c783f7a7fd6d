package scheduler

import (
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

var (
	// ErrStateStoreNotInitialized 세션 상태 저장소가 주입되지 않은 상태로 서비스가 시작된 경우
	ErrStateStoreNotInitialized = apperrors.New(apperrors.Internal, "SessionStateStore 객체가 초기화되지 않았습니다")

	// ErrAlertSenderNotInitialized 알림 발송자가 주입되지 않은 상태로 서비스가 시작된 경우
	ErrAlertSenderNotInitialized = apperrors.New(apperrors.Internal, "AlertSender 객체가 초기화되지 않았습니다")
)
