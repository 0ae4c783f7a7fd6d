// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 세션이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/highcountrygear/storefront-server/internal/pkg/version"
	"github.com/highcountrygear/storefront-server/internal/service/alert"
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/api/model/system"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	stateStore  contract.SessionStateStore
	alertSender alert.Sender

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(stateStore contract.SessionStateStore, alertSender alert.Sender, buildInfo version.Info) *Handler {
	if stateStore == nil {
		panic(constants.PanicMsgStateStoreRequired)
	}
	if alertSender == nil {
		panic(constants.PanicMsgAlertSenderRequired)
	}

	return &Handler{
		stateStore:  stateStore,
		alertSender: alertSender,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (session_store, alert_service)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청 수신")

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	// 외부 의존성 상태 수집
	deps := make(map[string]system.DependencyStatus)
	deps[constants.DependencySessionStore] = h.checkSessionStore(c)
	deps[constants.DependencyAlertService] = h.checkAlertService()

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

// checkSessionStore 세션 상태 저장소의 응답 가능 여부를 점검합니다.
//
// 존재하지 않는 세션을 조회하는 방식으로 저장소 왕복을 검증합니다.
// ErrStateNotFound는 저장소가 정상적으로 응답했다는 의미이므로 healthy로 취급합니다.
func (h *Handler) checkSessionStore(c echo.Context) system.DependencyStatus {
	started := time.Now()

	var probe struct{}
	err := h.stateStore.Load(c.Request().Context(), contract.NewSessionID(), contract.StateKeyCart, &probe)
	latency := time.Since(started).Milliseconds()

	if err != nil && !errors.Is(err, contract.ErrStateNotFound) {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   "정상 작동 중",
	}
}

// checkAlertService 관리자 알림 서비스의 상태를 점검합니다.
func (h *Handler) checkAlertService() system.DependencyStatus {
	if err := h.alertSender.Health(); err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: "정상 작동 중",
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("버전 정보 요청 수신")

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: runtime.Version(),
	})
}
