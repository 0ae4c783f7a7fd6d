package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/highcountrygear/storefront-server/internal/config"
	"github.com/highcountrygear/storefront-server/internal/service/alert"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/cronx"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// pruneTimeout 세션 정리 작업 1회 실행의 최대 허용 시간
const pruneTimeout = 5 * time.Minute

// Scheduler 오래된 세션 상태를 주기적으로 정리하는 백그라운드 서비스입니다.
//
// 설정된 Cron 스케줄에 맞춰 세션 상태 저장소의 PruneStale을 호출하여,
// 보존 기간(Retention)을 초과한 장바구니/위시리스트 등의 상태 파일을 제거합니다.
type Scheduler struct {
	pruneConfig config.PruneJobConfig
	retention   time.Duration

	cron *cron.Cron

	// stateStore 정리 대상 세션 상태 저장소입니다.
	stateStore contract.SessionStateStore

	// alertSender 정리 작업 실패 시 관리자 알림 전송을 담당합니다.
	alertSender alert.Sender

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, stateStore contract.SessionStateStore, alertSender alert.Sender) *Scheduler {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if stateStore == nil {
		panic("SessionStateStore는 필수입니다")
	}
	if alertSender == nil {
		panic("AlertSender는 필수입니다")
	}

	return &Scheduler{
		pruneConfig: appConfig.Scheduler.Prune,
		retention:   appConfig.Storage.Retention,

		stateStore: stateStore,

		alertSender: alertSender,
	}
}

// Start 스케줄러를 시작하고 세션 정리 작업을 Cron 엔진에 등록합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.stateStore == nil {
		serviceStopWG.Done()
		return ErrStateStoreNotInitialized
	}
	if s.alertSender == nil {
		serviceStopWG.Done()
		return ErrAlertSenderNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 정리 작업 등록
	if err := s.registerPruneJob(); err != nil {
		serviceStopWG.Done()
		s.cron = nil
		return err
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"retention":            s.retention.String(),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 안전하게 중지합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 작업 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// registerPruneJob 세션 정리 작업을 Cron 스케줄러에 등록합니다.
// Runnable 플래그가 꺼져 있으면 아무 작업도 등록하지 않습니다.
func (s *Scheduler) registerPruneJob() error {
	if !s.pruneConfig.Runnable {
		applog.WithComponent(component).Info("세션 정리 작업이 비활성화되어 있습니다")
		return nil
	}

	if _, err := s.cron.AddFunc(s.pruneConfig.TimeSpec, s.runPrune); err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.pruneConfig.TimeSpec,
	}).Debug("세션 정리 작업이 스케줄러에 등록되었습니다")

	return nil
}

// runPrune 보존 기간을 초과한 세션 상태를 정리합니다.
//
// 작업 실행의 생명주기를 서비스 종료 시그널과 분리하기 위해 context.Background()를
// 사용하며, 저장소 장애 시 무한 대기를 막기 위해 타임아웃을 적용합니다.
func (s *Scheduler) runPrune() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	start := time.Now()

	pruned, err := s.stateStore.PruneStale(ctx, s.retention)
	if err != nil {
		message := fmt.Sprintf("세션 정리 작업 실패: 오래된 세션 상태 정리 중 오류가 발생했습니다: %v", err)

		applog.WithComponentAndFields(component, applog.Fields{
			"retention": s.retention.String(),
			"error":     err,
		}).Error(message)

		s.alertSender.NotifyError(message)
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"pruned":    pruned,
		"retention": s.retention.String(),
		"elapsed":   time.Since(start).String(),
	}).Info("세션 정리 작업 완료")
}
