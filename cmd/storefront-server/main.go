package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/highcountrygear/storefront-server/internal/config"
	"github.com/highcountrygear/storefront-server/internal/pkg/version"
	"github.com/highcountrygear/storefront-server/internal/service"
	"github.com/highcountrygear/storefront-server/internal/service/alert"
	"github.com/highcountrygear/storefront-server/internal/service/api"
	"github.com/highcountrygear/storefront-server/internal/service/catalog"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/internal/service/scheduler"
	"github.com/highcountrygear/storefront-server/internal/service/store"
	"github.com/highcountrygear/storefront-server/internal/service/store/storage"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// @title Storefront API
// @version 1.0
// @description 하이컨트리기어 스토어프론트의 카탈로그/장바구니/가격 견적 API 서버입니다.
// @description
// @description 클라이언트(브라우저)는 최초 요청 시 발급받은 X-Session-ID 헤더를 이후
// @description 모든 요청에 전달하여 동일한 장바구니/위시리스트 상태를 이어갑니다.
// @description
// @description ## 주요 기능
// @description - 상품/카테고리 카탈로그 조회 및 검색
// @description - 세션별 장바구니/위시리스트/최근 본 상품 상태 관리
// @description - 번들 할인, 무료배송, 사은품 자격을 포함한 가격 견적
// @description - 커머스 변형(A/B) 배정 및 유지

// @host localhost:8080
// @BasePath /

const (
	banner = `
  _   _  _         _      ____                    _
 | | | |(_)  __ _ | |__  / ___| ___   _   _  _ __ | |_  _ __  _   _
 | |_| || | / _' || '_ \| |    / _ \ | | | || '_ \| __|| '__|| | | |
 |  _  || || (_| || | | | |___| (_) || |_| || | | | |_ | |   | |_| |
 |_| |_||_| \__, ||_| |_|\____|\___/  \__,_||_| |_|\__||_|    \__, |
            |___/                  Gear Storefront Server     |___/  %s
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 미준수 항목 경고
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 설정 파일에 커머스 변형 오버라이드가 있으면 내장 기본값을 교체한다.
	if err := commerce.ApplyOverrides(appConfig.Commerce.Variants); err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("커머스 변형 설정 적용 실패")

		log.Fatal("커머스 변형 설정 적용 실패로 프로그램을 종료합니다")
	}

	// 세션 상태 저장소 백엔드를 생성한다.
	stateStore, err := newStateStore(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"backend": appConfig.Storage.Backend,
			"error":   err,
		}).Error("세션 상태 저장소 초기화 실패")

		log.Fatal("세션 상태 저장소 초기화 실패로 프로그램을 종료합니다")
	}

	// 도메인 컴포넌트를 생성하고 초기화한다.
	productCatalog := catalog.New()
	stores := store.New(stateStore)
	resolver := commerce.NewResolver(stateStore)

	// 서비스를 생성하고 초기화한다.
	alertService := alert.NewService(appConfig)
	schedulerService := scheduler.NewService(appConfig, stateStore, alertService)
	apiService := api.NewService(appConfig, productCatalog, stores, resolver, stateStore, alertService, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{alertService, schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}

// newStateStore 설정된 백엔드(file 또는 redis)에 맞는 세션 상태 저장소를 생성합니다.
func newStateStore(appConfig *config.AppConfig) (contract.SessionStateStore, error) {
	switch appConfig.Storage.Backend {
	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     appConfig.Storage.Redis.Addr,
			Password: appConfig.Storage.Redis.Password,
			DB:       appConfig.Storage.Redis.DB,
		})
		return storage.NewRedisSessionStateStore(client, appConfig.Storage.Redis.SessionTTL)
	default:
		return storage.NewFileSessionStateStore(appConfig.Storage.File.DataDir)
	}
}
