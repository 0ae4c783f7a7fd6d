package alert

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/highcountrygear/storefront-server/internal/config"
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"golang.org/x/time/rate"
)

// component Alert 서비스의 로깅용 컴포넌트 이름
const component = "alert.service"

const (
	// queueSize 발송 대기 큐의 크기입니다. 큐가 가득 차면 새 메시지는 버려집니다.
	queueSize = 100

	// sendRatePerSecond 텔레그램 API 호출 속도 제한 (초당 메시지 수)
	sendRatePerSecond = 1

	// sendBurst 속도 제한의 버스트 허용량
	sendBurst = 5

	// errorMessagePrefix 에러 알림 메시지 앞에 붙는 식별 문자열
	errorMessagePrefix = "🚨 "
)

// botAPI 텔레그램 Bot API 클라이언트 중 메시지 발송에 필요한 부분만 추출한 인터페이스입니다.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Service 텔레그램 봇을 통해 관리자 알림을 발송하는 서비스입니다.
//
// 발송 요청은 내부 큐에 적재되고, 별도의 워커 고루틴이 속도 제한을 준수하며
// 순차적으로 전송합니다. 알림이 비활성화된 상태에서는 모든 발송 요청이 무시됩니다.
type Service struct {
	cfg config.TelegramAlertConfig

	bot     botAPI
	queue   chan string
	limiter *rate.Limiter

	running   bool
	runningMu sync.Mutex
}

var _ Sender = (*Service)(nil)

// NewService Alert 서비스 인스턴스를 생성합니다.
// 텔레그램 접속은 Start 시점에 수행됩니다.
func NewService(appConfig *config.AppConfig) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	return &Service{
		cfg: appConfig.Alert.Telegram,

		queue:   make(chan string, queueSize),
		limiter: rate.NewLimiter(rate.Limit(sendRatePerSecond), sendBurst),
	}
}

// Start Alert 서비스를 시작하고 발송 워커를 기동합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Alert 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Alert 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !s.cfg.Enabled {
		applog.WithComponent(component).Info("텔레그램 알림이 비활성화되어 있습니다. 발송 요청은 무시됩니다")

		s.running = true

		go func() {
			defer serviceStopWG.Done()
			<-serviceStopCtx.Done()
			s.stop()
		}()

		return nil
	}

	// 봇 클라이언트가 주입되지 않은 경우에만 실제 접속을 수행한다 (테스트 지원)
	if s.bot == nil {
		bot, err := tgbotapi.NewBotAPI(s.cfg.BotToken)
		if err != nil {
			defer serviceStopWG.Done()
			return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 봇 초기화에 실패했습니다")
		}
		s.bot = bot
	}

	s.running = true

	go s.senderWorker(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": s.cfg.ChatID,
	}).Info("서비스 시작 완료: Alert 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// senderWorker 발송 큐를 소비하며 속도 제한을 준수하여 메시지를 전송합니다.
func (s *Service) senderWorker(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case <-serviceStopCtx.Done():
			s.stop()
			return

		case message := <-s.queue:
			if err := s.limiter.Wait(serviceStopCtx); err != nil {
				// 종료 신호로 인한 취소: 남은 메시지는 버리고 종료
				s.stop()
				return
			}

			s.send(message)
		}
	}
}

// send 단일 메시지를 텔레그램으로 전송합니다. 실패해도 서비스는 계속 동작합니다.
func (s *Service) send(message string) {
	if _, err := s.bot.Send(tgbotapi.NewMessage(s.cfg.ChatID, message)); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": s.cfg.ChatID,
			"error":   err,
		}).Error("텔레그램 메시지 전송에 실패했습니다")
	}
}

func (s *Service) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	s.running = false

	applog.WithComponent(component).Info("Alert 서비스 종료 완료")
}

// Notify 일반 알림 메시지를 발송 큐에 등록합니다.
func (s *Service) Notify(message string) bool {
	return s.enqueue(message)
}

// NotifyError 에러 알림 메시지를 발송 큐에 등록합니다.
func (s *Service) NotifyError(message string) bool {
	return s.enqueue(errorMessagePrefix + message)
}

// Health 알림 채널의 수신 가능 여부를 반환합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.cfg.Enabled {
		// 비활성화는 정상 상태로 간주한다
		return nil
	}
	if !s.running {
		return apperrors.New(apperrors.Unavailable, "Alert 서비스가 실행 중이 아닙니다")
	}
	return nil
}

// enqueue 메시지를 발송 큐에 비차단으로 등록합니다. 큐가 가득 차면 메시지를 버립니다.
func (s *Service) enqueue(message string) bool {
	s.runningMu.Lock()
	running, enabled := s.running, s.cfg.Enabled
	s.runningMu.Unlock()

	if !enabled {
		return false
	}
	if !running {
		applog.WithComponent(component).Warn("Alert 서비스가 실행 중이 아니어서 메시지를 전송할 수 없습니다")
		return false
	}

	select {
	case s.queue <- message:
		return true
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"queue_size": queueSize,
		}).Warn("발송 큐가 가득 차서 알림 메시지를 버립니다")
		return false
	}
}
