package alert

// Sender 서버 운영 중 발생한 주요 이벤트를 관리자에게 통보하는 인터페이스입니다.
//
// 발송은 비동기로 처리되며, 반환값은 발송 요청이 큐에 정상적으로 등록되었는지
// 여부일 뿐 실제 전송 성공 여부가 아닙니다.
type Sender interface {
	// Notify 일반 알림 메시지를 발송합니다.
	Notify(message string) bool

	// NotifyError 관리자의 주의가 필요한 에러 알림 메시지를 발송합니다.
	NotifyError(message string) bool

	// Health 알림 채널이 메시지를 수신할 수 있는 상태인지 확인합니다.
	Health() error
}
