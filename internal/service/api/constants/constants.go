package constants

// 로깅 시 로그의 발생 위치(컴포넌트)를 식별하기 위한 상수입니다.
const (
	// ComponentHandler 핸들러 로그의 컴포넌트 이름입니다.
	ComponentHandler = "api.handler"

	// ComponentService 서비스 로그의 컴포넌트 이름입니다.
	ComponentService = "api.service"

	// ComponentMiddleware 미들웨어 로그의 컴포넌트 이름입니다.
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler 에러 핸들러 로그의 컴포넌트 이름입니다.
	ComponentErrorHandler = "api.error_handler"
)

// API 요청 및 응답에 사용되는 HTTP 헤더 키 상수입니다.
const (
	// HeaderSessionID 브라우저 세션을 식별하는 HTTP 헤더 키입니다.
	//
	// 클라이언트는 최초 응답에서 발급받은 세션 ID를 이후 모든 요청에
	// 이 헤더로 전달해야 동일한 장바구니/위시리스트 상태를 이어갈 수 있습니다.
	HeaderSessionID = "X-Session-ID"
)

// API 요청 시 URL 쿼리 스트링으로 전달되는 파라미터 키 상수입니다.
const (
	// QueryParamPageURL 해시 라우팅 클라이언트가 브라우저 주소 전체(프래그먼트 포함)를
	// 전달할 때 사용하는 쿼리 파라미터 키입니다. 프래그먼트에 담긴 변형 지정을 추출하는 데 쓰입니다.
	QueryParamPageURL = "url"

	// QueryParamCategory 상품 목록 조회 시 카테고리 필터링에 사용되는 쿼리 파라미터 키입니다.
	QueryParamCategory = "category"

	// QueryParamSearch 상품 검색어 전달에 사용되는 쿼리 파라미터 키입니다.
	QueryParamSearch = "q"
)

// API 경로 파라미터 키 상수입니다.
const (
	// PathParamProductID 상품 식별자 경로 파라미터 키입니다.
	PathParamProductID = "id"

	// PathParamCategoryID 카테고리 식별자 경로 파라미터 키입니다.
	PathParamCategoryID = "id"
)

// 클라이언트에게 반환되는 표준 에러 메시지 상수입니다.
const (
	// ErrMsgBadRequest 400 Bad Request 에러 메시지입니다.
	ErrMsgBadRequest = "잘못된 요청입니다."

	// ErrMsgNotFound 404 Not Found 에러 메시지입니다.
	ErrMsgNotFound = "페이지를 찾을 수 없습니다."

	// ErrMsgProductNotFound 요청한 상품이 존재하지 않을 때의 에러 메시지입니다.
	ErrMsgProductNotFound = "상품을 찾을 수 없습니다."

	// ErrMsgCategoryNotFound 요청한 카테고리가 존재하지 않을 때의 에러 메시지입니다.
	ErrMsgCategoryNotFound = "카테고리를 찾을 수 없습니다."

	// ErrMsgInternalServer 500 Internal Server Error 메시지입니다.
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다."

	// ErrMsgTooManyRequests 429 Too Many Requests 에러 메시지입니다.
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
)

// 헬스체크 상태 값 상수입니다.
const (
	// HealthStatusHealthy 정상 상태를 나타냅니다.
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 비정상 상태를 나타냅니다.
	HealthStatusUnhealthy = "unhealthy"
)

// 헬스체크 시 점검하는 외부 의존성 이름 상수입니다.
const (
	// DependencySessionStore 세션 상태 저장소 의존성 이름입니다.
	DependencySessionStore = "session_store"

	// DependencyAlertService 관리자 알림 서비스 의존성 이름입니다.
	DependencyAlertService = "alert_service"
)

// 서비스 초기화 실패 시 사용되는 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired AppConfig가 nil인 경우의 패닉 메시지입니다.
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgCatalogRequired Catalog가 nil인 경우의 패닉 메시지입니다.
	PanicMsgCatalogRequired = "Catalog는 필수입니다"

	// PanicMsgStoresRequired Stores가 nil인 경우의 패닉 메시지입니다.
	PanicMsgStoresRequired = "Stores는 필수입니다"

	// PanicMsgResolverRequired Resolver가 nil인 경우의 패닉 메시지입니다.
	PanicMsgResolverRequired = "Resolver는 필수입니다"

	// PanicMsgAlertSenderRequired AlertSender가 nil인 경우의 패닉 메시지입니다.
	PanicMsgAlertSenderRequired = "AlertSender는 필수입니다"

	// PanicMsgStateStoreRequired SessionStateStore가 nil인 경우의 패닉 메시지입니다.
	PanicMsgStateStoreRequired = "SessionStateStore는 필수입니다"
)
