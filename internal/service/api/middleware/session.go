package middleware

import (
	"github.com/highcountrygear/storefront-server/internal/service/api/constants"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// contextKeySessionID Echo Context에 세션 ID를 저장할 때 사용하는 키입니다.
const contextKeySessionID = "session_id"

// SessionID 요청의 X-Session-ID 헤더에서 세션 ID를 추출하는 미들웨어를 반환합니다.
//
// 동작 방식:
//   - 유효한 세션 ID(UUID)가 헤더에 있으면 그대로 사용합니다.
//   - 헤더가 없거나 형식이 올바르지 않으면 새 세션 ID를 발급합니다.
//     잘못된 형식은 경로 조작 등의 공격 시도일 수 있으므로 로그로 남깁니다.
//   - 어떤 경우든 확정된 세션 ID를 응답의 X-Session-ID 헤더에 실어
//     클라이언트가 다음 요청부터 재사용할 수 있도록 합니다.
func SessionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := contract.SessionID(c.Request().Header.Get(constants.HeaderSessionID))

			if sessionID.IsEmpty() {
				sessionID = contract.NewSessionID()
			} else if err := sessionID.Validate(); err != nil {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": c.RealIP(),
					"error":     err,
				}).Warn("유효하지 않은 세션 ID가 수신되어 새 세션을 발급합니다")

				sessionID = contract.NewSessionID()
			}

			c.Set(contextKeySessionID, sessionID)
			c.Response().Header().Set(constants.HeaderSessionID, sessionID.String())

			return next(c)
		}
	}
}

// SessionIDFromContext Echo Context에서 확정된 세션 ID를 꺼냅니다.
//
// SessionID 미들웨어가 적용되지 않은 경로에서 호출되면 빈 세션 ID를 반환하므로,
// 호출자는 IsEmpty 여부를 확인해야 합니다.
func SessionIDFromContext(c echo.Context) contract.SessionID {
	if v, ok := c.Get(contextKeySessionID).(contract.SessionID); ok {
		return v
	}
	return ""
}
