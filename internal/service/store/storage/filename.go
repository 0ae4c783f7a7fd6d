package storage

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

// filenameReplacer 파일명 생성 시 파일 시스템에서 문제를 일으킬 수 있는 특수문자를 안전한 문자로 치환합니다.
//
// 세션 ID는 UUID 형식이 강제되지만, 상태 키는 설정으로 확장될 수 있으므로
// 경로 구분자와 Windows 예약 문자를 방어적으로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 세션 ID와 상태 키를 조합하여 안전하고 고유한 파일명을 생성합니다.
//
// 파일명은 사람이 읽을 수 있는 정제된 이름에 원본 입력의 64비트 해시를 덧붙인
// 하이브리드 형식입니다. 해시는 서로 다른 입력이 정제 후 같은 이름이 되는 충돌과
// 대소문자를 구분하지 않는 파일 시스템에서의 충돌을 방지합니다.
//
// 생성 패턴: "state-{세션ID}-{정제된키}-{16자리해시}.json"
func generateFilename(sessionID contract.SessionID, key contract.StateKey) string {
	name := sanitizeName(string(key))

	// 길이 접두사(Length Prefix)를 포함하여 해싱해, 경계가 다른 입력 조합이
	// 같은 해시 입력이 되는 것을 방지합니다.
	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s|%d:%s", len(sessionID), sessionID, len(key), key)

	return fmt.Sprintf("state-%s-%s-%016x.json", sessionID, name, hasher.Sum64())
}

// sanitizeName 파일명으로 안전하게 사용할 수 있도록 문자열을 정제합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// Kebab 변환 후에도 남아있을 수 있는 제어 문자를 안전한 문자로 치환합니다.
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}
