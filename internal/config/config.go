package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "storefront-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 환경 변수로 설정을 덮어쓸 때 사용하는 접두사입니다.
	envPrefix = "STOREFRONT_"

	// ------------------------------------------------------------------------------------------------
	// 세션 상태 저장소 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultStorageBackend 세션 상태 저장소 백엔드 기본값
	DefaultStorageBackend = StorageBackendFile

	// DefaultFileDataDir 파일 백엔드의 세션 상태 파일 저장 디렉토리 기본값
	DefaultFileDataDir = "data"

	// DefaultSessionRetention 마지막 접근 이후 세션 상태를 보존하는 기간 기본값
	DefaultSessionRetention = "720h"

	// ------------------------------------------------------------------------------------------------
	// 세션 정리 스케줄러 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultPruneTimeSpec 오래된 세션 상태 정리 작업의 실행 주기 기본값 (매일 새벽 4시)
	DefaultPruneTimeSpec = "0 0 4 * * *"

	// ------------------------------------------------------------------------------------------------
	// 웹 서비스 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultListenPort 웹 서비스의 수신 포트 기본값
	DefaultListenPort = 8080
)

// defaultSettings 설정 파일이나 환경 변수로 지정되지 않은 항목에 적용되는 기본값 집합을 반환합니다.
func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"storage.backend":           DefaultStorageBackend,
		"storage.retention":         DefaultSessionRetention,
		"storage.file.data_dir":     DefaultFileDataDir,
		"storage.redis.session_ttl": DefaultSessionRetention,
		"scheduler.prune.runnable":  true,
		"scheduler.prune.time_spec": DefaultPruneTimeSpec,
		"store_api.ws.listen_port":  DefaultListenPort,
		"store_api.cors.allow_origins": []string{"*"},
	}
}

// normalizeEnvKey 환경 변수 이름을 koanf의 계층형 설정 키로 변환합니다.
//
// 접두사(STOREFRONT_)를 제거하고 소문자로 변환한 뒤,
// 이중 언더스코어(__)를 점(.)으로 치환하여 계층 구조를 표현합니다.
// 예: STOREFRONT_STORAGE__REDIS__ADDR -> storage.redis.addr
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위는 기본값 < 설정 파일 < 환경 변수 순이며,
// 언마샬링 직후 전체 설정에 대한 유효성 검증까지 수행합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
