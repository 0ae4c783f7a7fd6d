package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
	"github.com/highcountrygear/storefront-server/pkg/concurrency"
	applog "github.com/highcountrygear/storefront-server/pkg/log"
)

// component 세션 상태 Storage 로깅용 컴포넌트 이름
const component = "store.storage"

// defaultDataDirectory 세션 상태를 저장할 기본 디렉토리 이름입니다.
const defaultDataDirectory = "data"

// tempFilePattern 임시 파일 저장 시 사용되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "session-state-*.tmp"

// stateFilePattern 세션 상태 파일의 이름 패턴입니다. PruneStale의 대상 선별에 사용됩니다.
const stateFilePattern = "state-*.json"

// fileSessionStateStore 파일 시스템을 기반으로 세션 상태를 저장하는 저장소 구현체입니다.
//
// [파일 구조]
//   - state-{sessionID}-{key}-{hash}.json: 세션 상태가 JSON 형식으로 저장됩니다.
//   - session-state-*.tmp: 파일 저장 중 생성되는 임시 파일입니다.
type fileSessionStateStore struct {
	baseDir string

	// locks 동일한 파일에 대한 동시 읽기/쓰기를 방지하기 위한 파일별 뮤텍스입니다.
	locks *concurrency.KeyedMutex[string]
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.SessionStateStore = (*fileSessionStateStore)(nil)

// NewFileSessionStateStore 파일 시스템 기반의 세션 상태 저장소를 생성합니다.
//
// 초기화 과정에서 저장 디렉토리를 생성하고, 이전 실행에서 남은 임시 파일을
// 백그라운드로 정리합니다. dir에 빈 문자열을 전달하면 기본 디렉토리("data")를
// 사용하며, 상대 경로는 절대 경로로 자동 변환됩니다.
func NewFileSessionStateStore(dir string) (contract.SessionStateStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrAbsPathConversionFailed(err)
	}

	// 초기화 시점에 디렉토리 생성 및 접근 권한을 미리 확인하여
	// Save 시점에 발생할 수 있는 에러를 조기에 발견합니다.
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &fileSessionStateStore{
		baseDir: absDir,

		locks: concurrency.NewKeyedMutex[string](),
	}

	// 비정상 종료로 남겨진 임시 파일을 백그라운드에서 정리합니다.
	// 서버 시작 속도에 영향을 주지 않도록 비동기로 수행합니다.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"baseDir": s.baseDir,
					"panic":   r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles()
	}()

	return s, nil
}

// cleanupStaleTempFiles 이전 실행에서 남겨진 오래된 임시 파일을 정리합니다.
func (s *fileSessionStateStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	// 최근 1시간 이내에 수정된 임시 파일은 사용 중일 수 있으므로 보호합니다.
	threshold := time.Now().Add(-1 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, _ := filepath.Match(tempFilePattern, name)
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}

// Load 저장된 세션 상태를 파일에서 읽어옵니다.
//
// [동시성 제어]
// 쓰기 중인 파일을 읽어 부분적으로 쓰여진 데이터를 얻는 것을 방지하기 위해
// 읽기에도 파일별 Lock을 적용합니다. Lock 보유 시간을 최소화하기 위해
// 역직렬화(CPU 작업)는 Lock 외부에서 수행합니다.
//
// [손상 데이터 정책]
// 저장된 페이로드가 유효한 JSON이 아니거나 대상 타입으로 역직렬화할 수 없는
// 경우, 경고를 남기고 contract.ErrStateNotFound를 반환합니다. 호출 측은 이를
// '상태 없음'과 동일하게 빈 상태로 처리하므로, 손상된 저장소가 쇼핑 흐름을
// 중단시키지 않습니다.
func (s *fileSessionStateStore) Load(_ context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrLoadRequiresPointer
	}

	filename, err := s.resolveSafePath(sessionID, key)
	if err != nil {
		return err
	}

	// Windows 등 대소문자를 구분하지 않는 파일 시스템을 위해 Lock 키는 소문자로 정규화합니다.
	var data []byte
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return contract.ErrStateNotFound
			}
			return NewErrStateReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !gjson.ValidBytes(data) {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
		}).Warn("세션 상태 손상 감지: 유효하지 않은 JSON 페이로드 (빈 상태로 처리)")

		return contract.ErrStateNotFound
	}

	if err := json.Unmarshal(data, v); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
			"error":      err,
		}).Warn("세션 상태 손상 감지: 역직렬화 실패 (빈 상태로 처리)")

		return contract.ErrStateNotFound
	}

	return nil
}

// Save 세션 상태를 파일에 저장합니다.
//
// [저장 전략: 원자적 쓰기]
// 저장 중 시스템 장애가 발생해도 기존 상태가 손상되지 않도록
// "임시 파일 쓰기 → 디스크 동기화(fsync) → 원자적 이름 변경(rename)"의
// 3단계 전략을 사용합니다.
func (s *fileSessionStateStore) Save(_ context.Context, sessionID contract.SessionID, key contract.StateKey, v any) error {
	filename, err := s.resolveSafePath(sessionID, key)
	if err != nil {
		return err
	}

	// 직렬화는 Lock 획득 전에 수행하여 Lock 보유 시간을 최소화합니다.
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return NewErrJSONMarshalFailed(err)
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		return s.writeAtomic(filename, data)
	})
}

// Delete 저장된 세션 상태 파일을 삭제합니다. 파일이 없는 경우는 에러가 아닙니다.
func (s *fileSessionStateStore) Delete(_ context.Context, sessionID contract.SessionID, key contract.StateKey) error {
	filename, err := s.resolveSafePath(sessionID, key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
			return NewErrStateWriteFailed(err, "상태 파일 삭제")
		}
		return nil
	})
}

// PruneStale 마지막 수정 이후 maxAge가 경과한 세션 상태 파일을 일괄 삭제합니다.
//
// 스케줄러에 의해 주기적으로 호출되어, 다시 방문하지 않는 세션의 상태가
// 디스크에 무한히 쌓이는 것을 방지합니다. ctx가 취소되면 순회를 중단합니다.
func (s *fileSessionStateStore) PruneStale(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return 0, NewErrDirectoryAccessFailed(err, s.baseDir)
	}

	threshold := time.Now().Add(-maxAge)
	pruned := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return pruned, err
		}

		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, _ := filepath.Match(stateFilePattern, name)
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)

		// 삭제 직전에 다른 고루틴이 해당 파일을 갱신 중일 수 있으므로
		// Lock 획득에 실패하면 이번 주기에서는 건너뜁니다.
		lockKey := strings.ToLower(fullPath)
		if !s.locks.TryLock(lockKey) {
			continue
		}

		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("오래된 세션 상태 삭제 실패")
		} else {
			pruned++
		}

		s.locks.Unlock(lockKey)
	}

	return pruned, nil
}

// resolveSafePath 세션 ID와 상태 키로부터 안전하게 검증된 파일 경로를 생성합니다.
//
// 세션 ID는 UUID 형식을 강제하고, 생성된 최종 경로가 기본 디렉토리를 벗어나지
// 않는지 filepath.Rel 기반으로 검증하여 Path Traversal 공격을 방어합니다.
func (s *fileSessionStateStore) resolveSafePath(sessionID contract.SessionID, key contract.StateKey) (string, error) {
	if err := sessionID.Validate(); err != nil {
		return "", err
	}

	filename := generateFilename(sessionID, key)

	fullPath := filepath.Join(s.baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// filepath.Rel 기반 검증은 단순 접두사 비교의 Sibling Directory 취약점을 피합니다.
	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", NewErrPathResolutionFailed(err)
	}
	if strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": sessionID,
			"key":        key,
			"filename":   filename,
			"base_dir":   s.baseDir,
			"path":       cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 데이터를 파일에 원자적으로 저장합니다.
//
// 임시 파일은 rename의 원자성을 보장하기 위해 반드시 대상 파일과 같은
// 디렉토리에 생성합니다. fsync를 생략하면 전원 차단 시 데이터가 유실될 수
// 있으므로 파일 내용과 디렉토리 엔트리를 모두 동기화합니다.
func (s *fileSessionStateStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewErrStateWriteFailed(err, "저장 디렉토리 생성")
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrStateWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열려있는 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrStateWriteFailed(err, "파일 쓰기")
	}

	if err := tmpFile.Sync(); err != nil {
		return NewErrStateWriteFailed(err, "디스크 동기화")
	}

	if err := tmpFile.Close(); err != nil {
		return NewErrStateWriteFailed(err, "파일 닫기")
	}

	if err := s.renameWithRetry(tmpPath, filename); err != nil {
		return NewErrStateWriteFailed(err, "파일 이름 변경")
	}

	// 디렉토리 엔트리 동기화. 실패해도 치명적이지 않으므로 에러를 무시합니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 파일 이름 변경을 재시도 로직과 함께 수행합니다.
//
// Windows 개발 환경에서는 백신이나 인덱서가 파일을 일시적으로 잠글 수 있으므로
// 짧은 대기 후 재시도하여 일시적인 잠금 문제를 우회합니다.
func (s *fileSessionStateStore) renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}
