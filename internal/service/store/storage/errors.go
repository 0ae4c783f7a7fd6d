package storage

import (
	"fmt"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 파일 경로 생성 시 Path Traversal(경로 이탈) 시도가 감지되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrLoadRequiresPointer Load 함수 호출 시 대상 객체가 올바른 포인터 타입이 아닐 때 반환하는 에러입니다.
	ErrLoadRequiresPointer = apperrors.New(apperrors.Internal, "내부 시스템 오류: 데이터 로드 대상 객체가 올바른 포인터 타입이 아닙니다")
)

// NewErrPathResolutionFailed 파일 경로 해석에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

// NewErrAbsPathConversionFailed 저장소 초기화 시 디렉토리 경로를 절대 경로로 변환하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrAbsPathConversionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "저장소 초기화 실패: 절대 경로 변환 불가")
}

// NewErrDirectoryAccessFailed 저장소 초기화 시 디렉토리 생성 또는 접근 권한 확인에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrJSONMarshalFailed 세션 상태를 JSON으로 직렬화하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrJSONMarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "데이터 처리 실패: 세션 상태 직렬화(JSON Marshal) 중 오류가 발생했습니다")
}

// NewErrStateReadFailed 세션 상태 파일을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrStateReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "세션 상태 조회 실패: 저장된 상태 파일 읽기 처리 중 오류가 발생했습니다")
}

// NewErrStateWriteFailed 세션 상태 저장(임시 파일 쓰기, 동기화, 이름 변경 등)에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrStateWriteFailed(err error, step string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("세션 상태 저장 실패: %s 중 오류가 발생했습니다", step))
}

// NewErrRedisCommandFailed Redis 명령 수행에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrRedisCommandFailed(err error, command string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("세션 상태 저장소 오류: Redis %s 명령 수행에 실패했습니다", command))
}
