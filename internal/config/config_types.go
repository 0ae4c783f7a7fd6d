package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/commerce"
	"github.com/highcountrygear/storefront-server/pkg/cronx"
	"github.com/highcountrygear/storefront-server/pkg/validation"
)

const (
	// StorageBackendFile 세션 상태를 로컬 파일 시스템에 저장하는 백엔드 식별자
	StorageBackendFile = "file"

	// StorageBackendRedis 세션 상태를 Redis에 저장하는 백엔드 식별자
	StorageBackendRedis = "redis"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Storage   StorageConfig   `json:"storage"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Alert     AlertConfig     `json:"alert"`
	Commerce  CommerceConfig  `json:"commerce"`
	StoreAPI  StoreAPIConfig  `json:"store_api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Storage.validate(v); err != nil {
		return err
	}

	if err := c.Scheduler.validate(); err != nil {
		return err
	}

	if err := c.Alert.validate(v); err != nil {
		return err
	}

	if err := c.Commerce.validate(); err != nil {
		return err
	}

	if err := c.StoreAPI.validate(v); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.StoreAPI.VerifyRecommendations()
}

// StorageConfig 세션 상태(장바구니, 위시리스트, 최근 본 상품, 실험군)의 저장 방식을 정의하는 구조체
type StorageConfig struct {
	Backend   string             `json:"backend" validate:"required,oneof=file redis"`
	Retention time.Duration      `json:"retention"`
	File      FileStorageConfig  `json:"file"`
	Redis     RedisStorageConfig `json:"redis"`
}

func (c *StorageConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "Storage"); err != nil {
		return err
	}

	if c.Retention <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("세션 상태 보존 기간(retention)은 0보다 커야 합니다: '%v'", c.Retention))
	}

	switch c.Backend {
	case StorageBackendFile:
		if strings.TrimSpace(c.File.DataDir) == "" {
			return apperrors.New(apperrors.InvalidInput, "파일 백엔드 사용 시 데이터 디렉토리(file.data_dir)는 필수입니다")
		}
	case StorageBackendRedis:
		return c.Redis.validate()
	}

	return nil
}

// FileStorageConfig 파일 백엔드의 세션 상태 파일 저장 위치를 정의하는 구조체
type FileStorageConfig struct {
	DataDir string `json:"data_dir"`
}

// RedisStorageConfig Redis 백엔드의 접속 정보 및 세션 만료 정책을 정의하는 구조체
type RedisStorageConfig struct {
	Addr       string        `json:"addr"`
	Password   string        `json:"password"`
	DB         int           `json:"db" validate:"min=0"`
	SessionTTL time.Duration `json:"session_ttl"`
}

func (c *RedisStorageConfig) validate() error {
	host, port, err := net.SplitHostPort(c.Addr)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Redis 접속 주소(redis.addr) 형식이 올바르지 않습니다: '%s' (형식: host:port, 예: localhost:6379)", c.Addr))
	}
	if err := validation.ValidateHostname(host); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Redis 접속 주소(redis.addr)의 호스트가 올바르지 않습니다: '%s'", host))
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Redis 접속 주소(redis.addr)의 포트가 올바르지 않습니다: '%s'", port))
	}
	if err := validation.ValidatePort(portNum); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Redis 접속 주소(redis.addr)의 포트가 올바르지 않습니다: '%s'", port))
	}

	if c.DB < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Redis DB 번호(redis.db)는 0 이상이어야 합니다: '%d'", c.DB))
	}

	if c.SessionTTL <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Redis 세션 만료 시간(redis.session_ttl)은 0보다 커야 합니다: '%v'", c.SessionTTL))
	}

	return nil
}

// SchedulerConfig 백그라운드 작업의 실행 주기를 정의하는 구조체
type SchedulerConfig struct {
	Prune PruneJobConfig `json:"prune"`
}

func (c *SchedulerConfig) validate() error {
	return c.Prune.validate()
}

// PruneJobConfig 오래된 세션 상태 정리 작업의 스케줄링 설정을 정의하는 구조체
type PruneJobConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

func (c *PruneJobConfig) validate() error {
	// Cron 표현식 검증 (정리 작업이 활성화된 경우)
	if c.Runnable {
		if err := cronx.Validate(c.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("세션 정리 작업의 스케줄러(time_spec) 설정이 유효하지 않습니다: '%s'", c.TimeSpec))
		}
	}
	return nil
}

// AlertConfig 서버 운영 중 발생하는 주요 이벤트의 알림 채널을 정의하는 구조체
type AlertConfig struct {
	Telegram TelegramAlertConfig `json:"telegram"`
}

func (c *AlertConfig) validate(v *validator.Validate) error {
	return c.Telegram.validate(v)
}

// TelegramAlertConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramAlertConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

func (c *TelegramAlertConfig) validate(v *validator.Validate) error {
	if !c.Enabled {
		return nil
	}
	return checkStruct(v, c, "Telegram Alert")
}

// CommerceConfig 커머스 변형(A/B) 데이터의 오버라이드를 정의하는 구조체.
// variants가 비어있으면 내장 기본 변형 데이터가 그대로 사용됩니다.
type CommerceConfig struct {
	Variants []commerce.Config `json:"variants"`
}

func (c *CommerceConfig) validate() error {
	seen := make(map[commerce.VariantID]bool, len(c.Variants))
	for i := range c.Variants {
		if err := c.Variants[i].Validate(); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("커머스 변형 설정(commerce.variants[%d])이 유효하지 않습니다", i))
		}

		if seen[c.Variants[i].ID] {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("커머스 변형 설정(commerce.variants)에 변형 '%s'가 중복되었습니다", c.Variants[i].ID))
		}
		seen[c.Variants[i].ID] = true
	}

	return nil
}

// StoreAPIConfig 스토어프론트 REST API 서버의 웹 서비스 및 CORS 설정 구조체
type StoreAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *StoreAPIConfig) validate(v *validator.Validate) error {
	if err := c.WS.validate(v); err != nil {
		return err
	}

	if err := c.CORS.validate(v); err != nil {
		return err
	}

	return nil
}

func (c *StoreAPIConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// WSConfig 웹 서비스의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "웹 서비스")
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			return nil
		}
	}

	// 각 Origin 유효성 검사
	return checkStruct(v, c, "CORS")
}
