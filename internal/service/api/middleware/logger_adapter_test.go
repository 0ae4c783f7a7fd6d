package middleware

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter는 출력 캡처용 버퍼와 연결된 독립 Logger 어댑터를 생성합니다.
// 전역 로거를 건드리지 않으므로 t.Parallel 테스트에서도 안전합니다.
func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)
	return Logger{Logger: l}, buf
}

func parseAdapterLogEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err, "로그 파싱 실패: %s", buf.String())
	return entry
}

func TestLoggerAdapter_Level(t *testing.T) {
	tests := []struct {
		name        string
		logrusLevel logrus.Level
		expected    log.Lvl
	}{
		{"Debug 레벨 변환", logrus.DebugLevel, log.DEBUG},
		{"Info 레벨 변환", logrus.InfoLevel, log.INFO},
		{"Warn 레벨 변환", logrus.WarnLevel, log.WARN},
		{"Error 레벨 변환", logrus.ErrorLevel, log.ERROR},
		{"Fatal 레벨은 OFF로 변환", logrus.FatalLevel, log.OFF},
		{"Panic 레벨은 OFF로 변환", logrus.PanicLevel, log.OFF},
		{"Trace 레벨은 OFF로 변환", logrus.TraceLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, _ := newTestAdapter()
			adapter.Logger.SetLevel(tt.logrusLevel)

			assert.Equal(t, tt.expected, adapter.Level())
		})
	}
}

func TestLoggerAdapter_SetLevel(t *testing.T) {
	tests := []struct {
		name     string
		echoLvl  log.Lvl
		expected logrus.Level
	}{
		{"DEBUG 설정", log.DEBUG, logrus.DebugLevel},
		{"INFO 설정", log.INFO, logrus.InfoLevel},
		{"WARN 설정", log.WARN, logrus.WarnLevel},
		{"ERROR 설정", log.ERROR, logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, _ := newTestAdapter()
			adapter.SetLevel(tt.echoLvl)

			assert.Equal(t, tt.expected, adapter.Logger.Level)
		})
	}

	t.Run("OFF 설정은 무시됨", func(t *testing.T) {
		adapter, _ := newTestAdapter()
		adapter.Logger.SetLevel(logrus.InfoLevel)

		adapter.SetLevel(log.OFF)

		assert.Equal(t, logrus.InfoLevel, adapter.Logger.Level)
	})
}

func TestLoggerAdapter_Methods(t *testing.T) {
	tests := []struct {
		name          string
		logFunc       func(adapter Logger)
		expectedMsg   string
		expectedLevel string
		expectedField map[string]interface{}
	}{
		{
			name:          "Print 메서드",
			logFunc:       func(a Logger) { a.Print("print message") },
			expectedMsg:   "print message",
			expectedLevel: "info",
		},
		{
			name:          "Printf 메서드",
			logFunc:       func(a Logger) { a.Printf("formatted %s", "message") },
			expectedMsg:   "formatted message",
			expectedLevel: "info",
		},
		{
			name:          "Printj 메서드",
			logFunc:       func(a Logger) { a.Printj(log.JSON{"key": "value"}) },
			expectedLevel: "info",
			expectedField: map[string]interface{}{"key": "value"},
		},
		{
			name:          "Debug 메서드",
			logFunc:       func(a Logger) { a.Debug("debug message") },
			expectedMsg:   "debug message",
			expectedLevel: "debug",
		},
		{
			name:          "Debugf 메서드",
			logFunc:       func(a Logger) { a.Debugf("debug %d", 42) },
			expectedMsg:   "debug 42",
			expectedLevel: "debug",
		},
		{
			name:          "Debugj 메서드",
			logFunc:       func(a Logger) { a.Debugj(log.JSON{"debug_key": "debug_value"}) },
			expectedLevel: "debug",
			expectedField: map[string]interface{}{"debug_key": "debug_value"},
		},
		{
			name:          "Info 메서드",
			logFunc:       func(a Logger) { a.Info("info message") },
			expectedMsg:   "info message",
			expectedLevel: "info",
		},
		{
			name:          "Infof 메서드",
			logFunc:       func(a Logger) { a.Infof("info %s", "formatted") },
			expectedMsg:   "info formatted",
			expectedLevel: "info",
		},
		{
			name:          "Infoj 메서드",
			logFunc:       func(a Logger) { a.Infoj(log.JSON{"info_key": "info_value"}) },
			expectedLevel: "info",
			expectedField: map[string]interface{}{"info_key": "info_value"},
		},
		{
			name:          "Warn 메서드",
			logFunc:       func(a Logger) { a.Warn("warn message") },
			expectedMsg:   "warn message",
			expectedLevel: "warning",
		},
		{
			name:          "Warnf 메서드",
			logFunc:       func(a Logger) { a.Warnf("warn %s", "formatted") },
			expectedMsg:   "warn formatted",
			expectedLevel: "warning",
		},
		{
			name:          "Warnj 메서드",
			logFunc:       func(a Logger) { a.Warnj(log.JSON{"warn_key": "warn_value"}) },
			expectedLevel: "warning",
			expectedField: map[string]interface{}{"warn_key": "warn_value"},
		},
		{
			name:          "Error 메서드",
			logFunc:       func(a Logger) { a.Error("error message") },
			expectedMsg:   "error message",
			expectedLevel: "error",
		},
		{
			name:          "Errorf 메서드",
			logFunc:       func(a Logger) { a.Errorf("error %s", "formatted") },
			expectedMsg:   "error formatted",
			expectedLevel: "error",
		},
		{
			name:          "Errorj 메서드",
			logFunc:       func(a Logger) { a.Errorj(log.JSON{"error_key": "error_value"}) },
			expectedLevel: "error",
			expectedField: map[string]interface{}{"error_key": "error_value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newTestAdapter()

			tt.logFunc(adapter)

			entry := parseAdapterLogEntry(t, buf)
			assert.Equal(t, tt.expectedLevel, entry["level"])
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, entry["msg"])
			}
			for k, v := range tt.expectedField {
				assert.Equal(t, v, entry[k])
			}
		})
	}
}

func TestLoggerAdapter_Panic(t *testing.T) {
	t.Run("Panic 메서드는 panic을 발생시킴", func(t *testing.T) {
		adapter, buf := newTestAdapter()

		assert.Panics(t, func() { adapter.Panic("panic message") })

		entry := parseAdapterLogEntry(t, buf)
		assert.Equal(t, "panic", entry["level"])
		assert.Equal(t, "panic message", entry["msg"])
	})

	t.Run("Panicj 메서드는 필드와 함께 panic을 발생시킴", func(t *testing.T) {
		adapter, buf := newTestAdapter()

		assert.Panics(t, func() { adapter.Panicj(log.JSON{"panic_key": "panic_value"}) })

		entry := parseAdapterLogEntry(t, buf)
		assert.Equal(t, "panic", entry["level"])
		assert.Equal(t, "panic_value", entry["panic_key"])
	})
}

func TestLoggerAdapter_Output(t *testing.T) {
	t.Run("Output은 설정된 Writer를 반환함", func(t *testing.T) {
		adapter, buf := newTestAdapter()

		assert.Equal(t, buf, adapter.Output())
	})

	t.Run("SetOutput으로 Writer를 변경할 수 있음", func(t *testing.T) {
		adapter, _ := newTestAdapter()
		newBuf := new(bytes.Buffer)

		adapter.SetOutput(newBuf)

		assert.Equal(t, newBuf, adapter.Output())
	})
}

func TestLoggerAdapter_PrefixAndHeader(t *testing.T) {
	adapter, buf := newTestAdapter()

	// Prefix와 Header는 사용하지 않으므로 빈 값 / 무동작이어야 함
	assert.Empty(t, adapter.Prefix())
	assert.NotPanics(t, func() { adapter.SetPrefix("prefix") })
	assert.NotPanics(t, func() { adapter.SetHeader("header") })

	// 위 호출들이 로그 출력에 영향을 주지 않아야 함
	adapter.Info("after prefix")
	entry := parseAdapterLogEntry(t, buf)
	assert.Equal(t, "after prefix", entry["msg"])
}
