package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applog "github.com/darkkaiser/farm-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// captureLogs 테스트 동안 전역 로거 출력을 JSON 형식으로 캡처하고, 종료 시 원래 상태로 복구합니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	originalOut := applog.StandardLogger().Out
	originalFormatter := applog.StandardLogger().Formatter
	originalLevel := applog.StandardLogger().Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
	})

	return buf
}

// parseLastLogEntry 버퍼에 기록된 마지막 JSON 로그를 파싱합니다.
func parseLastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	lines := strings.Split(output, "\n")
	lastLine := lines[len(lines)-1]

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lastLine), &entry), "로그 파싱 실패: %s", lastLine)

	return entry
}

// =============================================================================
// HTTPLogger
// =============================================================================

func TestHTTPLogger(t *testing.T) {
	tests := []struct {
		name    string
		request func() *http.Request
		handler echo.HandlerFunc
		verify  func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{})
	}{
		{
			name: "성공: 기본 GET 요청",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/farms", nil)
				req.Header.Set("User-Agent", "TestAgent/1.0")
				req.RemoteAddr = "1.2.3.4:12345"
				return req
			},
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, []string{})
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{}) {
				assert.Equal(t, http.StatusOK, rec.Code)

				assert.Equal(t, "HTTP 요청", entry["msg"])
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "api.middleware.http_logger", entry["component"])
				assert.Equal(t, "GET", entry["method"])
				assert.Equal(t, "/api/v1/farms", entry["path"])
				assert.Equal(t, "1.2.3.4", entry["remote_ip"])
				assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
				assert.Equal(t, float64(http.StatusOK), entry["status"])
				assert.Equal(t, "0", entry["bytes_in"])
				assert.NotEmpty(t, entry["latency"])
				assert.NotEmpty(t, entry["time_rfc3339"])
			},
		},
		{
			name: "성공: 핸들러 에러 시 실제 응답 상태 코드 기록",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/api/v1/farms/42", nil)
			},
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "농장을 찾을 수 없습니다")
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{}) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, float64(http.StatusNotFound), entry["status"])
				assert.Equal(t, "DELETE", entry["method"])
			},
		},
		{
			name: "성공: 5xx 응답은 warning 레벨",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/v1/farms", nil)
			},
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusInternalServerError)
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{}) {
				assert.Equal(t, "warning", entry["level"])
				assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
			},
		},
		{
			name: "성공: Content-Length 기록",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/farms", nil)
				req.Header.Set(echo.HeaderContentLength, "1024")
				return req
			},
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{}) {
				assert.Equal(t, "1024", entry["bytes_in"])
			},
		},
		{
			name: "성공: 민감한 쿼리 파라미터 마스킹",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/v1/farms/search?name=sun&token=secret-key", nil)
			},
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder, entry map[string]interface{}) {
				uri := entry["uri"].(string)
				assert.Contains(t, uri, "token=secr%2A%2A%2A")
				assert.Contains(t, uri, "name=sun")
				assert.NotContains(t, uri, "secret-key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(tt.request(), rec)

			err := HTTPLogger()(tt.handler)(c)
			assert.NoError(t, err, "핸들러 에러는 에러 핸들러로 전달되고 nil이 반환되어야 합니다")

			tt.verify(t, rec, parseLastLogEntry(t, buf))
		})
	}
}

func TestHTTPLogger_LogsEvenOnPanic(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/farms/1", nil), httptest.NewRecorder())

	assert.Panics(t, func() {
		_ = HTTPLogger()(func(c echo.Context) error {
			panic("unexpected")
		})(c)
	})

	entry := parseLastLogEntry(t, buf)
	assert.Equal(t, "/api/v1/farms/1", entry["path"])
	assert.NotEmpty(t, entry["latency"])
}

// =============================================================================
// maskSensitiveQueryParams
// =============================================================================

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"성공: password 마스킹", "/login?password=mypassword123", "/login?password=mypa%2A%2A%2Ad123"},
		{"성공: api_key 마스킹", "/x?api_key=abc", "/x?api_key=%2A%2A%2A"},
		{"성공: 민감 정보가 없으면 원본 유지", "/api/v1/farms/search?name=sun&location=seoul", "/api/v1/farms/search?name=sun&location=seoul"},
		{"성공: 파싱 실패 시 원본 반환", "://invalid-uri", "://invalid-uri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.input))
		})
	}

	t.Run("성공: 여러 파라미터 혼합", func(t *testing.T) {
		t.Parallel()

		got := maskSensitiveQueryParams("/auth?id=123&secret=topsecret")
		assert.Contains(t, got, "secret=tops%2A%2A%2A")
		assert.Contains(t, got, "id=123")
	})
}
