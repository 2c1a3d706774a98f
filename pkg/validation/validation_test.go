package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{"성공: 와일드카드", "*", false},
		{"성공: localhost 포트 포함", "http://localhost:3000", false},
		{"성공: 도메인", "https://farm.example.com", false},
		{"성공: IPv4", "http://192.168.0.1:8080", false},
		{"실패: 빈 문자열", "", true},
		{"실패: 후행 슬래시", "https://example.com/", true},
		{"실패: 경로 포함", "https://example.com/api", true},
		{"실패: 잘못된 스키마", "ftp://example.com", true},
		{"실패: 포트 범위 초과", "http://localhost:70000", true},
		{"실패: 숫자 TLD", "http://example.123", true},
		{"실패: 하이픈으로 시작", "http://-bad.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateCronExpression(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCronExpression("0 0 3 * * *"))
	assert.Error(t, ValidateCronExpression("* * *"))
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.NoError(t, ValidateFile(file))
	assert.Error(t, ValidateFile(""))
	assert.Error(t, ValidateFile(dir), "디렉터리는 파일로 인정되지 않아야 합니다")
	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.pem")))
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	nested := filepath.Join(dir, "backup", "daily")
	assert.NoError(t, EnsureDir(nested))
	assert.DirExists(t, nested)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, EnsureDir(file))
	assert.Error(t, EnsureDir(" "))
}
