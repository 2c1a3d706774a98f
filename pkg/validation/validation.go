// Package validation 설정값 검증에 사용되는 범용 검증 함수들을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/darkkaiser/farm-server/pkg/cronx"
)

// ValidatePort 포트 번호가 유효한 범위(1-65535) 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateCORSOrigin CORS Origin이 'Scheme://Host[:Port]' 형식인지 검증합니다.
// 와일드카드('*')는 허용됩니다. 경로, 쿼리, Fragment, UserInfo는 포함할 수 없습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin 포맷 오류: Scheme://Host[:Port] 형식만 허용됩니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (input=%q, port=%s)", origin, p)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, origin)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", origin)
	}

	return ValidateHostname(host)
}

// ValidateHostname 호스트명이 localhost, IP 주소 또는 RFC 1123 도메인명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("호스트명 레이블 길이는 1~63자여야 합니다 (host=%q)", host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (host=%q)", host)
			}
		}
	}

	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateCronExpression 초 단위를 포함하는 6필드 Cron 표현식을 검증합니다.
func ValidateCronExpression(spec string) error {
	return cronx.Validate(spec)
}

// ValidateFile 지정된 경로가 읽을 수 있는 일반 파일인지 검증합니다.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("해당 경로는 일반 파일이어야 합니다 (path=%q)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일을 읽을 수 있는 권한이 없습니다 (path=%q): %w", path, err)
	}
	return f.Close()
}

// EnsureDir 디렉터리가 없으면 생성하고, 경로가 디렉터리인지 검증합니다.
func EnsureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("디렉터리 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("디렉터리를 생성할 수 없습니다 (path=%q): %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("디렉터리 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("해당 경로는 디렉터리가 아닙니다 (path=%q)", path)
	}

	return nil
}
