// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 도우미 함수를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"time"
)

// GetFreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer 서버가 해당 포트에서 연결을 받을 때까지 대기합니다.
func WaitForServer(port int, timeout time.Duration) error {
	address := fmt.Sprintf("127.0.0.1:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return fmt.Errorf("%v 이내에 서버가 %d 포트에서 시작되지 않았습니다", timeout, port)
}
