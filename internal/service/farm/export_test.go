package farm

import "time"

// NewServiceWithClock 기준 시각을 고정한 Service를 생성합니다.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	s := NewService(repo).(*service)
	s.now = now
	return s
}
