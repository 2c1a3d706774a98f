package mocks

import (
	"github.com/darkkaiser/farm-server/internal/service/notification"
	"github.com/stretchr/testify/mock"
)

// MockSender notification.Sender, notification.HealthChecker 인터페이스의 Mock 구현체입니다.
type MockSender struct {
	mock.Mock
}

// NewMockSender 모든 호출을 허용하는 기본 동작이 설정된 MockSender를 생성합니다.
func NewMockSender() *MockSender {
	m := &MockSender{}
	m.On("NotifyDefault", mock.Anything).Return(nil).Maybe()
	m.On("NotifyDefaultWithError", mock.Anything).Return(nil).Maybe()
	m.On("Health").Return(nil).Maybe()
	return m
}

func (m *MockSender) NotifyDefault(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockSender) NotifyDefaultWithError(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockSender) Health() error {
	args := m.Called()
	return args.Error(0)
}

var (
	_ notification.Sender        = (*MockSender)(nil)
	_ notification.HealthChecker = (*MockSender)(nil)
)
