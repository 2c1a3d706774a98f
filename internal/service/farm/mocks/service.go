package mocks

import (
	"context"

	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/stretchr/testify/mock"
)

// MockService farm.Service 인터페이스의 Mock 구현체입니다.
type MockService struct {
	mock.Mock
}

func (m *MockService) FindAll(ctx context.Context) ([]farm.Farm, error) {
	args := m.Called(ctx)
	farms, _ := args.Get(0).([]farm.Farm)
	return farms, args.Error(1)
}

func (m *MockService) FindByID(ctx context.Context, id int64) (farm.Farm, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(farm.Farm)
	return f, args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in farm.Input) (farm.Farm, error) {
	args := m.Called(ctx, in)
	f, _ := args.Get(0).(farm.Farm)
	return f, args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, in farm.Input) (farm.Farm, error) {
	args := m.Called(ctx, id, in)
	f, _ := args.Get(0).(farm.Farm)
	return f, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) FindByCriteria(ctx context.Context, c farm.Criteria) ([]farm.Farm, error) {
	args := m.Called(ctx, c)
	farms, _ := args.Get(0).([]farm.Farm)
	return farms, args.Error(1)
}

var _ farm.Service = (*MockService)(nil)
