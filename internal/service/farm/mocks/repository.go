package mocks

import (
	"context"

	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/stretchr/testify/mock"
)

// MockRepository farm.Repository 인터페이스의 Mock 구현체입니다.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAll(ctx context.Context) ([]farm.Farm, error) {
	args := m.Called(ctx)
	farms, _ := args.Get(0).([]farm.Farm)
	return farms, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (farm.Farm, bool, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(farm.Farm)
	return f, args.Bool(1), args.Error(2)
}

func (m *MockRepository) FindByCriteria(ctx context.Context, c farm.Criteria) ([]farm.Farm, error) {
	args := m.Called(ctx, c)
	farms, _ := args.Get(0).([]farm.Farm)
	return farms, args.Error(1)
}

func (m *MockRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// Create 호출 시 ID가 0이면 1을 채워 저장된 것처럼 동작합니다.
func (m *MockRepository) Create(ctx context.Context, f *farm.Farm) error {
	args := m.Called(ctx, f)
	if args.Error(0) == nil && f.ID == 0 {
		f.ID = 1
	}
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, f *farm.Farm) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ farm.Repository = (*MockRepository)(nil)
