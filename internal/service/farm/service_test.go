package farm_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/darkkaiser/farm-server/internal/service/farm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo farm.Repository) farm.Service {
	return farm.NewServiceWithClock(repo, func() time.Time { return fixedNow })
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var errDB = errors.New("database is locked")

// =============================================================================
// Constructor
// =============================================================================

func TestNewService_NilRepositoryPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "farm.NewService: Repository는 필수입니다", func() {
		farm.NewService(nil)
	})
}

// =============================================================================
// FindAll / FindByID
// =============================================================================

func TestService_FindAll(t *testing.T) {
	t.Parallel()

	t.Run("성공: 저장소 결과를 그대로 반환", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindAll", mock.Anything).Return([]farm.Farm{{ID: 1, Name: "Sunrise"}, {ID: 2, Name: "Moonlight"}}, nil)

		farms, err := newTestService(repo).FindAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, farms, 2)
		repo.AssertExpectations(t)
	})

	t.Run("성공: 결과가 없으면 빈 슬라이스", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindAll", mock.Anything).Return(nil, nil)

		farms, err := newTestService(repo).FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, farms)
		assert.Empty(t, farms)
	})

	t.Run("실패: 저장소 오류는 System 에러", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindAll", mock.Anything).Return(nil, errDB)

		_, err := newTestService(repo).FindAll(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.ErrorIs(t, err, errDB)
	})
}

func TestService_FindByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        int64
		setupMock func(*mocks.MockRepository)
		wantErr   apperrors.ErrorType
		wantName  string
	}{
		{
			name: "성공: 존재하는 농장",
			id:   7,
			setupMock: func(m *mocks.MockRepository) {
				m.On("FindByID", mock.Anything, int64(7)).Return(farm.Farm{ID: 7, Name: "Sunrise"}, true, nil)
			},
			wantName: "Sunrise",
		},
		{
			name: "실패: 존재하지 않는 농장",
			id:   999,
			setupMock: func(m *mocks.MockRepository) {
				m.On("FindByID", mock.Anything, int64(999)).Return(farm.Farm{}, false, nil)
			},
			wantErr: apperrors.NotFound,
		},
		{
			name:      "실패: 0 이하의 ID",
			id:        0,
			setupMock: func(*mocks.MockRepository) {},
			wantErr:   apperrors.InvalidInput,
		},
		{
			name: "실패: 저장소 오류",
			id:   1,
			setupMock: func(m *mocks.MockRepository) {
				m.On("FindByID", mock.Anything, int64(1)).Return(farm.Farm{}, false, errDB)
			},
			wantErr: apperrors.System,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mocks.MockRepository{}
			tt.setupMock(repo)

			f, err := newTestService(repo).FindByID(context.Background(), tt.id)
			if tt.wantErr != apperrors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.UnderlyingType(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, f.Name)
			repo.AssertExpectations(t)
		})
	}
}

// =============================================================================
// Create / Update
// =============================================================================

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("성공: 입력값을 정규화하여 저장", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("ExistsByName", mock.Anything, "Sunrise Farm", int64(0)).Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(f *farm.Farm) bool {
			return f.Name == "Sunrise Farm" && f.Location == "Valencia" && f.Area == 12.5
		})).Return(nil)

		f, err := newTestService(repo).Create(context.Background(), farm.Input{
			Name:         "  Sunrise   Farm ",
			Location:     "Valencia ",
			Area:         12.5,
			CreationDate: datePtr(2010, 3, 15),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), f.ID)
		assert.Equal(t, "Sunrise Farm", f.Name)
		assert.Equal(t, "2010-03-15", f.CreationDate.Format(farm.DateLayout))
		repo.AssertExpectations(t)
	})

	t.Run("실패: 이름 중복 사전 검사", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(0)).Return(true, nil)

		_, err := newTestService(repo).Create(context.Background(), farm.Input{Name: "Sunrise", Location: "Valencia"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Conflict))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("실패: 저장 시점의 유니크 제약 위반", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(0)).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(farm.ErrDuplicateName)

		_, err := newTestService(repo).Create(context.Background(), farm.Input{Name: "Sunrise", Location: "Valencia"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Conflict))
		assert.Contains(t, err.Error(), "Sunrise")
	})

	t.Run("실패: 저장소 오류", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(0)).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(errDB)

		_, err := newTestService(repo).Create(context.Background(), farm.Input{Name: "Sunrise", Location: "Valencia"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       farm.Input
		errContains string
	}{
		{"실패: 이름 누락", farm.Input{Name: "   ", Location: "Valencia"}, "농장명은 필수"},
		{"실패: 이름 길이 초과", farm.Input{Name: strings.Repeat("가", farm.MaxNameLength+1), Location: "Valencia"}, "농장명은 최대"},
		{"실패: 위치 누락", farm.Input{Name: "Sunrise"}, "위치는 필수"},
		{"실패: 위치 길이 초과", farm.Input{Name: "Sunrise", Location: strings.Repeat("a", farm.MaxLocationLength+1)}, "위치는 최대"},
		{"실패: 음수 면적", farm.Input{Name: "Sunrise", Location: "Valencia", Area: -1}, "면적"},
		{"실패: 면적 상한 초과", farm.Input{Name: "Sunrise", Location: "Valencia", Area: farm.MaxArea + 1}, "면적"},
		{"실패: 미래 설립일", farm.Input{Name: "Sunrise", Location: "Valencia", CreationDate: datePtr(2030, 1, 1)}, "미래 날짜"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mocks.MockRepository{}

			_, err := newTestService(repo).Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.errContains)
			repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("성공: 최대 길이 경계값", func(t *testing.T) {
		t.Parallel()

		name := strings.Repeat("가", farm.MaxNameLength)
		repo := &mocks.MockRepository{}
		repo.On("ExistsByName", mock.Anything, name, int64(0)).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := newTestService(repo).Create(context.Background(), farm.Input{Name: name, Location: "Valencia", Area: farm.MaxArea})
		assert.NoError(t, err)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	input := farm.Input{Name: "Sunrise", Location: "Madrid"}

	t.Run("성공: 전체 필드 교체", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByID", mock.Anything, int64(3)).Return(farm.Farm{ID: 3, Name: "Sunrise"}, true, nil)
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(3)).Return(false, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(f *farm.Farm) bool {
			return f.ID == 3 && f.Location == "Madrid"
		})).Return(true, nil)

		f, err := newTestService(repo).Update(context.Background(), 3, input)
		require.NoError(t, err)
		assert.Equal(t, int64(3), f.ID)
		repo.AssertExpectations(t)
	})

	t.Run("실패: 존재하지 않는 농장", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByID", mock.Anything, int64(404)).Return(farm.Farm{}, false, nil)

		_, err := newTestService(repo).Update(context.Background(), 404, input)
		require.Error(t, err)
		assert.True(t, farm.IsNotFound(err))
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("실패: 조회와 수정 사이에 삭제된 농장", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByID", mock.Anything, int64(5)).Return(farm.Farm{ID: 5, Name: "Sunrise"}, true, nil)
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(5)).Return(false, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(false, nil)

		_, err := newTestService(repo).Update(context.Background(), 5, input)
		require.Error(t, err)
		assert.True(t, farm.IsNotFound(err))
	})

	t.Run("실패: 존재 확인 중 저장소 오류", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByID", mock.Anything, int64(3)).Return(farm.Farm{}, false, errors.New("disk I/O error"))

		_, err := newTestService(repo).Update(context.Background(), 3, input)
		require.Error(t, err)
		assert.False(t, farm.IsNotFound(err))
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("실패: 다른 농장과 이름 중복", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByID", mock.Anything, int64(3)).Return(farm.Farm{ID: 3, Name: "Moonlight"}, true, nil)
		repo.On("ExistsByName", mock.Anything, "Sunrise", int64(3)).Return(true, nil)

		_, err := newTestService(repo).Update(context.Background(), 3, input)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Conflict))
	})

	t.Run("실패: 잘못된 ID", func(t *testing.T) {
		t.Parallel()

		_, err := newTestService(&mocks.MockRepository{}).Update(context.Background(), -1, input)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("실패: 잘못된 입력값", func(t *testing.T) {
		t.Parallel()

		_, err := newTestService(&mocks.MockRepository{}).Update(context.Background(), 3, farm.Input{Name: "Sunrise"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

// =============================================================================
// Delete
// =============================================================================

func TestService_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      int64
		found   bool
		repoErr error
		wantErr apperrors.ErrorType
	}{
		{name: "성공: 삭제", id: 1, found: true},
		{name: "실패: 존재하지 않는 농장", id: 2, found: false, wantErr: apperrors.NotFound},
		{name: "실패: 저장소 오류", id: 3, repoErr: errDB, wantErr: apperrors.System},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mocks.MockRepository{}
			repo.On("Delete", mock.Anything, tt.id).Return(tt.found, tt.repoErr)

			err := newTestService(repo).Delete(context.Background(), tt.id)
			if tt.wantErr == apperrors.Unknown {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantErr, apperrors.UnderlyingType(err))
			}
			repo.AssertExpectations(t)
		})
	}
}

// =============================================================================
// FindByCriteria
// =============================================================================

func TestService_FindByCriteria(t *testing.T) {
	t.Parallel()

	t.Run("성공: 조건을 정규화하여 전달", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByCriteria", mock.Anything, farm.Criteria{Name: "sun rise", Location: "Valencia"}).
			Return([]farm.Farm{{ID: 1, Name: "Sun Rise"}}, nil)

		farms, err := newTestService(repo).FindByCriteria(context.Background(), farm.Criteria{Name: " sun   rise ", Location: "Valencia"})
		require.NoError(t, err)
		assert.Len(t, farms, 1)
		repo.AssertExpectations(t)
	})

	t.Run("성공: 조건이 모두 비어있으면 전체 조회", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindAll", mock.Anything).Return([]farm.Farm{{ID: 1}, {ID: 2}}, nil)

		farms, err := newTestService(repo).FindByCriteria(context.Background(), farm.Criteria{Name: "  "})
		require.NoError(t, err)
		assert.Len(t, farms, 2)
		repo.AssertNotCalled(t, "FindByCriteria", mock.Anything, mock.Anything)
	})

	t.Run("성공: 일치 항목 없음", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}
		repo.On("FindByCriteria", mock.Anything, mock.Anything).Return(nil, nil)

		farms, err := newTestService(repo).FindByCriteria(context.Background(), farm.Criteria{Name: "nothing"})
		require.NoError(t, err)
		assert.Equal(t, []farm.Farm{}, farms)
	})

	t.Run("실패: 검색 조건 길이 초과", func(t *testing.T) {
		t.Parallel()

		repo := &mocks.MockRepository{}

		_, err := newTestService(repo).FindByCriteria(context.Background(), farm.Criteria{Location: strings.Repeat("x", farm.MaxCriteriaLength+1)})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

// =============================================================================
// FoldKey
// =============================================================================

func TestFoldKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, farm.FoldKey("SUNRISE farm"), farm.FoldKey(" sunrise   FARM "))
	assert.Equal(t, farm.FoldKey("ÉTÉ"), farm.FoldKey("été"))
	assert.Equal(t, farm.FoldKey("Straße"), farm.FoldKey("STRASSE"))
	assert.NotEqual(t, farm.FoldKey("Sunrise"), farm.FoldKey("Sunset"))
}
