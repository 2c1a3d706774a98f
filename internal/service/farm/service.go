package farm

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/pkg/strutil"
	applog "github.com/darkkaiser/farm-server/pkg/log"
)

const component = "farm.service"

// Service 농장 CRUD 및 검색 기능을 정의합니다.
//
// 모든 실패는 apperrors.AppError로 분류됩니다.
//   - 존재하지 않는 ID: NotFound
//   - 잘못된 입력(ID, 필드, 검색 조건): InvalidInput
//   - 이름 중복: Conflict
//   - 저장소 장애: System
type Service interface {
	FindAll(ctx context.Context) ([]Farm, error)
	FindByID(ctx context.Context, id int64) (Farm, error)
	Create(ctx context.Context, in Input) (Farm, error)
	Update(ctx context.Context, id int64, in Input) (Farm, error)
	Delete(ctx context.Context, id int64) error
	FindByCriteria(ctx context.Context, c Criteria) ([]Farm, error)
}

type service struct {
	repo Repository

	// now 설립일 미래 여부 검사 기준 시각 (테스트에서 교체)
	now func() time.Time
}

// NewService Repository를 주입받아 Service를 생성합니다.
func NewService(repo Repository) Service {
	if repo == nil {
		panic("farm.NewService: Repository는 필수입니다")
	}

	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) FindAll(ctx context.Context) ([]Farm, error) {
	farms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, newErrStorage(err, "농장 목록 조회에 실패했습니다")
	}
	return nonNil(farms), nil
}

func (s *service) FindByID(ctx context.Context, id int64) (Farm, error) {
	if id <= 0 {
		return Farm{}, NewErrInvalidID(id)
	}

	f, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Farm{}, newErrStorage(err, "농장 조회에 실패했습니다")
	}
	if !found {
		return Farm{}, NewErrNotFound(id)
	}

	return f, nil
}

func (s *service) Create(ctx context.Context, in Input) (Farm, error) {
	in = in.normalize()
	if err := s.validateInput(in); err != nil {
		return Farm{}, err
	}

	if err := s.ensureUniqueName(ctx, in.Name, 0); err != nil {
		return Farm{}, err
	}

	f := Farm{
		Name:         in.Name,
		Location:     in.Location,
		Area:         in.Area,
		CreationDate: in.CreationDate,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return Farm{}, NewErrDuplicateName(in.Name)
		}
		return Farm{}, newErrStorage(err, "농장 등록에 실패했습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"farm_id":   f.ID,
		"farm_name": f.Name,
	}).Info("농장 등록 완료")

	return f, nil
}

func (s *service) Update(ctx context.Context, id int64, in Input) (Farm, error) {
	if id <= 0 {
		return Farm{}, NewErrInvalidID(id)
	}

	in = in.normalize()
	if err := s.validateInput(in); err != nil {
		return Farm{}, err
	}

	// 존재하지 않는 농장이면 이름 중복 여부와 관계없이 NotFound입니다.
	if _, found, err := s.repo.FindByID(ctx, id); err != nil {
		return Farm{}, newErrStorage(err, "농장 조회에 실패했습니다")
	} else if !found {
		return Farm{}, NewErrNotFound(id)
	}

	if err := s.ensureUniqueName(ctx, in.Name, id); err != nil {
		return Farm{}, err
	}

	f := Farm{
		ID:           id,
		Name:         in.Name,
		Location:     in.Location,
		Area:         in.Area,
		CreationDate: in.CreationDate,
	}
	found, err := s.repo.Update(ctx, &f)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return Farm{}, NewErrDuplicateName(in.Name)
		}
		return Farm{}, newErrStorage(err, "농장 수정에 실패했습니다")
	}
	if !found {
		return Farm{}, NewErrNotFound(id)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"farm_id":   f.ID,
		"farm_name": f.Name,
	}).Info("농장 수정 완료")

	return f, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewErrInvalidID(id)
	}

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return newErrStorage(err, "농장 삭제에 실패했습니다")
	}
	if !found {
		return NewErrNotFound(id)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"farm_id": id,
	}).Info("농장 삭제 완료")

	return nil
}

func (s *service) FindByCriteria(ctx context.Context, c Criteria) ([]Farm, error) {
	c = c.normalize()

	if n := strutil.RuneLen(c.Name); n > MaxCriteriaLength {
		return nil, newErrInvalidInput("검색할 농장명은 최대 %d자까지 입력 가능합니다 (입력: %d자)", MaxCriteriaLength, n)
	}
	if n := strutil.RuneLen(c.Location); n > MaxCriteriaLength {
		return nil, newErrInvalidInput("검색할 위치는 최대 %d자까지 입력 가능합니다 (입력: %d자)", MaxCriteriaLength, n)
	}

	// 조건이 없으면 전체 목록과 동일합니다.
	if c.IsEmpty() {
		return s.FindAll(ctx)
	}

	farms, err := s.repo.FindByCriteria(ctx, c)
	if err != nil {
		return nil, newErrStorage(err, "농장 검색에 실패했습니다")
	}

	return nonNil(farms), nil
}

// validateInput 정규화된 입력값이 도메인 규칙을 만족하는지 검사합니다.
// HTTP 계층의 태그 기반 검증과 별개로, 어떤 호출 경로든 같은 규칙을 보장합니다.
func (s *service) validateInput(in Input) error {
	switch n := strutil.RuneLen(in.Name); {
	case n == 0:
		return newErrInvalidInput("농장명은 필수입니다")
	case n > MaxNameLength:
		return newErrInvalidInput("농장명은 최대 %d자까지 입력 가능합니다", MaxNameLength)
	}

	switch n := strutil.RuneLen(in.Location); {
	case n == 0:
		return newErrInvalidInput("위치는 필수입니다")
	case n > MaxLocationLength:
		return newErrInvalidInput("위치는 최대 %d자까지 입력 가능합니다", MaxLocationLength)
	}

	if in.Area < 0 || in.Area > MaxArea {
		return newErrInvalidInput("면적은 0보다 크고 %d 이하이어야 합니다 (입력: %g)", MaxArea, in.Area)
	}

	if in.CreationDate != nil && in.CreationDate.After(s.now()) {
		return newErrInvalidInput("설립일은 미래 날짜일 수 없습니다 (입력: %s)", in.CreationDate.Format(DateLayout))
	}

	return nil
}

func (s *service) ensureUniqueName(ctx context.Context, name string, excludeID int64) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return newErrStorage(err, "농장명 중복 확인에 실패했습니다")
	}
	if exists {
		return NewErrDuplicateName(name)
	}
	return nil
}

// nonNil 결과가 없을 때 JSON에서 null 대신 []로 직렬화되도록 빈 슬라이스를 반환합니다.
func nonNil(farms []Farm) []Farm {
	if farms == nil {
		return []Farm{}
	}
	return farms
}

// 컴파일 타임 인터페이스 구현 확인
var _ Service = (*service)(nil)

// IsNotFound err이 농장 미존재 에러인지 확인합니다.
func IsNotFound(err error) bool {
	return apperrors.UnderlyingType(err) == apperrors.NotFound
}
