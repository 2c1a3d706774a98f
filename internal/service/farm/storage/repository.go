package storage

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/darkkaiser/farm-server/internal/service/farm"
	"github.com/darkkaiser/farm-server/pkg/strutil"
	"gorm.io/gorm"
)

// likeEscape LIKE 패턴에서 사용하는 이스케이프 문자
const likeEscape = '\\'

type repository struct {
	db *gorm.DB
}

func (r *repository) FindAll(ctx context.Context) ([]farm.Farm, error) {
	var recs []farmRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toFarms(recs), nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (farm.Farm, bool, error) {
	var rec farmRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.Farm{}, false, nil
		}
		return farm.Farm{}, false, err
	}
	return rec.toFarm(), true, nil
}

func (r *repository) FindByCriteria(ctx context.Context, c farm.Criteria) ([]farm.Farm, error) {
	q := r.db.WithContext(ctx).Model(&farmRecord{})
	if c.Name != "" {
		q = q.Where(`name_key LIKE ? ESCAPE '\'`, containsPattern(c.Name))
	}
	if c.Location != "" {
		q = q.Where(`location_key LIKE ? ESCAPE '\'`, containsPattern(c.Location))
	}

	var recs []farmRecord
	if err := q.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toFarms(recs), nil
}

func (r *repository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&farmRecord{}).
		Where("name_key = ? AND id <> ?", farm.FoldKey(name), excludeID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Create(ctx context.Context, f *farm.Farm) error {
	rec := newRecord(f)
	rec.ID = 0

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translateError(err)
	}

	f.ID = rec.ID
	f.CreatedAt = rec.CreatedAt
	f.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *repository) Update(ctx context.Context, f *farm.Farm) (bool, error) {
	rec := newRecord(f)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur farmRecord
		if err := tx.Select("id", "created_at").First(&cur, f.ID).Error; err != nil {
			return err
		}

		rec.CreatedAt = cur.CreatedAt
		return tx.Save(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, translateError(err)
	}

	f.CreatedAt = rec.CreatedAt.UTC()
	f.UpdatedAt = rec.UpdatedAt.UTC()
	return true, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&farmRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// containsPattern 검색어를 부분 일치 LIKE 패턴으로 변환합니다.
func containsPattern(s string) string {
	return "%" + strutil.EscapeLike(farm.FoldKey(s), likeEscape) + "%"
}

// translateError glebarez/sqlite(modernc) 드라이버 에러를 도메인 에러로 변환합니다.
// 이 드라이버의 제약 조건 위반과 SQLITE_BUSY는 gorm TranslateError로 변환되지 않아 메시지로 판별합니다.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return farm.ErrDuplicateName
	}
	if msg := err.Error(); strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY") {
		return apperrors.Wrap(err, apperrors.Unavailable, "데이터베이스가 일시적으로 사용 중입니다")
	}
	return err
}

var _ farm.Repository = (*repository)(nil)
