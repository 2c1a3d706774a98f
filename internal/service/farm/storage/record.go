package storage

import (
	"time"

	"github.com/darkkaiser/farm-server/internal/service/farm"
)

// farmRecord farms 테이블의 한 행입니다.
//
// NameKey, LocationKey는 farm.FoldKey로 만든 비교용 컬럼으로, 대소문자 무시 검색과
// 이름 중복 방지(유니크 인덱스)에 사용됩니다. 응답에는 노출되지 않습니다.
type farmRecord struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"size:100;not null"`
	NameKey      string  `gorm:"size:400;not null;uniqueIndex:idx_farms_name_key"`
	Location     string  `gorm:"size:255;not null"`
	LocationKey  string  `gorm:"size:1020;not null;index:idx_farms_location_key"`
	Area         float64 `gorm:"not null"`
	CreationDate *string `gorm:"size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (farmRecord) TableName() string {
	return "farms"
}

func newRecord(f *farm.Farm) farmRecord {
	rec := farmRecord{
		ID:          f.ID,
		Name:        f.Name,
		NameKey:     farm.FoldKey(f.Name),
		Location:    f.Location,
		LocationKey: farm.FoldKey(f.Location),
		Area:        f.Area,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if f.CreationDate != nil {
		d := f.CreationDate.Format(farm.DateLayout)
		rec.CreationDate = &d
	}
	return rec
}

func (r *farmRecord) toFarm() farm.Farm {
	f := farm.Farm{
		ID:        r.ID,
		Name:      r.Name,
		Location:  r.Location,
		Area:      r.Area,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.CreationDate != nil {
		// 저장 시 항상 DateLayout으로 기록하므로 파싱 실패는 외부에서 변경된 데이터뿐입니다.
		if d, err := time.Parse(farm.DateLayout, *r.CreationDate); err == nil {
			f.CreationDate = &d
		}
	}
	return f
}

func toFarms(recs []farmRecord) []farm.Farm {
	farms := make([]farm.Farm, 0, len(recs))
	for i := range recs {
		farms = append(farms, recs[i].toFarm())
	}
	return farms
}
