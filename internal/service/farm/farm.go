// Package farm 농장(Farm) 도메인 모델과 CRUD/검색 비즈니스 로직을 제공합니다.
package farm

import (
	"time"

	"github.com/darkkaiser/farm-server/pkg/strutil"
	"golang.org/x/text/cases"
)

const (
	// MaxNameLength 농장명 최대 문자 수
	MaxNameLength = 100

	// MaxLocationLength 위치 최대 문자 수
	MaxLocationLength = 255

	// MaxArea 농장 면적 상한 (헥타르)
	MaxArea = 100000

	// MaxCriteriaLength 검색 조건 하나의 최대 문자 수
	MaxCriteriaLength = 100

	// DateLayout 설립일(CreationDate) 표기 형식
	DateLayout = time.DateOnly
)

// Farm 저장소에 저장된 농장 한 건입니다.
type Farm struct {
	ID           int64
	Name         string
	Location     string
	Area         float64    // 헥타르 단위, 0이면 미입력
	CreationDate *time.Time // 설립일, nil이면 미입력
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Input 농장 생성/수정 요청 값입니다. 수정 시에는 전체 필드를 교체합니다.
type Input struct {
	Name         string
	Location     string
	Area         float64
	CreationDate *time.Time
}

// normalize 공백 정리와 유니코드 NFC 정규화를 적용한 복사본을 반환합니다.
func (in Input) normalize() Input {
	in.Name = strutil.NormalizeText(in.Name)
	in.Location = strutil.NormalizeText(in.Location)
	return in
}

// Criteria 검색 조건입니다. 빈 값은 "조건 없음"을 의미합니다.
type Criteria struct {
	Name     string
	Location string
}

// normalize 검색 조건을 저장된 값과 같은 방식으로 정규화합니다.
func (c Criteria) normalize() Criteria {
	c.Name = strutil.NormalizeText(c.Name)
	c.Location = strutil.NormalizeText(c.Location)
	return c
}

// IsEmpty 모든 검색 조건이 비어있는지 여부
func (c Criteria) IsEmpty() bool {
	return c.Name == "" && c.Location == ""
}

// FoldKey 대소문자를 구분하지 않는 비교(중복 검사, 검색)에 사용하는 키를 반환합니다.
// 유니코드 Case Folding을 사용하므로 "ÉTÉ"와 "été"는 같은 키가 됩니다.
func FoldKey(s string) string {
	return cases.Fold().String(strutil.NormalizeText(s))
}
