// Package request v1 API 요청 본문 및 쿼리 파라미터 모델을 정의합니다.
package request

import (
	"time"

	"github.com/darkkaiser/farm-server/internal/pkg/validator"
	"github.com/darkkaiser/farm-server/internal/service/farm"
)

// FarmRequest 농장 생성/수정 요청
//
// 문자열 길이는 정규화 이후 값으로 판단해야 하므로 태그가 아닌 farm.Service에서 검사합니다.
type FarmRequest struct {
	// 농장 이름 (대소문자 구분 없이 유일, 정규화 후 최대 100자)
	Name string `json:"name" validate:"required" korean:"농장명" example:"Sunrise" maxLength:"100"`
	// 농장 위치 (정규화 후 최대 255자)
	Location string `json:"location" validate:"required" korean:"위치" example:"Valencia" maxLength:"255"`
	// 면적(헥타르). 생략하거나 0이면 미입력으로 취급합니다.
	Area float64 `json:"area,omitempty" validate:"omitempty,gt=0,lte=100000" korean:"면적" example:"12.5"`
	// 설립일 (YYYY-MM-DD, 미래 날짜 불가)
	CreationDate string `json:"creation_date,omitempty" validate:"omitempty,datetime=2006-01-02,notfuture" korean:"설립일" example:"2010-03-15"`
}

// ToInput 검증을 통과한 요청을 서비스 입력으로 변환합니다.
func (r *FarmRequest) ToInput() (farm.Input, error) {
	in := farm.Input{
		Name:     r.Name,
		Location: r.Location,
		Area:     r.Area,
	}

	if r.CreationDate != "" {
		d, err := time.ParseInLocation(validator.DateLayout, r.CreationDate, time.Local)
		if err != nil {
			return farm.Input{}, err
		}
		in.CreationDate = &d
	}

	return in, nil
}

// FarmSearchRequest 농장 검색 조건. 모든 조건은 선택 사항입니다.
//
// 길이 제한은 공백 정리와 NFC 정규화를 거친 값에 적용되므로 farm.Service에서 검사합니다.
type FarmSearchRequest struct {
	// 농장 이름 부분 일치 (대소문자 무시)
	Name string `query:"name" korean:"검색할 농장명" example:"sun"`
	// 위치 부분 일치 (대소문자 무시)
	Location string `query:"location" korean:"검색할 위치" example:"valencia"`
}

// ToCriteria 검색 요청을 서비스 검색 조건으로 변환합니다.
func (r *FarmSearchRequest) ToCriteria() farm.Criteria {
	return farm.Criteria{Name: r.Name, Location: r.Location}
}
