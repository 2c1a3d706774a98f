// Package response v1 API 응답 모델을 정의합니다.
package response

import (
	"time"

	"github.com/darkkaiser/farm-server/internal/service/farm"
)

// FarmResponse 농장 한 건의 응답
type FarmResponse struct {
	// 농장 ID
	ID int64 `json:"id" example:"1"`
	// 농장 이름
	Name string `json:"name" example:"Sunrise"`
	// 농장 위치
	Location string `json:"location" example:"Valencia"`
	// 면적(헥타르), 미입력 시 생략
	Area float64 `json:"area,omitempty" example:"12.5"`
	// 설립일(YYYY-MM-DD), 미입력 시 생략
	CreationDate string `json:"creation_date,omitempty" example:"2010-03-15"`
	// 등록 시각
	CreatedAt time.Time `json:"created_at" example:"2024-06-01T09:00:00Z"`
	// 최종 수정 시각
	UpdatedAt time.Time `json:"updated_at" example:"2024-06-01T09:00:00Z"`
}

// NewFarmResponse 도메인 모델을 응답 모델로 변환합니다.
func NewFarmResponse(f farm.Farm) FarmResponse {
	resp := FarmResponse{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		Area:      f.Area,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.CreationDate != nil {
		resp.CreationDate = f.CreationDate.Format(farm.DateLayout)
	}
	return resp
}

// NewFarmListResponse 목록 응답을 만듭니다. 결과가 없으면 null이 아닌 빈 배열입니다.
func NewFarmListResponse(farms []farm.Farm) []FarmResponse {
	list := make([]FarmResponse, 0, len(farms))
	for _, f := range farms {
		list = append(list, NewFarmResponse(f))
	}
	return list
}
