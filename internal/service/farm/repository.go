package farm

import "context"

// Repository 농장 데이터의 영속성을 담당하는 저장소 인터페이스입니다.
//
// 단건 조회/수정/삭제는 found 값으로 대상 존재 여부를 알려줍니다.
// 존재하지 않는 것은 에러가 아니며, 이를 NotFound 에러로 바꾸는 것은 Service의 책임입니다.
type Repository interface {
	// FindAll ID 오름차순으로 모든 농장을 반환합니다.
	FindAll(ctx context.Context) ([]Farm, error)

	// FindByID 농장 한 건을 조회합니다.
	FindByID(ctx context.Context, id int64) (f Farm, found bool, err error)

	// FindByCriteria 이름/위치의 대소문자 무시 부분 일치로 검색합니다. 빈 조건은 무시합니다.
	FindByCriteria(ctx context.Context, c Criteria) ([]Farm, error)

	// ExistsByName 같은 이름(FoldKey 기준)의 다른 농장이 있는지 확인합니다. excludeID는 비교에서 제외합니다.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// Create 농장을 저장하고 ID와 생성/수정 시각을 채웁니다.
	Create(ctx context.Context, f *Farm) error

	// Update f.ID에 해당하는 농장의 내용을 교체합니다.
	Update(ctx context.Context, f *Farm) (found bool, err error)

	// Delete 농장을 삭제합니다.
	Delete(ctx context.Context, id int64) (found bool, err error)
}
