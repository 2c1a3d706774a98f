package constants

// URL 경로/쿼리 파라미터 키 상수입니다.
const (
	// ParamID 농장 ID 경로 파라미터
	ParamID = "id"

	// QueryName 농장명 검색 쿼리 파라미터
	QueryName = "name"

	// QueryLocation 위치 검색 쿼리 파라미터
	QueryLocation = "location"
)
