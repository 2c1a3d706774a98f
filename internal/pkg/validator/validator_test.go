package validator

import (
	"errors"
	"sync"
	"testing"
	"time"

	gov "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name         string  `validate:"required,max=5" korean:"농장명"`
	Area         float64 `validate:"omitempty,gt=0,lte=100" korean:"면적"`
	CreationDate string  `validate:"omitempty,datetime=2006-01-02,notfuture" korean:"설립일"`
	PostalCode   string  `validate:"omitempty,numeric"`
	Count        int     `validate:"min=1,max=3" korean:"개수"`
}

func TestGet_Singleton(t *testing.T) {
	var wg sync.WaitGroup
	const routines = 50
	results := make([]*gov.Validate, routines)

	wg.Add(routines)
	for i := 0; i < routines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	tomorrow := time.Now().AddDate(0, 0, 2).Format(DateLayout)

	tests := []struct {
		name   string
		input  sampleRequest
		expect string
	}{
		{
			name:   "실패: 필수값 누락",
			input:  sampleRequest{Count: 1},
			expect: "농장명은 필수입니다",
		},
		{
			name:   "실패: 문자열 최대 길이 초과 (문자 수 기준)",
			input:  sampleRequest{Name: "가나다라마바", Count: 1},
			expect: "농장명은 최대 5자까지 입력 가능합니다",
		},
		{
			name:   "실패: 0 이하 면적",
			input:  sampleRequest{Name: "a", Area: -1, Count: 1},
			expect: "면적은 0보다 커야 합니다",
		},
		{
			name:   "실패: 면적 상한 초과",
			input:  sampleRequest{Name: "a", Area: 101, Count: 1},
			expect: "면적은 100 이하이어야 합니다",
		},
		{
			name:   "실패: 날짜 형식 오류",
			input:  sampleRequest{Name: "a", CreationDate: "2024/01/01", Count: 1},
			expect: "설립일은 YYYY-MM-DD 형식이어야 합니다",
		},
		{
			name:   "실패: 미래 날짜",
			input:  sampleRequest{Name: "a", CreationDate: tomorrow, Count: 1},
			expect: "설립일은 미래 날짜일 수 없습니다",
		},
		{
			name:   "실패: korean 태그가 없으면 snake_case 필드명을 사용",
			input:  sampleRequest{Name: "a", PostalCode: "abc", Count: 1},
			expect: "postal_code 값 검증 실패 (numeric)",
		},
		{
			name:   "실패: 숫자 최소값",
			input:  sampleRequest{Name: "a", Count: 0},
			expect: "개수는 1 이상이어야 합니다",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.expect, FormatValidationError(err))
		})
	}
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	err := Struct(sampleRequest{Name: "농장", Area: 12.5, CreationDate: "2020-03-01", Count: 2})
	assert.NoError(t, err)
}

func TestFormatValidationError_EdgeCases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatValidationError(nil))
	assert.Equal(t, "plain error", FormatValidationError(errors.New("plain error")))

	empty := gov.ValidationErrors{}
	assert.Equal(t, empty.Error(), FormatValidationError(empty))
}

func TestWithTopicParticle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "농장명은", withTopicParticle("농장명"))
	assert.Equal(t, "위치는", withTopicParticle("위치"))
	assert.Equal(t, "name는", withTopicParticle("name"))
	assert.Equal(t, "는", withTopicParticle(""))
}
