// Package cronx robfig/cron 기반 스케줄 표현식 처리를 애플리케이션 표준 형식으로 통일합니다.
package cronx

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 Cron 표현식 파서를 반환합니다.
//
// 필드 순서: [초] [분] [시] [일] [월] [요일]
// @daily, @every 1h 같은 Descriptor도 지원합니다.
//
// 예시:
//   - "0 0 3 * * *" : 매일 03:00:00
//   - "@daily"      : 매일 자정
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 표현식이 StandardParser 형식에 맞는지 검사합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}

// Next 기준 시각 이후 표현식이 처음으로 실행될 시각을 반환합니다.
func Next(spec string, from time.Time) (time.Time, error) {
	schedule, err := StandardParser().Parse(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return schedule.Next(from), nil
}
