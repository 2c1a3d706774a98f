// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  Sunrise   Farm  " -> "Sunrise Farm"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeText 사용자 입력 텍스트를 저장 및 비교 가능한 형태로 정규화합니다.
//
// 공백을 정리한 뒤 유니코드 NFC 형식으로 변환합니다. macOS 등에서 입력된 NFD 한글
// ("ㅎ+ㅏ+ㄴ")과 NFC 한글("한")이 서로 다른 값으로 저장되는 문제를 막습니다.
func NormalizeText(s string) string {
	return norm.NFC.String(NormalizeSpaces(s))
}

// RuneLen 문자열의 문자(rune) 수를 반환합니다.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// EscapeLike SQL LIKE 패턴의 와일드카드(%, _)와 이스케이프 문자를 escape 문자로 이스케이프합니다.
// 예: EscapeLike("50%_off", '\\') -> `50\%\_off`
func EscapeLike(s string, escape rune) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if r == '%' || r == '_' || r == escape {
			sb.WriteRune(escape)
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Mask 토큰, 키 등 민감한 값을 로그에 안전하게 남기기 위해 마스킹합니다.
// 길이는 문자(rune) 단위로 계산하므로 결과는 항상 올바른 UTF-8입니다.
func Mask(data string) string {
	if data == "" {
		return ""
	}

	runes := []rune(data)
	n := len(runes)

	if n <= 3 {
		return "***"
	}

	if n <= 12 {
		return string(runes[:4]) + "***"
	}

	return string(runes[:4]) + "***" + string(runes[n-4:])
}
