package utils

import "strings"

// SplitAndTrim は文字列を分割し、各要素をトリムする
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitCommaList はカンマ区切りのフラグ値を展開する
// (--project a,b --project c は [a b c] になる)
func SplitCommaList(values []string) []string {
	var result []string
	for _, v := range values {
		result = append(result, SplitAndTrim(v, ",")...)
	}
	return result
}
