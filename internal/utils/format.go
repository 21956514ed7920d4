package utils

import (
	"strconv"
	"time"
)

// FormatNumber は数値を3桁区切りでフォーマットする
func FormatNumber(n int) string {
	str := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	var result []byte
	for i := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return sign + string(result)
}

// FormatDuration は経過時間をミリ秒単位に丸めて返す
func FormatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
