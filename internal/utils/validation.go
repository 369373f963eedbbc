package utils

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// SanitizeString 清理字符串:移除控制字符(保留换行和制表符)
// 不做 HTML 转义,长度校验按清理后的字符数进行,输出转义交给序列化层
func SanitizeString(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}

// ParseID 解析路径参数里的数字 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}
