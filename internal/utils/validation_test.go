package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSanitizeString 测试字符串清理
func TestSanitizeString(t *testing.T) {
	// 控制字符被移除,换行和制表符保留
	assert.Equal(t, "ab", SanitizeString("a\x00b"))
	assert.Equal(t, "a\nb\tc", SanitizeString("a\nb\tc"))

	// 文本内容不做转义,字符数不因清理而膨胀
	assert.Equal(t, "A & B <Ltd>", SanitizeString("A & B <Ltd>"))
	assert.Equal(t, "年度服务合同", SanitizeString("年度服务合同"))
}

// TestParseID 测试路径 ID 解析
func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, s := range []string{"0", "-1", "abc", "", "1.5"} {
		_, err := ParseID(s)
		assert.Error(t, err, s)
	}
}
