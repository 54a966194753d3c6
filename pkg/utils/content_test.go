package utils

import (
	"strings"
	"testing"

	"ReelVibe.com/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContent(t *testing.T) {
	content, err := ValidateContent("  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)

	// 中文按rune计数 交替字符避免触发刷屏判定
	content, err = ValidateContent(strings.Repeat("你好", constants.MaxContentLength/2))
	require.NoError(t, err)
	assert.Len(t, []rune(content), constants.MaxContentLength)

	// 重复字符在阈值以内是合法内容
	content, err = ValidateContent(strings.Repeat("哈", 19))
	require.NoError(t, err)
	assert.Len(t, []rune(content), 19)
}

func TestValidateContentRejects(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", " \t\n "},
		{"too long", strings.Repeat("xy", constants.MaxContentLength/2) + "z"},
		{"repetition spam", "aaaaaaaaaaaaaaaaaaaaaaaaa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateContent(tc.content)
			assert.Error(t, err)
		})
	}
}
