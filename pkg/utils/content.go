package utils

import (
	"strings"
	"unicode/utf8"

	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
)

// ValidateContent 校验评论/回复文本 返回去掉首尾空白后的内容
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	length := utf8.RuneCountInString(content)
	if length < constants.MinContentLength {
		return "", errno.RequestErr.WithMessage("content is empty")
	}
	if length > constants.MaxContentLength {
		return "", errno.RequestErr.WithMessage("content is too long")
	}
	if hasExcessiveRepetition(content) {
		return "", errno.RequestErr.WithMessage("content looks like spam")
	}
	return content, nil
}

// hasExcessiveRepetition 同一字符连续出现超过20次视为刷屏
func hasExcessiveRepetition(content string) bool {
	var last rune
	run := 0
	for _, r := range content {
		if r == last {
			run++
			if run >= 20 {
				return true
			}
		} else {
			last = r
			run = 1
		}
	}
	return false
}
