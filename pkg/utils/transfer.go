package utils

import (
	"strconv"
)

// Transfer 将JWT payload中的身份信息转换为int64的用户ID
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		// JSON反序列化后数字默认为float64
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}
