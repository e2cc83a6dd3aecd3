package service

import (
	"regexp"
	"strings"
)

// 以色列手机号：05x 移动号段或 07x 服务号段，共 10 位
var phonePattern = regexp.MustCompile(`^0(5[0-9]|7[2-9])\d{7}$`)

const israelCountryCode = "972"

// NormalizePhone 规范化手机号：去除非数字字符，972 国家码替换为前导 0
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, israelCountryCode) {
		digits = "0" + strings.TrimPrefix(digits, israelCountryCode)
	}
	return digits
}

// IsValidPhone 判断规范化后的手机号是否合法
func IsValidPhone(normalized string) bool {
	return phonePattern.MatchString(normalized)
}

// NormalizeAndValidatePhone 规范化并校验手机号
func NormalizeAndValidatePhone(raw string) (string, error) {
	normalized := NormalizePhone(raw)
	if !IsValidPhone(normalized) {
		return "", ErrPhoneInvalid
	}
	return normalized, nil
}

// InternationalPhone 转换为国际格式（不含 +），用于 wa.me 链接
func InternationalPhone(normalized string) string {
	if strings.HasPrefix(normalized, "0") {
		return israelCountryCode + strings.TrimPrefix(normalized, "0")
	}
	return normalized
}
