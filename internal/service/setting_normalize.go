package service

import (
	"net/url"
	"strings"

	"github.com/hapitzutzia/internal/constants"
)

const settingValueMaxRuneSize = 500

// normalizeSettingValueByKey 按设置键执行归一化，避免非法值入库。
func normalizeSettingValueByKey(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	if len([]rune(value)) > settingValueMaxRuneSize {
		return "", ErrSettingValueInvalid
	}
	switch key {
	case constants.SettingKeyPaymentLink:
		return normalizePaymentLink(value)
	case constants.SettingKeyAdminPhone:
		if value == "" {
			return "", nil
		}
		normalized, err := NormalizeAndValidatePhone(value)
		if err != nil {
			return "", err
		}
		return normalized, nil
	default:
		return value, nil
	}
}

// normalizePaymentLink 付款链接仅允许 http/https 绝对地址，空值表示清除
func normalizePaymentLink(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return "", ErrSettingValueInvalid
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", ErrSettingValueInvalid
	}
	return parsed.String(), nil
}
