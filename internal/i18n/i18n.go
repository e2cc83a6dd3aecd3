package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LocaleHE 希伯来语（默认）
	LocaleHE = "he-IL"
	// LocaleEN 英语
	LocaleEN = "en-US"
	// DefaultLocale 默认语言
	DefaultLocale = LocaleHE
)

// NormalizeLocale 归一化语言标识，不支持的语言回退到默认语言
func NormalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return DefaultLocale
	case strings.HasPrefix(value, "he"), strings.HasPrefix(value, "iw"):
		return LocaleHE
	case strings.HasPrefix(value, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// ResolveLocale 按 lang 查询参数、Accept-Language 顺序解析请求语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return NormalizeLocale(lang)
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" || tag == "*" {
			continue
		}
		lower := strings.ToLower(tag)
		if strings.HasPrefix(lower, "he") || strings.HasPrefix(lower, "iw") || strings.HasPrefix(lower, "en") {
			return NormalizeLocale(tag)
		}
	}
	return DefaultLocale
}

// T 获取翻译文本，缺失时回退到默认语言，再回退到键名
func T(locale, key string) string {
	if msg, ok := messages[NormalizeLocale(locale)][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 获取翻译模板并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
