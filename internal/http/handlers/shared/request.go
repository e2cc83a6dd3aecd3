package shared

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var errDateInvalid = errors.New("date invalid")

// ParseOptionalDate 解析 YYYY-MM-DD 或 RFC3339 日期，空值返回 nil；endOfDay 时取当日结束时刻。
func ParseOptionalDate(raw string, endOfDay bool) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, errDateInvalid
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}

// ParseOptionalDecimal 解析可选金额，空值返回 nil。
func ParseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
