package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// moneyScale 金额统一保留的小数位
const moneyScale = 2

// ErrMoneyFormat 金额格式错误
var ErrMoneyFormat = errors.New("invalid money format")

// Money 维修报价金额（保留 2 位小数，谢克尔）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(moneyScale)}
}

// NewMoneyFromFloat 从浮点数创建金额
func NewMoneyFromFloat(amount float64) Money {
	return NewMoneyFromDecimal(decimal.NewFromFloat(amount))
}

// ParseMoney 解析字符串金额
func ParseMoney(raw string) (Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, ErrMoneyFormat
	}
	return NewMoneyFromDecimal(d), nil
}

// IsNegative 是否为负数
func (m Money) IsNegative() bool {
	return m.Decimal.Sign() < 0
}

// MarshalJSON 输出数字形式的金额，便于前端直接计算
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(moneyScale).StringFixed(moneyScale)), nil
}

// UnmarshalJSON 解析金额（字符串或数字）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return ErrMoneyFormat
	}
	*m = NewMoneyFromDecimal(d)
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(moneyScale).StringFixed(moneyScale), nil
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(moneyScale)
	return nil
}

// String 返回 2 位小数格式
func (m Money) String() string {
	return m.Decimal.Round(moneyScale).StringFixed(moneyScale)
}

// NullMoney 可为空的金额（未报价时为 NULL）
type NullMoney struct {
	Money Money
	Valid bool
}

// NewNullMoney 创建有效金额
func NewNullMoney(m Money) NullMoney {
	return NullMoney{Money: m, Valid: true}
}

// MarshalJSON 未报价输出 null
func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}

// UnmarshalJSON 解析可为空的金额
func (n *NullMoney) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*n = NullMoney{}
		return nil
	}
	if err := n.Money.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value 用于数据库写入
func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

// Scan 用于数据库读取
func (n *NullMoney) Scan(value interface{}) error {
	if value == nil {
		*n = NullMoney{}
		return nil
	}
	if err := n.Money.Scan(value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
