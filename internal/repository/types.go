package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairListFilter 查询维修单列表的过滤条件
type RepairListFilter struct {
	Page        int
	PageSize    int
	Status      string
	BoardType   string
	Phone       string // 规范化手机号，精确匹配客户
	Search      string // 客户姓名或手机号模糊匹配
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
}

// CustomerSearchFilter 查询客户的过滤条件
type CustomerSearchFilter struct {
	Keyword string
	Limit   int
}

// UnreadCount 维修单未读留言数
type UnreadCount struct {
	RepairID string `json:"repair_id"`
	Count    int64  `json:"count"`
}
