package models

import "time"

// Customer 客户表（按规范化手机号唯一）
type Customer struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`              // 主键
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`             // 姓名
	Phone     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"` // 规范化手机号
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
