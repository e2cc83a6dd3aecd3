package models

import "time"

// Repair 维修单表
type Repair struct {
	ID               string            `gorm:"primarykey;type:varchar(36)" json:"id"`                                   // 主键
	CustomerID       string            `gorm:"type:varchar(36);not null;index" json:"customer_id"`                      // 客户ID
	BoardType        string            `gorm:"type:varchar(20);not null;index" json:"board_type"`                       // 板型
	Description      string            `gorm:"type:text;not null" json:"description"`                                   // 问题描述
	Urgency          string            `gorm:"type:varchar(20);not null;default:'normal'" json:"urgency"`               // 紧急程度
	DeliveryLocation string            `gorm:"type:varchar(30);not null;default:'pardess_hanna'" json:"delivery_location"` // 交付地点
	DeliveryOther    *string           `gorm:"type:varchar(255)" json:"delivery_other"`                                 // 其他地点说明
	Status           string            `gorm:"type:varchar(20);not null;index" json:"status"`                           // 状态
	Price            NullMoney         `gorm:"type:decimal(10,2)" json:"price"`                                         // 报价
	CreatedAt        time.Time         `gorm:"index" json:"created_at"`                                                 // 创建时间
	UpdatedAt        time.Time         `json:"updated_at"`                                                              // 更新时间
	StartedAt        *time.Time        `json:"started_at"`                                                              // 开始维修时间
	ReadyAt          *time.Time        `json:"ready_at"`                                                                // 完工时间
	ArchivedAt       *time.Time        `json:"archived_at"`                                                             // 归档时间
	Customer         *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`                         // 客户
	Media            []RepairMedia     `gorm:"foreignKey:RepairID;constraint:OnDelete:CASCADE" json:"media"`           // 媒体附件
	StatusLogs       []RepairStatusLog `gorm:"foreignKey:RepairID;constraint:OnDelete:CASCADE" json:"-"`               // 状态日志
	Messages         []RepairMessage   `gorm:"foreignKey:RepairID;constraint:OnDelete:CASCADE" json:"-"`               // 留言
}

// TableName 指定表名
func (Repair) TableName() string {
	return "repairs"
}
