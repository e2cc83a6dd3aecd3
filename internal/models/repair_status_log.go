package models

import "time"

// RepairStatusLog 维修状态变更日志（只追加）
type RepairStatusLog struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`               // 主键
	RepairID  string    `gorm:"type:varchar(36);not null;index" json:"repair_id"`    // 维修单ID
	OldStatus *string   `gorm:"type:varchar(20)" json:"old_status"`                  // 原状态，创建时为空
	NewStatus string    `gorm:"type:varchar(20);not null" json:"new_status"`         // 新状态
	Note      *string   `gorm:"type:text" json:"note"`                               // 备注
	ChangedAt time.Time `gorm:"index;not null" json:"changed_at"`                    // 变更时间
}

// TableName 指定表名
func (RepairStatusLog) TableName() string {
	return "repair_status_log"
}
