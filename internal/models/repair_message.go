package models

import "time"

// RepairMessage 维修单留言
type RepairMessage struct {
	ID          string    `gorm:"primarykey;type:varchar(36)" json:"id"`               // 主键
	RepairID    string    `gorm:"type:varchar(36);not null;index" json:"repair_id"`    // 维修单ID
	AuthorType  string    `gorm:"type:varchar(10);not null" json:"author_type"`        // customer / admin
	Text        string    `gorm:"type:text;not null" json:"text"`                      // 内容
	ReadByAdmin bool      `gorm:"default:false;index" json:"read_by_admin"`            // 管理员是否已读
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                             // 创建时间
}

// TableName 指定表名
func (RepairMessage) TableName() string {
	return "repair_messages"
}
