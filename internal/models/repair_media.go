package models

import "time"

// RepairMedia 维修单媒体附件（仅保存对象存储指针）
type RepairMedia struct {
	ID          string    `gorm:"primarykey;type:varchar(36)" json:"id"`                // 主键
	RepairID    string    `gorm:"type:varchar(36);not null;index" json:"repair_id"`     // 维修单ID
	StoragePath string    `gorm:"type:varchar(500);not null" json:"storage_path"`       // 存储路径
	PublicURL   string    `gorm:"type:varchar(1000);not null" json:"public_url"`        // 访问地址
	MediaType   string    `gorm:"type:varchar(10);not null" json:"media_type"`          // image / video
	UploadedBy  string    `gorm:"type:varchar(10);not null" json:"uploaded_by"`         // customer / admin
	FileSize    int64     `gorm:"default:0" json:"file_size"`                           // 文件大小
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                              // 创建时间
}

// TableName 指定表名
func (RepairMedia) TableName() string {
	return "repair_media"
}
