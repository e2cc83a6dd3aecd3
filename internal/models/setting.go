package models

import "time"

// Setting 店铺可编辑配置（营业时间、WhatsApp 模板等），按键存储
type Setting struct {
	Key       string    `gorm:"primarykey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null;default:''" json:"value"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
