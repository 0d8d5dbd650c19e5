package db

import (
	"time"

	"gorm.io/gorm"
)

// Achievement 记录一次成就解锁
// Type 对应成就目录中的定义 ID，同一用户同一 Type 只解锁一次
type Achievement struct {
	gorm.Model
	UserID      uint   `gorm:"index;index:idx_achievement_unique,unique"`
	Type        string `gorm:"index:idx_achievement_unique,unique"`
	Title       string
	Description string
	UnlockedAt  time.Time
}

// TableName 重写确保唯一索引作用到 user_id + type
func (Achievement) TableName() string {
	return "achievements"
}
