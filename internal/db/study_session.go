package db

import (
	"time"

	"gorm.io/gorm"
)

// StudySession 记录一次完成的学习会话
// Duration 为分钟数；Date 只取到日期粒度用于连胜/周汇总
type StudySession struct {
	gorm.Model
	UserID   uint `gorm:"index"`
	Subject  string
	Duration int
	Date     time.Time `gorm:"index"`
}
