package db

import (
	"time"

	"gorm.io/gorm"
)

// Task 是任务在持久化层的映射
// 内存引擎中的日程任务是它的超集（额外携带分类/计划时间/日期分区）
// Status 取 todo/progress/done/skipped，CompletedAt 仅在 done 时有值
type Task struct {
	gorm.Model
	UserID        uint `gorm:"index"`
	Title         string
	Description   string
	Priority      string `gorm:"default:medium"`
	EstimatedTime string
	Status        string `gorm:"default:todo"`
	CompletedAt   *time.Time
}
