package db

import (
	"time"

	"gorm.io/gorm"
)

// Expense 记录一笔支出
// Amount 使用两位小数的金额，Category 取固定枚举值
type Expense struct {
	gorm.Model
	UserID      uint `gorm:"index"`
	Description string
	Amount      float64
	Category    string
	Date        time.Time
}
