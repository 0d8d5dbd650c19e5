package db

import "gorm.io/gorm"

// User 定义了账户模型
// Streak 镜像学习连胜天数，由后台任务定期回写
// 当前范围内只有一个演示账户，不做多用户路由
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex"`
	Password string
	Streak   int
}
