package handler

import (
	"github.com/dayboard/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	userID       uint
	tasks        *service.TaskService
	routines     *service.StudyRoutineService
	expenses     *service.ExpenseService
	sessions     *service.StudySessionService
	achievements *service.AchievementService
	snapshots    *service.SnapshotService
	quotes       *service.QuoteService
}

// NewAPI constructs a handler set with shared services.
// userID 为当前演示账户，所有持久化读写都归属于它。
func NewAPI(gdb *gorm.DB, userID uint, cfg service.SnapshotConfig) *API {
	tasks := service.NewTaskService()
	expenses := service.NewExpenseService()
	sessions := service.NewStudySessionService(gdb)

	return &API{
		userID:       userID,
		tasks:        tasks,
		routines:     service.NewStudyRoutineService(),
		expenses:     expenses,
		sessions:     sessions,
		achievements: service.NewAchievementService(gdb),
		snapshots:    service.NewSnapshotService(tasks, expenses, sessions, cfg),
		quotes:       service.NewQuoteService(),
	}
}

// Quotes 暴露语录服务，供后台定时刷新使用。
func (a *API) Quotes() *service.QuoteService {
	return a.quotes
}

// Snapshots 暴露快照服务，供后台成就巡检使用。
func (a *API) Snapshots() *service.SnapshotService {
	return a.snapshots
}

// Achievements 暴露成就服务，供后台成就巡检使用。
func (a *API) Achievements() *service.AchievementService {
	return a.achievements
}

// Sessions 暴露学习会话服务，供后台连胜回写使用。
func (a *API) Sessions() *service.StudySessionService {
	return a.sessions
}

// UserID 返回演示账户 ID。
func (a *API) UserID() uint {
	return a.userID
}
