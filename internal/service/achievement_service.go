package service

import (
	"fmt"
	"time"

	"github.com/dayboard/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementDef 是成就目录中的一条定义
// Trigger 决定取快照中的哪个指标，Condition 判断是否达成
type AchievementDef struct {
	Type        string
	Title       string
	Description string
	Icon        string
	Trigger     string
	Condition   func(value float64) bool
}

// achievementCatalog 是静态成就目录
var achievementCatalog = []AchievementDef{
	{
		Type:        "first_task",
		Title:       "Getting Started!",
		Description: "You completed your first task",
		Icon:        "🎯",
		Trigger:     "task_completed",
		Condition:   func(count float64) bool { return count >= 1 },
	},
	{
		Type:        "study_streak_3",
		Title:       "Study Streak Beginner",
		Description: "3 days of consistent studying",
		Icon:        "🔥",
		Trigger:     "study_streak",
		Condition:   func(days float64) bool { return days >= 3 },
	},
	{
		Type:        "study_streak_7",
		Title:       "Study Streak Master",
		Description: "7 days of consistent studying",
		Icon:        "🏆",
		Trigger:     "study_streak",
		Condition:   func(days float64) bool { return days >= 7 },
	},
	{
		Type:        "budget_saver",
		Title:       "Budget Saver",
		Description: "Stayed under budget this month",
		Icon:        "💰",
		Trigger:     "budget_check",
		Condition:   func(percentage float64) bool { return percentage < 90 },
	},
	{
		Type:        "productive_week",
		Title:       "Productivity Champion",
		Description: "Achieved 90%+ productivity this week",
		Icon:        "⚡",
		Trigger:     "productivity_check",
		Condition:   func(score float64) bool { return score >= 90 },
	},
}

// AchievementService 负责成就解锁记录
type AchievementService struct {
	db *gorm.DB
}

// NewAchievementService 构造 AchievementService
func NewAchievementService(gdb *gorm.DB) *AchievementService {
	return &AchievementService{db: gdb}
}

// List 返回用户已解锁的成就，最新在前
func (s *AchievementService) List(userID uint) ([]db.Achievement, error) {
	var unlocked []db.Achievement

	if err := s.db.Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlocked).Error; err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	return unlocked, nil
}

// Evaluate 用快照逐条检查成就目录，解锁新达成的成就
// user_id + type 上有唯一索引，重复评估不会产生重复解锁
func (s *AchievementService) Evaluate(userID uint, snap *Snapshot) ([]db.Achievement, error) {
	if snap == nil {
		return nil, nil
	}

	var newlyUnlocked []db.Achievement
	for _, def := range achievementCatalog {
		if !def.Condition(triggerValue(def.Trigger, snap)) {
			continue
		}

		record := db.Achievement{
			UserID:      userID,
			Type:        def.Type,
			Title:       def.Title,
			Description: def.Description,
			UnlockedAt:  time.Now(),
		}

		result := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}},
			DoNothing: true,
		}).Create(&record)
		if result.Error != nil {
			return nil, fmt.Errorf("unlock achievement %s: %w", def.Type, result.Error)
		}
		if result.RowsAffected > 0 {
			newlyUnlocked = append(newlyUnlocked, record)
		}
	}

	return newlyUnlocked, nil
}

func triggerValue(trigger string, snap *Snapshot) float64 {
	switch trigger {
	case "task_completed":
		return float64(snap.Tasks.Completed)
	case "study_streak":
		return float64(snap.Study.Streak)
	case "budget_check":
		return snap.Expenses.Utilization * 100
	case "productivity_check":
		return float64(snap.Productivity.Score)
	default:
		return 0
	}
}
