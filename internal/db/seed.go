package db

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoUsername 是演示账户的用户名
const DemoUsername = "john_doe"

// SeedDemoData 确保演示账户与示例数据存在，重复调用不产生新数据。
func SeedDemoData() (*User, error) {
	var user User
	err := DB.Where("username = ?", DemoUsername).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("dayboard-demo"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user = User{Username: DemoUsername, Password: string(hash), Streak: 7}
	if err := DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}

	if err := seedTasks(user.ID); err != nil {
		return nil, err
	}
	if err := seedExpenses(user.ID); err != nil {
		return nil, err
	}
	if err := seedStudySessions(user.ID); err != nil {
		return nil, err
	}
	if err := seedAchievements(user.ID); err != nil {
		return nil, err
	}

	return &user, nil
}

func seedTasks(userID uint) error {
	completedAt := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC)
	tasks := []Task{
		{UserID: userID, Title: "Complete React project", Description: "Finish the productivity dashboard application", Priority: "high", EstimatedTime: "4 hours", Status: "progress"},
		{UserID: userID, Title: "Study JavaScript ES6", Description: "Review arrow functions, destructuring, and modules", Priority: "medium", EstimatedTime: "2 hours", Status: "done", CompletedAt: &completedAt},
		{UserID: userID, Title: "Read programming book", Description: "Continue reading Clean Code by Robert Martin", Priority: "low", EstimatedTime: "1 hour", Status: "todo"},
		{UserID: userID, Title: "Review TypeScript concepts", Description: "Go through interfaces and generics", Priority: "medium", EstimatedTime: "3 hours", Status: "todo"},
		{UserID: userID, Title: "Plan weekly goals", Description: "Set priorities and objectives for next week", Priority: "high", EstimatedTime: "1 hour", Status: "progress"},
	}

	for i := range tasks {
		if err := DB.Create(&tasks[i]).Error; err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}
	return nil
}

func seedExpenses(userID uint) error {
	today := time.Now()
	expenses := []Expense{
		{UserID: userID, Description: "Coffee and snacks", Amount: 15.50, Category: "Food", Date: dateOnly(today)},
		{UserID: userID, Description: "Programming course subscription", Amount: 29.99, Category: "Education", Date: dateOnly(today.AddDate(0, 0, -1))},
		{UserID: userID, Description: "Lunch", Amount: 12.75, Category: "Food", Date: dateOnly(today.AddDate(0, 0, -1))},
		{UserID: userID, Description: "Transportation", Amount: 8.50, Category: "Transport", Date: dateOnly(today.AddDate(0, 0, -2))},
		{UserID: userID, Description: "Software license", Amount: 99.99, Category: "Tools", Date: dateOnly(today.AddDate(0, 0, -3))},
	}

	for i := range expenses {
		if err := DB.Create(&expenses[i]).Error; err != nil {
			return fmt.Errorf("seed expense: %w", err)
		}
	}
	return nil
}

func seedStudySessions(userID uint) error {
	today := time.Now()
	sessions := []StudySession{
		{UserID: userID, Subject: "JavaScript", Duration: 150, Date: dateOnly(today)},
		{UserID: userID, Subject: "Database Design", Duration: 72, Date: dateOnly(today)},
		{UserID: userID, Subject: "React", Duration: 120, Date: dateOnly(today.AddDate(0, 0, -1))},
		{UserID: userID, Subject: "TypeScript", Duration: 75, Date: dateOnly(today.AddDate(0, 0, -2))},
		{UserID: userID, Subject: "Node.js", Duration: 105, Date: dateOnly(today.AddDate(0, 0, -3))},
	}

	for i := range sessions {
		if err := DB.Create(&sessions[i]).Error; err != nil {
			return fmt.Errorf("seed study session: %w", err)
		}
	}
	return nil
}

func seedAchievements(userID uint) error {
	unlocked := []Achievement{
		{
			UserID:      userID,
			Type:        "week_warrior",
			Title:       "Week Warrior",
			Description: "Maintained a 7-day productivity streak",
			UnlockedAt:  time.Now().AddDate(0, 0, -1),
		},
	}

	for i := range unlocked {
		if err := DB.Create(&unlocked[i]).Error; err != nil {
			return fmt.Errorf("seed achievement: %w", err)
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
