package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayboard/internal/db"
	"gorm.io/gorm"
)

// ErrInvalidSessionInput 当学习会话字段校验失败时返回
var ErrInvalidSessionInput = errors.New("invalid study session input")

// StudySessionService 负责学习会话日志与连胜统计
// 会话是已完成的学习记录，与每周固定的 StudyRoutine 相互独立
type StudySessionService struct {
	db *gorm.DB
}

// SessionInput 定义记录学习会话时的输入对象
type SessionInput struct {
	UserID   uint
	Subject  string
	Duration int
	Date     time.Time
}

// NewStudySessionService 构造 StudySessionService
func NewStudySessionService(gdb *gorm.DB) *StudySessionService {
	return &StudySessionService{db: gdb}
}

// Record 写入一条学习会话，Date 为零值时取当前时间
func (s *StudySessionService) Record(input SessionInput) (*db.StudySession, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidSessionInput)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidSessionInput)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	session := db.StudySession{
		UserID:   input.UserID,
		Subject:  subject,
		Duration: input.Duration,
		Date:     normalizeToDate(date),
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create study session: %w", err)
	}
	return &session, nil
}

// ListBetween 返回指定区间内的学习会话
func (s *StudySessionService) ListBetween(userID uint, start, end time.Time) ([]db.StudySession, error) {
	var sessions []db.StudySession

	if err := s.db.Where("user_id = ?", userID).
		Where("date BETWEEN ? AND ?", normalizeToDate(start), normalizeToDate(end)).
		Order("date ASC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}

	return sessions, nil
}

// MinutesOn 汇总某一天的学习分钟数
func (s *StudySessionService) MinutesOn(userID uint, day time.Time) (int, error) {
	var total int64

	if err := s.db.Model(&db.StudySession{}).
		Where("user_id = ? AND date = ?", userID, normalizeToDate(day)).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum study minutes: %w", err)
	}

	return int(total), nil
}

// WeeklyMinutes 返回以 weekStart 为首日的七天学习分钟数
func (s *StudySessionService) WeeklyMinutes(userID uint, weekStart time.Time) ([7]int, error) {
	var week [7]int

	start := normalizeToDate(weekStart)
	sessions, err := s.ListBetween(userID, start, start.AddDate(0, 0, 6))
	if err != nil {
		return week, err
	}

	for _, session := range sessions {
		offset := int(session.Date.Sub(start).Hours() / 24)
		if offset >= 0 && offset < 7 {
			week[offset] += session.Duration
		}
	}

	return week, nil
}

// Streak 计算截至 today 的连续学习天数
// 今天尚无会话时从昨天起算，中断即归零
func (s *StudySessionService) Streak(userID uint, today time.Time) (int, error) {
	var dates []time.Time

	if err := s.db.Model(&db.StudySession{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return 0, fmt.Errorf("list study dates: %w", err)
	}

	if len(dates) == 0 {
		return 0, nil
	}

	cursor := normalizeToDate(today)
	if !dates[0].Equal(cursor) {
		cursor = cursor.AddDate(0, 0, -1)
		if !dates[0].Equal(cursor) {
			return 0, nil
		}
	}

	streak := 0
	for _, date := range dates {
		if !date.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

// SyncUserStreak 把最新连胜回写到用户档案
func (s *StudySessionService) SyncUserStreak(userID uint, streak int) error {
	if err := s.db.Model(&db.User{}).Where("id = ?", userID).Update("streak", streak).Error; err != nil {
		return fmt.Errorf("sync user streak: %w", err)
	}
	return nil
}

func normalizeToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
