package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrRoutineNotFound 在指定学习日程不存在时返回
	ErrRoutineNotFound = errors.New("study routine not found")
	// ErrInvalidDuration 当结束时间不晚于开始时间时返回
	ErrInvalidDuration = errors.New("study routine duration must be positive")
	// ErrInvalidRoutineInput 当学习日程字段校验失败时返回
	ErrInvalidRoutineInput = errors.New("invalid study routine input")
)

// weekdayNames 为合法的周几取值，顺序即一周的展示顺序
var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// StudyRoutine 是每周固定的学习时间块
// Duration 为派生字段（EndTime − StartTime，分钟），每次写入时重算
// Icon/Color 仅用于展示
type StudyRoutine struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration"`
	Day       string `json:"day"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// RoutineInput 定义创建/更新学习日程时可配置字段
// ID 为空表示创建，否则替换对应条目
type RoutineInput struct {
	ID        string
	Subject   string
	StartTime string
	EndTime   string
	Day       string
	Icon      string
	Color     string
}

// StudyRoutineService 持有进程内的周学习日程集合
type StudyRoutineService struct {
	mu       sync.Mutex
	routines []StudyRoutine
}

// NewStudyRoutineService 构造 StudyRoutineService
func NewStudyRoutineService() *StudyRoutineService {
	return &StudyRoutineService{}
}

// CreateOrUpdate 写入学习日程并重算时长
// 起止时间按当日分钟数做减法，不支持跨午夜时间段
func (s *StudyRoutineService) CreateOrUpdate(input RoutineInput) (*StudyRoutine, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	if input.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidRoutineInput)
	}

	input.Day = strings.TrimSpace(input.Day)
	if !validWeekday(input.Day) {
		return nil, fmt.Errorf("%w: unknown day %s", ErrInvalidRoutineInput, input.Day)
	}

	start, err := minutesOfDay(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoutineInput, err)
	}
	end, err := minutesOfDay(input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoutineInput, err)
	}

	duration := end - start
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidDuration, input.StartTime, input.EndTime)
	}

	routine := StudyRoutine{
		ID:        input.ID,
		Subject:   input.Subject,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Duration:  duration,
		Day:       input.Day,
		Icon:      strings.TrimSpace(input.Icon),
		Color:     strings.TrimSpace(input.Color),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if routine.ID == "" {
		routine.ID = uuid.NewString()
		s.routines = append(s.routines, routine)
		return &routine, nil
	}

	for i := range s.routines {
		if s.routines[i].ID == routine.ID {
			s.routines[i] = routine
			return &routine, nil
		}
	}
	return nil, ErrRoutineNotFound
}

// Delete 无条件移除学习日程
func (s *StudyRoutineService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routines {
		if s.routines[i].ID == id {
			s.routines = append(s.routines[:i], s.routines[i+1:]...)
			return nil
		}
	}
	return ErrRoutineNotFound
}

// ListByDay 返回指定周几的全部学习日程
func (s *StudyRoutineService) ListByDay(day string) []StudyRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []StudyRoutine{}
	for _, routine := range s.routines {
		if routine.Day == day {
			matched = append(matched, routine)
		}
	}
	return matched
}

// TotalMinutesForDay 汇总指定周几的学习时长
func (s *StudyRoutineService) TotalMinutesForDay(day string) int {
	total := 0
	for _, routine := range s.ListByDay(day) {
		total += routine.Duration
	}
	return total
}

// minutesOfDay 把 HH:MM 解析为当日分钟数
func minutesOfDay(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return hour*60 + minute, nil
}

func validWeekday(day string) bool {
	for _, name := range weekdayNames {
		if name == day {
			return true
		}
	}
	return false
}
