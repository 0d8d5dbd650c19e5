package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTaskNotFound 在指定任务不存在时返回
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidTransition 当状态流转不在允许表内时返回
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidTaskInput 当创建任务的字段校验失败时返回
	ErrInvalidTaskInput = errors.New("invalid task input")
)

// TaskStatus 是任务生命周期状态
type TaskStatus string

const (
	StatusTodo     TaskStatus = "todo"
	StatusProgress TaskStatus = "progress"
	StatusDone     TaskStatus = "done"
	StatusSkipped  TaskStatus = "skipped"
)

// TaskCategory 是日程任务的固定分类
type TaskCategory string

const (
	CategoryStudy         TaskCategory = "Study"
	CategoryExercise      TaskCategory = "Exercise"
	CategoryMeals         TaskCategory = "Meals"
	CategoryWork          TaskCategory = "Work"
	CategoryPersonal      TaskCategory = "Personal"
	CategoryEntertainment TaskCategory = "Entertainment"
)

// TaskPriority 是任务优先级
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Task 是一条日程任务
// Date 为 ISO 日期（2006-01-02），任务按该键分区
// ScheduledTime 为 HH:MM，仅用于同日内排序
// CompletedAt 为展示用字符串，仅在 done 状态下有值
type Task struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      TaskCategory `json:"category"`
	Priority      TaskPriority `json:"priority"`
	EstimatedTime string       `json:"estimated_time"`
	ScheduledTime string       `json:"scheduled_time"`
	Status        TaskStatus   `json:"status"`
	CompletedAt   string       `json:"completed_at,omitempty"`
	Date          string       `json:"date"`
}

// TaskInput 定义创建任务时可配置字段
type TaskInput struct {
	Title         string
	Description   string
	Category      TaskCategory
	Priority      TaskPriority
	EstimatedTime string
	ScheduledTime string
	Date          string
}

// TaskBuckets 按状态分组的同日任务，每组按 ScheduledTime 升序
type TaskBuckets struct {
	Todo     []Task `json:"todo"`
	Progress []Task `json:"progress"`
	Done     []Task `json:"done"`
	Skipped  []Task `json:"skipped"`
}

// DailyRecord 是某一日期分区的任务结果计数
// Pending = todo + progress；每次变更后实时重算，绝不缓存
type DailyRecord struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Skipped   int `json:"skipped"`
	Total     int `json:"total"`
}

// taskTransitions 定义允许的状态流转表
// done 与 skipped 之间没有直达路径，必须经过 todo
var taskTransitions = map[TaskStatus]map[TaskStatus]bool{
	StatusTodo:     {StatusProgress: true, StatusSkipped: true},
	StatusProgress: {StatusDone: true, StatusTodo: true},
	StatusDone:     {StatusTodo: true},
	StatusSkipped:  {StatusTodo: true},
}

// TaskService 持有进程内的任务集合并实现生命周期引擎
// 所有变更都在互斥锁内完成，任一时刻只有一个写者
type TaskService struct {
	mu    sync.Mutex
	tasks []Task
	now   func() time.Time
}

// NewTaskService 构造 TaskService
func NewTaskService() *TaskService {
	return &TaskService{now: time.Now}
}

// Create 校验并新建任务，初始状态为 todo
func (s *TaskService) Create(input TaskInput) (*Task, error) {
	normalized, err := normalizeTaskInput(input, s.now)
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:            uuid.NewString(),
		Title:         normalized.Title,
		Description:   normalized.Description,
		Category:      normalized.Category,
		Priority:      normalized.Priority,
		EstimatedTime: normalized.EstimatedTime,
		ScheduledTime: normalized.ScheduledTime,
		Status:        StatusTodo,
		Date:          normalized.Date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)

	return &task, nil
}

// UpdateStatus 按流转表应用状态变更
// 进入 done 时写入完成时间，离开 done 时清除
func (s *TaskService) UpdateStatus(id string, next TaskStatus) (*Task, error) {
	if !validTaskStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %s", ErrInvalidTransition, next)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}

	current := s.tasks[idx].Status
	if !taskTransitions[current][next] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	s.tasks[idx].Status = next
	if next == StatusDone {
		s.tasks[idx].CompletedAt = "Completed at " + s.now().Format("15:04")
	} else {
		s.tasks[idx].CompletedAt = ""
	}

	task := s.tasks[idx]
	return &task, nil
}

// Delete 无条件移除任务
func (s *TaskService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return nil
}

// ListByDate 返回指定日期分区的任务，按状态分为四组
// 每组按 ScheduledTime 升序做稳定排序，时间相同保持插入顺序
func (s *TaskService) ListByDate(date string) TaskBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets := TaskBuckets{
		Todo:     []Task{},
		Progress: []Task{},
		Done:     []Task{},
		Skipped:  []Task{},
	}

	for _, task := range s.tasks {
		if task.Date != date {
			continue
		}
		switch task.Status {
		case StatusTodo:
			buckets.Todo = append(buckets.Todo, task)
		case StatusProgress:
			buckets.Progress = append(buckets.Progress, task)
		case StatusDone:
			buckets.Done = append(buckets.Done, task)
		case StatusSkipped:
			buckets.Skipped = append(buckets.Skipped, task)
		}
	}

	sortByScheduledTime(buckets.Todo)
	sortByScheduledTime(buckets.Progress)
	sortByScheduledTime(buckets.Done)
	sortByScheduledTime(buckets.Skipped)

	return buckets
}

// GenerateDailyRoutine 用固定模板替换指定日期的全部任务
// 这是一个确定性的种子操作：模板为静态数据，不做任何推荐计算
func (s *TaskService) GenerateDailyRoutine(date string) ([]Task, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidTaskInput)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrInvalidTaskInput, date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.Date != date {
			kept = append(kept, task)
		}
	}
	s.tasks = kept

	generated := make([]Task, 0, len(dailyRoutineTemplate))
	for _, entry := range dailyRoutineTemplate {
		task := Task{
			ID:            uuid.NewString(),
			Title:         entry.Title,
			Description:   entry.Description,
			Category:      entry.Category,
			Priority:      entry.Priority,
			EstimatedTime: entry.EstimatedTime,
			ScheduledTime: entry.ScheduledTime,
			Status:        StatusTodo,
			Date:          date,
		}
		s.tasks = append(s.tasks, task)
		generated = append(generated, task)
	}

	return generated, nil
}

// DailyRecord 实时统计指定日期分区的任务结果
func (s *TaskService) DailyRecord(date string) DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record DailyRecord
	for _, task := range s.tasks {
		if task.Date != date {
			continue
		}
		switch task.Status {
		case StatusDone:
			record.Completed++
		case StatusSkipped:
			record.Skipped++
		default:
			record.Pending++
		}
		record.Total++
	}
	return record
}

// Counts 返回全部任务中已完成与总数，供快照聚合使用
func (s *TaskService) Counts() (completed, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.Status == StatusDone {
			completed++
		}
	}
	return completed, len(s.tasks)
}

func (s *TaskService) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func sortByScheduledTime(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		// HH:MM 补零后的字典序与时间序一致
		return tasks[i].ScheduledTime < tasks[j].ScheduledTime
	})
}

func normalizeTaskInput(input TaskInput, now func() time.Time) (TaskInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, fmt.Errorf("%w: title is required", ErrInvalidTaskInput)
	}

	input.Description = strings.TrimSpace(input.Description)
	input.EstimatedTime = strings.TrimSpace(input.EstimatedTime)

	if input.Category == "" {
		input.Category = CategoryPersonal
	}
	if !validTaskCategory(input.Category) {
		return input, fmt.Errorf("%w: unknown category %s", ErrInvalidTaskInput, input.Category)
	}

	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !validTaskPriority(input.Priority) {
		return input, fmt.Errorf("%w: unknown priority %s", ErrInvalidTaskInput, input.Priority)
	}

	input.ScheduledTime = strings.TrimSpace(input.ScheduledTime)
	if input.ScheduledTime != "" {
		minutes, err := minutesOfDay(input.ScheduledTime)
		if err != nil {
			return input, fmt.Errorf("%w: %v", ErrInvalidTaskInput, err)
		}
		// 统一补零存储，保证字典序排序与时间序一致
		input.ScheduledTime = fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}

	input.Date = strings.TrimSpace(input.Date)
	if input.Date == "" {
		input.Date = now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return input, fmt.Errorf("%w: invalid date %s", ErrInvalidTaskInput, input.Date)
	}

	return input, nil
}

func validTaskStatus(status TaskStatus) bool {
	switch status {
	case StatusTodo, StatusProgress, StatusDone, StatusSkipped:
		return true
	}
	return false
}

func validTaskCategory(category TaskCategory) bool {
	switch category {
	case CategoryStudy, CategoryExercise, CategoryMeals, CategoryWork, CategoryPersonal, CategoryEntertainment:
		return true
	}
	return false
}

func validTaskPriority(priority TaskPriority) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
