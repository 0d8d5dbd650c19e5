package service

import "time"

// SnapshotConfig 汇总快照计算所需的静态参数
// ProductivityScore/Trend 为外部给定值，当前范围内不从数据派生
type SnapshotConfig struct {
	MonthlyBudget      float64
	StudyTargetMinutes int
	ProductivityScore  int
	ProductivityTrend  int
}

// TaskSummary 是任务侧的只读汇总
type TaskSummary struct {
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completion_rate"`
}

// StudySummary 是学习侧的只读汇总
type StudySummary struct {
	MinutesToday  int `json:"minutes_today"`
	TargetMinutes int `json:"target_minutes"`
	Streak        int `json:"streak"`
}

// ExpenseSummary 是支出侧的只读汇总
type ExpenseSummary struct {
	Spent       float64 `json:"spent"`
	Budget      float64 `json:"budget"`
	Utilization float64 `json:"utilization"`
}

// ProductivitySummary 透传配置中的生产力分值
type ProductivitySummary struct {
	Score int `json:"score"`
	Trend int `json:"trend"`
}

// Snapshot 是跨集合的只读快照，每次请求现算，从不缓存
type Snapshot struct {
	Tasks        TaskSummary         `json:"tasks"`
	Study        StudySummary        `json:"study"`
	Expenses     ExpenseSummary      `json:"expenses"`
	Productivity ProductivitySummary `json:"productivity"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// SnapshotService 在各集合之上做纯读聚合，不做任何变更
type SnapshotService struct {
	tasks    *TaskService
	expenses *ExpenseService
	sessions *StudySessionService
	cfg      SnapshotConfig
}

// NewSnapshotService 构造 SnapshotService
func NewSnapshotService(tasks *TaskService, expenses *ExpenseService, sessions *StudySessionService, cfg SnapshotConfig) *SnapshotService {
	return &SnapshotService{tasks: tasks, expenses: expenses, sessions: sessions, cfg: cfg}
}

// Snapshot 汇总当前各集合的状态
func (s *SnapshotService) Snapshot(userID uint) (*Snapshot, error) {
	completed, total := s.tasks.Counts()

	// 除零时完成率按 0 处理
	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	now := time.Now()
	minutesToday, err := s.sessions.MinutesOn(userID, now)
	if err != nil {
		return nil, err
	}
	streak, err := s.sessions.Streak(userID, now)
	if err != nil {
		return nil, err
	}

	spent := s.expenses.Total()
	utilization := 0.0
	if s.cfg.MonthlyBudget > 0 {
		utilization = spent / s.cfg.MonthlyBudget
	}

	return &Snapshot{
		Tasks: TaskSummary{
			Completed:      completed,
			Total:          total,
			CompletionRate: rate,
		},
		Study: StudySummary{
			MinutesToday:  minutesToday,
			TargetMinutes: s.cfg.StudyTargetMinutes,
			Streak:        streak,
		},
		Expenses: ExpenseSummary{
			Spent:       spent,
			Budget:      s.cfg.MonthlyBudget,
			Utilization: utilization,
		},
		Productivity: ProductivitySummary{
			Score: s.cfg.ProductivityScore,
			Trend: s.cfg.ProductivityTrend,
		},
		GeneratedAt: now,
	}, nil
}
