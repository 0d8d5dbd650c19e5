package service

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService 封装 cron 定时任务
type SchedulerService struct {
	cron *cron.Cron
}

// NewSchedulerService 构造 SchedulerService
func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// ScheduleDaily 注册每天 HH:MM 执行的任务
func (s *SchedulerService) ScheduleDaily(clock string, job func()) (cron.EntryID, error) {
	spec, err := dailyCronSpec(clock)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

// ScheduleEvery 注册固定间隔执行的任务
func (s *SchedulerService) ScheduleEvery(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval < time.Minute {
		return 0, fmt.Errorf("interval must be at least one minute")
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %s", interval), job)
}

// Start 启动调度器
func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop 停止调度器并等待在途任务结束
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func dailyCronSpec(clock string) (string, error) {
	minutes, err := minutesOfDay(clock)
	if err != nil {
		return "", err
	}
	// cron 格式：minute hour dom month dow
	return fmt.Sprintf("%d %d * * *", minutes%60, minutes/60), nil
}
