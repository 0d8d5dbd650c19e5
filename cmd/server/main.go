package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dayboard/internal/config"
	"github.com/dayboard/internal/db"
	"github.com/dayboard/internal/handler"
	"github.com/dayboard/internal/router"
	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	user, err := db.SeedDemoData()
	if err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	api := handler.NewAPI(db.DB, user.ID, service.SnapshotConfig{
		MonthlyBudget:      cfg.MonthlyBudget,
		StudyTargetMinutes: cfg.StudyTargetMinutes,
		ProductivityScore:  cfg.ProductivityScore,
		ProductivityTrend:  cfg.ProductivityTrend,
	})

	scheduler := service.NewSchedulerService(time.Local)
	registerJobs(scheduler, api, cfg)
	scheduler.Start()
	defer scheduler.Stop()

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.StaticDir, cfg.Development())
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func registerJobs(scheduler *service.SchedulerService, api *handler.API, cfg config.AppConfig) {
	// 定期刷新激励语录，外部来源不可用时服务内部会自动兜底
	refreshEvery := time.Duration(cfg.QuoteRefreshMinutes) * time.Minute
	if _, err := scheduler.ScheduleEvery(refreshEvery, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if _, err := api.Quotes().Fetch(ctx); err != nil && !errors.Is(err, service.ErrQuoteSuperseded) {
			log.Printf("quote refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule quote refresh: %v", err)
	}

	// 每日成就巡检：按最新快照解锁成就并回写学习连胜
	if _, err := scheduler.ScheduleDaily(cfg.AchievementSweepTime, func() {
		snap, err := api.Snapshots().Snapshot(api.UserID())
		if err != nil {
			log.Printf("achievement sweep snapshot failed: %v", err)
			return
		}
		if _, err := api.Achievements().Evaluate(api.UserID(), snap); err != nil {
			log.Printf("achievement sweep failed: %v", err)
		}
		if err := api.Sessions().SyncUserStreak(api.UserID(), snap.Study.Streak); err != nil {
			log.Printf("streak sync failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule achievement sweep: %v", err)
	}
}
