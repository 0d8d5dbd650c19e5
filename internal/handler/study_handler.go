package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
)

type routinePayload struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Day       string `json:"day"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

type sessionPayload struct {
	Subject  string `json:"subject"`
	Duration int    `json:"duration"`
	Date     string `json:"date"`
}

// ListRoutines 返回指定周几的学习日程及当日总时长
func (a *API) ListRoutines(c *gin.Context) {
	day := strings.TrimSpace(c.Query("day"))
	if day == "" {
		day = time.Now().Weekday().String()
	}

	c.JSON(http.StatusOK, gin.H{
		"day":           day,
		"routines":      a.routines.ListByDay(day),
		"total_minutes": a.routines.TotalMinutesForDay(day),
	})
}

// SaveRoutine 创建或更新学习日程
func (a *API) SaveRoutine(c *gin.Context) {
	var payload routinePayload
	if !bindJSON(c, &payload, "无效的学习日程数据") {
		return
	}

	routine, err := a.routines.CreateOrUpdate(service.RoutineInput{
		ID:        payload.ID,
		Subject:   payload.Subject,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Day:       payload.Day,
		Icon:      payload.Icon,
		Color:     payload.Color,
	})
	if err != nil {
		handleRoutineError(c, err)
		return
	}

	status := http.StatusCreated
	if payload.ID != "" {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"routine": routine})
}

// DeleteRoutine 删除学习日程
func (a *API) DeleteRoutine(c *gin.Context) {
	if err := a.routines.Delete(c.Param("id")); err != nil {
		handleRoutineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// RecordSession 记录一次完成的学习会话
func (a *API) RecordSession(c *gin.Context) {
	var payload sessionPayload
	if !bindJSON(c, &payload, "无效的学习会话数据") {
		return
	}

	var date time.Time
	if trimmed := strings.TrimSpace(payload.Date); trimmed != "" {
		parsed, err := time.Parse(dateFormat, trimmed)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的会话日期")
			return
		}
		date = parsed
	}

	session, err := a.sessions.Record(service.SessionInput{
		UserID:   a.userID,
		Subject:  payload.Subject,
		Duration: payload.Duration,
		Date:     date,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSessionInput) {
			respondError(c, http.StatusBadRequest, "学习会话字段校验失败")
			return
		}
		respondError(c, http.StatusInternalServerError, "记录学习会话失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// WeeklyStudy 返回本周每天的学习分钟数
func (a *API) WeeklyStudy(c *gin.Context) {
	now := time.Now()
	// 周一作为一周的起点
	offset := (int(now.Weekday()) + 6) % 7
	weekStart := now.AddDate(0, 0, -offset)

	minutes, err := a.sessions.WeeklyMinutes(a.userID, weekStart)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取周学习数据失败")
		return
	}

	days := make([]gin.H, 0, 7)
	for i, total := range minutes {
		day := weekStart.AddDate(0, 0, i)
		days = append(days, gin.H{
			"day":     day.Weekday().String()[:3],
			"date":    day.Format(dateFormat),
			"minutes": total,
		})
	}

	c.JSON(http.StatusOK, gin.H{"week_start": weekStart.Format(dateFormat), "days": days})
}

func handleRoutineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoutineNotFound):
		respondError(c, http.StatusNotFound, "学习日程不存在")
	case errors.Is(err, service.ErrInvalidDuration):
		respondError(c, http.StatusBadRequest, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrInvalidRoutineInput):
		respondError(c, http.StatusBadRequest, "学习日程字段校验失败")
	default:
		respondError(c, http.StatusInternalServerError, "学习日程操作失败")
	}
}
