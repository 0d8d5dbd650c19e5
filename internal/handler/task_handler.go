package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
)

const dateFormat = "2006-01-02"

type taskPayload struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimated_time"`
	ScheduledTime string `json:"scheduled_time"`
	Date          string `json:"date"`
}

type statusPayload struct {
	Status string `json:"status"`
}

type generatePayload struct {
	Date string `json:"date"`
}

// ListTasks 返回指定日期的任务分组及当日统计
func (a *API) ListTasks(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = time.Now().Format(dateFormat)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"buckets": a.tasks.ListByDate(date),
		"record":  a.tasks.DailyRecord(date),
	})
}

// CreateTask 新建任务
func (a *API) CreateTask(c *gin.Context) {
	var payload taskPayload
	if !bindJSON(c, &payload, "无效的任务数据") {
		return
	}

	task, err := a.tasks.Create(service.TaskInput{
		Title:         payload.Title,
		Description:   payload.Description,
		Category:      service.TaskCategory(payload.Category),
		Priority:      service.TaskPriority(payload.Priority),
		EstimatedTime: payload.EstimatedTime,
		ScheduledTime: payload.ScheduledTime,
		Date:          payload.Date,
	})
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateTaskStatus 按状态机流转任务状态
func (a *API) UpdateTaskStatus(c *gin.Context) {
	var payload statusPayload
	if !bindJSON(c, &payload, "无效的状态数据") {
		return
	}

	task, err := a.tasks.UpdateStatus(c.Param("id"), service.TaskStatus(payload.Status))
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask 删除任务
func (a *API) DeleteTask(c *gin.Context) {
	if err := a.tasks.Delete(c.Param("id")); err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GenerateDailyRoutine 用固定模板重建指定日期的日程
func (a *API) GenerateDailyRoutine(c *gin.Context) {
	var payload generatePayload
	if !bindJSON(c, &payload, "无效的日期数据") {
		return
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = time.Now().Format(dateFormat)
	}

	tasks, err := a.tasks.GenerateDailyRoutine(date)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"date": date, "tasks": tasks})
}

// GetDailyRecord 返回指定日期的任务结果统计
func (a *API) GetDailyRecord(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = time.Now().Format(dateFormat)
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "record": a.tasks.DailyRecord(date)})
}

func handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, "任务不存在")
	case errors.Is(err, service.ErrInvalidTransition):
		// 非法流转来自过期的界面状态，记录后按冲突返回
		log.Printf("rejected task transition: %v", err)
		respondError(c, http.StatusConflict, "不允许的状态流转")
	case errors.Is(err, service.ErrInvalidTaskInput):
		respondError(c, http.StatusBadRequest, "任务字段校验失败")
	default:
		respondError(c, http.StatusInternalServerError, "任务操作失败")
	}
}
