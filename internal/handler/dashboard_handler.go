package handler

import (
	"errors"
	"net/http"

	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSnapshot 返回跨集合的生产力快照
func (a *API) GetSnapshot(c *gin.Context) {
	snap, err := a.snapshots.Snapshot(a.userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取生产力快照失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}

// GetQuote 返回当前语录，refresh=true 时先向外部来源取新语录
// 刷新被更新的请求抢占时退回当前缓存值
func (a *API) GetQuote(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if _, err := a.quotes.Fetch(c.Request.Context()); err != nil && !errors.Is(err, service.ErrQuoteSuperseded) {
			respondError(c, http.StatusInternalServerError, "获取语录失败")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"quote": a.quotes.Current()})
}

// GetMotivation 根据当前快照返回鼓励文案
func (a *API) GetMotivation(c *gin.Context) {
	snap, err := a.snapshots.Snapshot(a.userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取生产力快照失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": service.MotivationalMessage(snap)})
}

// ListAchievements 返回已解锁成就
func (a *API) ListAchievements(c *gin.Context) {
	unlocked, err := a.achievements.List(a.userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取成就列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": unlocked})
}

// EvaluateAchievements 立即按当前快照评估成就
func (a *API) EvaluateAchievements(c *gin.Context) {
	snap, err := a.snapshots.Snapshot(a.userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取生产力快照失败")
		return
	}

	unlocked, err := a.achievements.Evaluate(a.userID, snap)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "评估成就失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unlocked": unlocked})
}
