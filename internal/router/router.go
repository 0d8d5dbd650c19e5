package router

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dayboard/internal/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
// staticDir 非空且非开发模式时托管构建好的前端静态资源
func SetupRouter(api *handler.API, staticDir string, development bool) *gin.Engine {
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/tasks", api.ListTasks)
		apiGroup.POST("/tasks", api.CreateTask)
		apiGroup.POST("/tasks/generate", api.GenerateDailyRoutine)
		apiGroup.GET("/tasks/record", api.GetDailyRecord)
		apiGroup.PUT("/tasks/:id/status", api.UpdateTaskStatus)
		apiGroup.DELETE("/tasks/:id", api.DeleteTask)

		apiGroup.GET("/routines", api.ListRoutines)
		apiGroup.POST("/routines", api.SaveRoutine)
		apiGroup.DELETE("/routines/:id", api.DeleteRoutine)

		apiGroup.GET("/study/week", api.WeeklyStudy)
		apiGroup.POST("/study/sessions", api.RecordSession)

		apiGroup.GET("/expenses", api.ListExpenses)
		apiGroup.POST("/expenses", api.AddExpense)
		apiGroup.DELETE("/expenses/:id", api.RemoveExpense)

		apiGroup.GET("/snapshot", api.GetSnapshot)
		apiGroup.GET("/quote", api.GetQuote)
		apiGroup.GET("/motivation", api.GetMotivation)

		apiGroup.GET("/achievements", api.ListAchievements)
		apiGroup.POST("/achievements/evaluate", api.EvaluateAchievements)
	}

	// 开发模式由外部 dev server 托管前端，这里只提供 API
	if !development && strings.TrimSpace(staticDir) != "" {
		r.Static("/assets", filepath.Join(staticDir, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

		// 其余路径回退到单页应用入口
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}

	return r
}
