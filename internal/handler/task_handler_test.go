package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayboard/internal/db"
	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Task{}, &db.Expense{}, &db.StudySession{}, &db.Achievement{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	user := db.User{Username: "tester", Password: "hash"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	api := NewAPI(gdb, user.ID, service.SnapshotConfig{
		MonthlyBudget:      2000,
		StudyTargetMinutes: 360,
		ProductivityScore:  87,
		ProductivityTrend:  5,
	})

	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func postJSON(t *testing.T, handlerFunc gin.HandlerFunc, target string, payload any, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	handlerFunc(c)
	return w
}

func newTestRecorder(handlerFunc gin.HandlerFunc, req *http.Request, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	handlerFunc(c)
	return w
}

func TestCreateTaskHandler(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	payload := map[string]any{
		"title":          "Review React Hooks",
		"category":       "Study",
		"priority":       "High",
		"scheduled_time": "10:30",
		"date":           "2024-01-15",
	}
	w := postJSON(t, api.CreateTask, "/api/tasks", payload, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var response struct {
		Task service.Task `json:"task"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Task.ID == "" || response.Task.Status != service.StatusTodo {
		t.Fatalf("unexpected task: %+v", response.Task)
	}
}

func TestCreateTaskHandlerRejectsEmptyTitle(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := postJSON(t, api.CreateTask, "/api/tasks", map[string]any{"title": "  "}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateTaskStatusHandler(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	created := postJSON(t, api.CreateTask, "/api/tasks", map[string]any{"title": "Build Todo App", "date": "2024-01-15"}, nil)
	var response struct {
		Task service.Task `json:"task"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	params := gin.Params{gin.Param{Key: "id", Value: response.Task.ID}}

	if w := postJSON(t, api.UpdateTaskStatus, "/api/tasks/status", map[string]any{"status": "progress"}, params); w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for todo -> progress, got %d", w.Code)
	}

	// todo 已经流转走，重复同样的流转应报冲突
	if w := postJSON(t, api.UpdateTaskStatus, "/api/tasks/status", map[string]any{"status": "progress"}, params); w.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for illegal transition, got %d", w.Code)
	}

	missing := gin.Params{gin.Param{Key: "id", Value: "missing"}}
	if w := postJSON(t, api.UpdateTaskStatus, "/api/tasks/status", map[string]any{"status": "progress"}, missing); w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown task, got %d", w.Code)
	}
}

func TestGenerateDailyRoutineHandler(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()

	w := postJSON(t, api.GenerateDailyRoutine, "/api/tasks/generate", map[string]any{"date": "2024-01-15"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var response struct {
		Tasks []service.Task `json:"tasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Tasks) != 10 {
		t.Fatalf("expected 10 generated tasks, got %d", len(response.Tasks))
	}
}
