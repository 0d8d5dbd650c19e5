package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dayboard/internal/service"
	"github.com/gin-gonic/gin"
)

type expensePayload struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// ListExpenses 返回全部支出（最新在前）及分类汇总
func (a *API) ListExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"expenses":    a.expenses.List(),
		"total":       a.expenses.Total(),
		"by_category": a.expenses.CategoryTotals(),
	})
}

// AddExpense 记一笔支出
func (a *API) AddExpense(c *gin.Context) {
	var payload expensePayload
	if !bindJSON(c, &payload, "无效的支出数据") {
		return
	}

	var date time.Time
	if trimmed := strings.TrimSpace(payload.Date); trimmed != "" {
		parsed, err := time.Parse(dateFormat, trimmed)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的支出日期")
			return
		}
		date = parsed
	}

	expense, err := a.expenses.Add(service.ExpenseInput{
		Description: payload.Description,
		Category:    service.ExpenseCategory(payload.Category),
		Amount:      payload.Amount,
		Date:        date,
	})
	if err != nil {
		handleExpenseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// RemoveExpense 删除一笔支出
func (a *API) RemoveExpense(c *gin.Context) {
	if err := a.expenses.Remove(c.Param("id")); err != nil {
		handleExpenseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func handleExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		respondError(c, http.StatusNotFound, "支出记录不存在")
	case errors.Is(err, service.ErrInvalidExpenseInput):
		respondError(c, http.StatusBadRequest, "支出字段校验失败")
	default:
		respondError(c, http.StatusInternalServerError, "支出操作失败")
	}
}
