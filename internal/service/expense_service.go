package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrExpenseNotFound 在指定支出不存在时返回
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrInvalidExpenseInput 当支出字段校验失败时返回
	ErrInvalidExpenseInput = errors.New("invalid expense input")
)

// ExpenseCategory 是支出的固定分类
type ExpenseCategory string

const (
	ExpenseFood          ExpenseCategory = "Food"
	ExpenseTransport     ExpenseCategory = "Transport"
	ExpenseEntertainment ExpenseCategory = "Entertainment"
	ExpenseShopping      ExpenseCategory = "Shopping"
	ExpenseBills         ExpenseCategory = "Bills"
	ExpenseHealth        ExpenseCategory = "Health"
	ExpenseEducation     ExpenseCategory = "Education"
	ExpenseTools         ExpenseCategory = "Tools"
)

// Expense 是一条支出记录，纯账本结构，没有状态机
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
}

// ExpenseInput 定义记账时可配置字段，Date 为零值时取当前时间
type ExpenseInput struct {
	Description string
	Category    ExpenseCategory
	Amount      float64
	Date        time.Time
}

// ExpenseService 持有进程内的支出账本
// 列表展示约定为最新在前，新条目始终插到头部
type ExpenseService struct {
	mu       sync.Mutex
	expenses []Expense
	now      func() time.Time
}

// NewExpenseService 构造 ExpenseService
func NewExpenseService() *ExpenseService {
	return &ExpenseService{now: time.Now}
}

// Add 校验并追加一条支出
func (s *ExpenseService) Add(input ExpenseInput) (*Expense, error) {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidExpenseInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidExpenseInput)
	}
	if !validExpenseCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %s", ErrInvalidExpenseInput, input.Category)
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	expense := Expense{
		ID:          uuid.NewString(),
		Date:        date,
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]Expense{expense}, s.expenses...)

	return &expense, nil
}

// Remove 无条件移除一条支出
func (s *ExpenseService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return ErrExpenseNotFound
}

// List 返回全部支出，最新在前
func (s *ExpenseService) List() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Total 汇总全部支出金额，供预算对比使用
func (s *ExpenseService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, expense := range s.expenses {
		total += expense.Amount
	}
	return total
}

// CategoryTotals 按分类汇总支出金额
func (s *ExpenseService) CategoryTotals() map[ExpenseCategory]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[ExpenseCategory]float64)
	for _, expense := range s.expenses {
		totals[expense.Category] += expense.Amount
	}
	return totals
}

func validExpenseCategory(category ExpenseCategory) bool {
	switch category {
	case ExpenseFood, ExpenseTransport, ExpenseEntertainment, ExpenseShopping, ExpenseBills, ExpenseHealth, ExpenseEducation, ExpenseTools:
		return true
	}
	return false
}
