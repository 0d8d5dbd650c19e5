package service

import (
	"errors"
	"testing"
)

func TestExpenseNewestFirst(t *testing.T) {
	svc := NewExpenseService()

	if _, err := svc.Add(ExpenseInput{Description: "Lunch", Category: ExpenseFood, Amount: 10}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(ExpenseInput{Description: "Course", Category: ExpenseEducation, Amount: 20}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	expenses := svc.List()
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].Amount != 20 || expenses[1].Amount != 10 {
		t.Fatalf("expected newest-first order, got [%v, %v]", expenses[0].Amount, expenses[1].Amount)
	}
}

func TestExpenseValidation(t *testing.T) {
	svc := NewExpenseService()

	if _, err := svc.Add(ExpenseInput{Description: " ", Category: ExpenseFood, Amount: 5}); !errors.Is(err, ErrInvalidExpenseInput) {
		t.Fatalf("expected ErrInvalidExpenseInput for empty description, got %v", err)
	}
	if _, err := svc.Add(ExpenseInput{Description: "X", Category: ExpenseFood, Amount: 0}); !errors.Is(err, ErrInvalidExpenseInput) {
		t.Fatalf("expected ErrInvalidExpenseInput for zero amount, got %v", err)
	}
	if _, err := svc.Add(ExpenseInput{Description: "X", Category: "Misc", Amount: 5}); !errors.Is(err, ErrInvalidExpenseInput) {
		t.Fatalf("expected ErrInvalidExpenseInput for unknown category, got %v", err)
	}
}

func TestExpenseDefaultsDateToNow(t *testing.T) {
	svc := NewExpenseService()

	expense, err := svc.Add(ExpenseInput{Description: "Coffee", Category: ExpenseFood, Amount: 4.5})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if expense.Date.IsZero() {
		t.Fatal("expected date defaulted to now")
	}
}

func TestExpenseRemoveAndTotals(t *testing.T) {
	svc := NewExpenseService()

	first, err := svc.Add(ExpenseInput{Description: "Coffee", Category: ExpenseFood, Amount: 15.5})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(ExpenseInput{Description: "Bus", Category: ExpenseTransport, Amount: 8.5}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(ExpenseInput{Description: "Snacks", Category: ExpenseFood, Amount: 4}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if got := svc.Total(); got != 28 {
		t.Fatalf("expected total 28, got %v", got)
	}

	byCategory := svc.CategoryTotals()
	if byCategory[ExpenseFood] != 19.5 {
		t.Fatalf("expected Food total 19.5, got %v", byCategory[ExpenseFood])
	}

	if err := svc.Remove(first.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := svc.Remove(first.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("expected 2 expenses after removal, got %d", got)
	}
}

func TestExpenseHealthCategoryAccepted(t *testing.T) {
	svc := NewExpenseService()

	expense, err := svc.Add(ExpenseInput{Description: "Gym membership", Category: ExpenseHealth, Amount: 25})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if expense.Category != ExpenseHealth {
		t.Fatalf("expected category Health, got %s", expense.Category)
	}
}
