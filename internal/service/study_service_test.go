package service

import (
	"errors"
	"testing"
)

func TestRoutineDurationDerived(t *testing.T) {
	svc := NewStudyRoutineService()

	routine, err := svc.CreateOrUpdate(RoutineInput{
		Subject:   "JavaScript",
		StartTime: "09:00",
		EndTime:   "10:30",
		Day:       "Monday",
	})
	if err != nil {
		t.Fatalf("CreateOrUpdate returned error: %v", err)
	}
	if routine.ID == "" {
		t.Fatal("expected routine to have ID")
	}
	if routine.Duration != 90 {
		t.Fatalf("expected duration 90, got %d", routine.Duration)
	}
}

func TestRoutineRejectsNonPositiveDuration(t *testing.T) {
	svc := NewStudyRoutineService()

	// 结束早于开始
	if _, err := svc.CreateOrUpdate(RoutineInput{Subject: "X", StartTime: "09:00", EndTime: "08:00", Day: "Monday"}); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	// 零时长同样拒绝
	if _, err := svc.CreateOrUpdate(RoutineInput{Subject: "X", StartTime: "09:00", EndTime: "09:00", Day: "Monday"}); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestRoutineInputValidation(t *testing.T) {
	svc := NewStudyRoutineService()

	if _, err := svc.CreateOrUpdate(RoutineInput{Subject: " ", StartTime: "09:00", EndTime: "10:00", Day: "Monday"}); !errors.Is(err, ErrInvalidRoutineInput) {
		t.Fatalf("expected ErrInvalidRoutineInput for empty subject, got %v", err)
	}
	if _, err := svc.CreateOrUpdate(RoutineInput{Subject: "X", StartTime: "09:00", EndTime: "10:00", Day: "Funday"}); !errors.Is(err, ErrInvalidRoutineInput) {
		t.Fatalf("expected ErrInvalidRoutineInput for unknown day, got %v", err)
	}
	if _, err := svc.CreateOrUpdate(RoutineInput{Subject: "X", StartTime: "9am", EndTime: "10:00", Day: "Monday"}); !errors.Is(err, ErrInvalidRoutineInput) {
		t.Fatalf("expected ErrInvalidRoutineInput for malformed time, got %v", err)
	}
}

func TestRoutineUpdateReplaces(t *testing.T) {
	svc := NewStudyRoutineService()

	created, err := svc.CreateOrUpdate(RoutineInput{Subject: "React", StartTime: "14:00", EndTime: "15:00", Day: "Tuesday"})
	if err != nil {
		t.Fatalf("CreateOrUpdate returned error: %v", err)
	}

	updated, err := svc.CreateOrUpdate(RoutineInput{
		ID:        created.ID,
		Subject:   "React Patterns",
		StartTime: "14:00",
		EndTime:   "16:00",
		Day:       "Tuesday",
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Duration != 120 {
		t.Fatalf("expected recomputed duration 120, got %d", updated.Duration)
	}

	routines := svc.ListByDay("Tuesday")
	if len(routines) != 1 {
		t.Fatalf("expected 1 routine after update, got %d", len(routines))
	}
	if routines[0].Subject != "React Patterns" {
		t.Fatalf("expected subject replaced, got %s", routines[0].Subject)
	}

	if _, err := svc.CreateOrUpdate(RoutineInput{ID: "missing", Subject: "X", StartTime: "09:00", EndTime: "10:00", Day: "Monday"}); !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}
}

func TestRoutineListAndTotals(t *testing.T) {
	svc := NewStudyRoutineService()

	entries := []RoutineInput{
		{Subject: "JavaScript", StartTime: "09:00", EndTime: "10:30", Day: "Monday"},
		{Subject: "Database Design", StartTime: "14:00", EndTime: "15:00", Day: "Monday"},
		{Subject: "React", StartTime: "09:00", EndTime: "11:00", Day: "Wednesday"},
	}
	for _, entry := range entries {
		if _, err := svc.CreateOrUpdate(entry); err != nil {
			t.Fatalf("CreateOrUpdate returned error: %v", err)
		}
	}

	if got := len(svc.ListByDay("Monday")); got != 2 {
		t.Fatalf("expected 2 routines on Monday, got %d", got)
	}
	if got := svc.TotalMinutesForDay("Monday"); got != 150 {
		t.Fatalf("expected 150 minutes on Monday, got %d", got)
	}
	if got := svc.TotalMinutesForDay("Sunday"); got != 0 {
		t.Fatalf("expected 0 minutes on Sunday, got %d", got)
	}

	routine := svc.ListByDay("Wednesday")[0]
	if err := svc.Delete(routine.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(routine.ID); !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}
}

func TestMinutesOfDay(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"06:30": 390,
		"23:59": 1439,
	}
	for clock, expected := range valid {
		got, err := minutesOfDay(clock)
		if err != nil {
			t.Fatalf("minutesOfDay(%q) returned error: %v", clock, err)
		}
		if got != expected {
			t.Fatalf("minutesOfDay(%q) = %d, expected %d", clock, got, expected)
		}
	}

	for _, clock := range []string{"", "24:00", "12:60", "noon", "1200"} {
		if _, err := minutesOfDay(clock); err == nil {
			t.Fatalf("expected error for %q", clock)
		}
	}
}
