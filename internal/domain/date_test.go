package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/famapp/famapp-api/internal/domain"
)

func TestCalendar_Validate(t *testing.T) {
	t.Parallel()

	c := domain.Calendar{ID: 1, GroupID: 2}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	c = domain.Calendar{ID: 1}
	err := c.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *domain.ValidationError", err)
	}
	if verr.Fields["group_id"] != "must be positive" {
		t.Errorf("Fields[group_id] = %q, want %q", verr.Fields["group_id"], "must be positive")
	}
}

func TestDate_Validate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	valid := domain.Date{
		ID:         1,
		CalendarID: 1,
		UserID:     1,
		StartDate:  start,
		EndDate:    start.Add(time.Hour),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	d := domain.Date{ID: 1}
	err := d.Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *domain.ValidationError", err)
	}
	for _, field := range []string{"calendar_id", "user_id", "start_date", "end_date"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Fields missing %q, got %v", field, verr.Fields)
		}
	}
}
