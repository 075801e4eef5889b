package dto_test

import (
	"testing"
	"time"

	"github.com/famapp/famapp-api/internal/adapters/http/dto"
	"github.com/famapp/famapp-api/internal/domain"
)

func TestToUserResponse(t *testing.T) {
	t.Parallel()

	u := &domain.User{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "s3cret",
	}
	resp := dto.ToUserResponse(u)

	if resp.ID != 1 || resp.FirstName != "Anna" || resp.Email != "anna.berg@example.com" {
		t.Errorf("ToUserResponse() = %+v, fields not mapped", resp)
	}
}

func TestToUserListResponse_Empty(t *testing.T) {
	t.Parallel()

	resp := dto.ToUserListResponse(nil)
	if resp == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(resp) != 0 {
		t.Errorf("len = %d, want 0", len(resp))
	}
}

func TestToCalendarListResponse(t *testing.T) {
	t.Parallel()

	calendars := []domain.Calendar{{ID: 1, GroupID: 2}, {ID: 3, GroupID: 4}}
	resp := dto.ToCalendarListResponse(calendars)

	if len(resp) != 2 {
		t.Fatalf("len = %d, want 2", len(resp))
	}
	if resp[1].ID != 3 || resp[1].GroupID != 4 {
		t.Errorf("resp[1] = %+v, want ID=3 GroupID=4", resp[1])
	}
}

func TestToDateResponse_FormatsRFC3339(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	d := &domain.Date{
		ID:         1,
		CalendarID: 2,
		UserID:     3,
		StartDate:  start,
		EndDate:    start.Add(2 * time.Hour),
	}
	resp := dto.ToDateResponse(d)

	if resp.StartDate != "2026-03-14T09:30:00Z" {
		t.Errorf("StartDate = %q, want %q", resp.StartDate, "2026-03-14T09:30:00Z")
	}
	if resp.EndDate != "2026-03-14T11:30:00Z" {
		t.Errorf("EndDate = %q, want %q", resp.EndDate, "2026-03-14T11:30:00Z")
	}
}
