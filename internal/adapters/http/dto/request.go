package dto

import (
	"strings"
	"time"

	"github.com/famapp/famapp-api/internal/domain"
)

// Request DTOs mirror the entities field-for-field. The same shape is used
// for create and update; updates additionally require the body id to match
// the path id, which the handlers enforce.

// UserRequest represents the JSON body for creating or updating a user.
type UserRequest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UserRequest) Validate() error {
	fields := make(map[string]string)

	if r.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if strings.TrimSpace(r.FirstName) == "" {
		fields["first_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.LastName) == "" {
		fields["last_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToUser converts the request to a domain User entity.
func (r *UserRequest) ToUser() *domain.User {
	return &domain.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// CalendarRequest represents the JSON body for creating a calendar.
type CalendarRequest struct {
	ID      int64 `json:"id"`
	GroupID int64 `json:"group_id"`
}

// Validate checks that required fields are present.
func (r *CalendarRequest) Validate() error {
	fields := make(map[string]string)

	if r.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if r.GroupID <= 0 {
		fields["group_id"] = "must be positive"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCalendar converts the request to a domain Calendar entity.
func (r *CalendarRequest) ToCalendar() *domain.Calendar {
	return &domain.Calendar{ID: r.ID, GroupID: r.GroupID}
}

// DateRequest represents the JSON body for creating or updating a date.
// Timestamps are ISO-8601; a malformed timestamp fails JSON decoding and
// therefore maps to a 400.
type DateRequest struct {
	ID         int64     `json:"id"`
	CalendarID int64     `json:"calendar_id"`
	UserID     int64     `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// Validate checks that required fields are present.
func (r *DateRequest) Validate() error {
	fields := make(map[string]string)

	if r.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if r.CalendarID <= 0 {
		fields["calendar_id"] = "must be positive"
	}
	if r.UserID <= 0 {
		fields["user_id"] = "must be positive"
	}
	if r.StartDate.IsZero() {
		fields["start_date"] = domain.MsgRequired
	}
	if r.EndDate.IsZero() {
		fields["end_date"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDate converts the request to a domain Date entity.
func (r *DateRequest) ToDate() *domain.Date {
	return &domain.Date{
		ID:         r.ID,
		CalendarID: r.CalendarID,
		UserID:     r.UserID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}
