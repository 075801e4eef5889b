// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/famapp/famapp-api/internal/domain"
)

// MessageResponse carries the human-readable success message returned by
// create endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}

// ToUserListResponse converts a slice of domain User entities.
func ToUserListResponse(users []domain.User) []UserResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return items
}

// CalendarResponse represents a single calendar in HTTP responses.
type CalendarResponse struct {
	ID      int64 `json:"id"`
	GroupID int64 `json:"group_id"`
}

// ToCalendarResponse converts a domain Calendar entity to an HTTP response DTO.
func ToCalendarResponse(c *domain.Calendar) CalendarResponse {
	return CalendarResponse{ID: c.ID, GroupID: c.GroupID}
}

// ToCalendarListResponse converts a slice of domain Calendar entities.
func ToCalendarListResponse(calendars []domain.Calendar) []CalendarResponse {
	items := make([]CalendarResponse, len(calendars))
	for i := range calendars {
		items[i] = ToCalendarResponse(&calendars[i])
	}
	return items
}

// DateResponse represents a single date in HTTP responses. Timestamps are
// formatted as RFC 3339.
type DateResponse struct {
	ID         int64  `json:"id"`
	CalendarID int64  `json:"calendar_id"`
	UserID     int64  `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ToDateResponse converts a domain Date entity to an HTTP response DTO.
func ToDateResponse(d *domain.Date) DateResponse {
	return DateResponse{
		ID:         d.ID,
		CalendarID: d.CalendarID,
		UserID:     d.UserID,
		StartDate:  d.StartDate.Format(time.RFC3339),
		EndDate:    d.EndDate.Format(time.RFC3339),
	}
}

// ToDateListResponse converts a slice of domain Date entities.
func ToDateListResponse(dates []domain.Date) []DateResponse {
	items := make([]DateResponse, len(dates))
	for i := range dates {
		items[i] = ToDateResponse(&dates[i])
	}
	return items
}
