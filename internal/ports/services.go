package ports

import (
	"context"

	"github.com/famapp/famapp-api/internal/domain"
)

// UserService defines the service port for user operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type UserService interface {
	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUserByID returns a single user.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByEmail returns the user matching the email case-insensitively.
	// Returns domain.ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser creates a new user with a client-supplied id.
	// Returns domain.ErrConflict if a user with the same normalized email
	// (or the same id) already exists.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateUser replaces an existing user row by primary key.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, user *domain.User) error

	// DeleteUser removes a user by id.
	// Returns domain.ErrNotFound if the user does not exist.
	DeleteUser(ctx context.Context, id int64) error
}

// CalendarService defines the service port for calendar operations.
type CalendarService interface {
	// ListCalendars returns all calendars ordered by id.
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)

	// GetCalendarOfGroup returns the calendar belonging to a group.
	// Returns domain.ErrNotFound if the group has no calendar.
	GetCalendarOfGroup(ctx context.Context, groupID int64) (*domain.Calendar, error)

	// CreateCalendar creates a new calendar with a client-supplied id.
	// Returns domain.ErrConflict if the id is already taken.
	CreateCalendar(ctx context.Context, calendar *domain.Calendar) error

	// DeleteCalendar removes a calendar by id.
	// Returns domain.ErrNotFound if the calendar does not exist.
	DeleteCalendar(ctx context.Context, id int64) error
}

// DateService defines the service port for date (event) operations.
type DateService interface {
	// ListDates returns all dates ordered by id.
	ListDates(ctx context.Context) ([]domain.Date, error)

	// GetDate returns a single date.
	// Returns domain.ErrNotFound if the date does not exist.
	GetDate(ctx context.Context, id int64) (*domain.Date, error)

	// ListDatesByCalendar returns the dates of one calendar; empty is not an error.
	ListDatesByCalendar(ctx context.Context, calendarID int64) ([]domain.Date, error)

	// ListDatesByUser returns the dates of one user; empty is not an error.
	ListDatesByUser(ctx context.Context, userID int64) ([]domain.Date, error)

	// ListDatesByUserAndCalendar returns the dates matching both keys.
	// Returns domain.ErrNotFound when the user or the calendar has no dates
	// at all; an empty intersection between two non-empty sides is a valid
	// empty result.
	ListDatesByUserAndCalendar(ctx context.Context, userID, calendarID int64) ([]domain.Date, error)

	// CreateDate creates a new date with a client-supplied id.
	// Returns domain.ErrConflict if the id is already taken.
	CreateDate(ctx context.Context, date *domain.Date) error

	// UpdateDate replaces an existing date row by primary key.
	// Returns domain.ErrNotFound if the date does not exist.
	UpdateDate(ctx context.Context, date *domain.Date) error

	// DeleteDate removes a date by id.
	// Returns domain.ErrNotFound if the date does not exist.
	DeleteDate(ctx context.Context, id int64) error
}
