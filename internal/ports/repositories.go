package ports

import (
	"context"

	"github.com/famapp/famapp-api/internal/domain"
)

// UserRepository defines the storage port for User rows.
// Implemented by the gorm storage adapter; called by the application layer.
//
// Mutating methods commit immediately. Update and Delete return
// domain.ErrNotFound when the target row does not exist; Create returns
// domain.ErrConflict when a primary-key or unique-index constraint is
// violated. Other errors indicate a storage failure.
type UserRepository interface {
	// List returns all users ordered by id ascending.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID returns a single user. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail returns the user whose email matches case-insensitively.
	// Returns domain.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByID reports whether a user row with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByEmail reports whether a user exists whose email equals the
	// given address after normalization (trim + case fold) on both sides.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GroupCount returns the number of groups the user belongs to,
	// counting both owned groups and membership rows.
	GroupCount(ctx context.Context, userID int64) (int64, error)

	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// CalendarRepository defines the storage port for Calendar rows.
// Same error contract as UserRepository.
type CalendarRepository interface {
	// List returns all calendars ordered by id ascending.
	List(ctx context.Context) ([]domain.Calendar, error)

	// GetByID returns a single calendar. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Calendar, error)

	// GetByGroup returns the calendar belonging to the given group.
	// Returns domain.ErrNotFound if the group has no calendar.
	GetByGroup(ctx context.Context, groupID int64) (*domain.Calendar, error)

	// Exists reports whether a calendar row with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, calendar *domain.Calendar) error
	Delete(ctx context.Context, id int64) error
}

// DateRepository defines the storage port for Date rows.
// Same error contract as UserRepository.
type DateRepository interface {
	// List returns all dates ordered by id ascending.
	List(ctx context.Context) ([]domain.Date, error)

	// ListByCalendar returns the dates whose calendar_id matches.
	// An empty result is not an error.
	ListByCalendar(ctx context.Context, calendarID int64) ([]domain.Date, error)

	// ListByUser returns the dates whose user_id matches.
	ListByUser(ctx context.Context, userID int64) ([]domain.Date, error)

	// ListByUserAndCalendar returns the dates matching both foreign keys.
	ListByUserAndCalendar(ctx context.Context, userID, calendarID int64) ([]domain.Date, error)

	// GetByID returns a single date. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Date, error)

	// Exists reports whether a date row with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsForUser reports whether any date row references the given user.
	ExistsForUser(ctx context.Context, userID int64) (bool, error)

	// ExistsForCalendar reports whether any date row references the given calendar.
	ExistsForCalendar(ctx context.Context, calendarID int64) (bool, error)

	Create(ctx context.Context, date *domain.Date) error
	Update(ctx context.Context, date *domain.Date) error
	Delete(ctx context.Context, id int64) error
}
