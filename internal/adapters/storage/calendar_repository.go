package storage

import (
	"context"
	"log/slog"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that CalendarRepository implements ports.CalendarRepository.
var _ ports.CalendarRepository = (*CalendarRepository)(nil)

// CalendarRepository is the gorm-backed implementation of ports.CalendarRepository.
type CalendarRepository struct {
	store  *Storage
	logger *slog.Logger
}

// NewCalendarRepository creates a CalendarRepository on the given storage handle.
func NewCalendarRepository(store *Storage, logger *slog.Logger) *CalendarRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CalendarRepository{store: store, logger: logger}
}

// List returns all calendars ordered by id ascending.
func (r *CalendarRepository) List(ctx context.Context) ([]domain.Calendar, error) {
	var models []calendarModel
	if err := r.store.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, translateError("listing calendars", err)
	}

	calendars := make([]domain.Calendar, len(models))
	for i := range models {
		calendars[i] = toDomainCalendar(&models[i])
	}
	return calendars, nil
}

// GetByID returns a single calendar or domain.ErrNotFound.
func (r *CalendarRepository) GetByID(ctx context.Context, id int64) (*domain.Calendar, error) {
	var m calendarModel
	if err := r.store.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError("fetching calendar", err)
	}
	c := toDomainCalendar(&m)
	return &c, nil
}

// GetByGroup returns the calendar belonging to the given group, or
// domain.ErrNotFound when the group has none. A group has at most one
// calendar.
func (r *CalendarRepository) GetByGroup(ctx context.Context, groupID int64) (*domain.Calendar, error) {
	var m calendarModel
	if err := r.store.db.WithContext(ctx).First(&m, "group_id = ?", groupID).Error; err != nil {
		return nil, translateError("fetching calendar of group", err)
	}
	c := toDomainCalendar(&m)
	return &c, nil
}

// Exists reports whether a calendar row with the given id exists.
func (r *CalendarRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.store.db.WithContext(ctx).
		Model(&calendarModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, translateError("checking calendar existence", err)
	}
	return count > 0, nil
}

// Create inserts a new calendar row. Returns domain.ErrConflict on a
// duplicated id.
func (r *CalendarRepository) Create(ctx context.Context, calendar *domain.Calendar) error {
	m := toCalendarModel(calendar)
	if err := r.store.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.ErrorContext(ctx, "failed to create calendar",
			slog.Int64("id", calendar.ID),
			slog.Any("error", err),
		)
		return translateError("creating calendar", err)
	}
	return nil
}

// Delete removes a calendar row by id. Dates referencing it are the
// caller's responsibility; no cascade is configured.
func (r *CalendarRepository) Delete(ctx context.Context, id int64) error {
	res := r.store.db.WithContext(ctx).Delete(&calendarModel{}, "id = ?", id)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "failed to delete calendar",
			slog.Int64("id", id),
			slog.Any("error", res.Error),
		)
		return translateError("deleting calendar", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
