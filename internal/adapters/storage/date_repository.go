package storage

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that DateRepository implements ports.DateRepository.
var _ ports.DateRepository = (*DateRepository)(nil)

// DateRepository is the gorm-backed implementation of ports.DateRepository.
type DateRepository struct {
	store  *Storage
	logger *slog.Logger
}

// NewDateRepository creates a DateRepository on the given storage handle.
func NewDateRepository(store *Storage, logger *slog.Logger) *DateRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DateRepository{store: store, logger: logger}
}

// List returns all dates ordered by id ascending.
func (r *DateRepository) List(ctx context.Context) ([]domain.Date, error) {
	return r.find(ctx, "listing dates", func(q *gorm.DB) *gorm.DB {
		return q.Order("id")
	})
}

// ListByCalendar returns the dates of one calendar. Empty is not an error.
func (r *DateRepository) ListByCalendar(ctx context.Context, calendarID int64) ([]domain.Date, error) {
	return r.find(ctx, "listing dates by calendar", func(q *gorm.DB) *gorm.DB {
		return q.Where("calendar_id = ?", calendarID)
	})
}

// ListByUser returns the dates of one user. Empty is not an error.
func (r *DateRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Date, error) {
	return r.find(ctx, "listing dates by user", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID)
	})
}

// ListByUserAndCalendar returns the dates matching both foreign keys.
func (r *DateRepository) ListByUserAndCalendar(ctx context.Context, userID, calendarID int64) ([]domain.Date, error) {
	return r.find(ctx, "listing dates by user and calendar", func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ? AND calendar_id = ?", userID, calendarID)
	})
}

// GetByID returns a single date or domain.ErrNotFound.
func (r *DateRepository) GetByID(ctx context.Context, id int64) (*domain.Date, error) {
	var m dateModel
	if err := r.store.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError("fetching date", err)
	}
	d := toDomainDate(&m)
	return &d, nil
}

// Exists reports whether a date row with the given id exists.
func (r *DateRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "checking date existence", "id = ?", id)
}

// ExistsForUser reports whether any date row references the given user.
func (r *DateRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	return r.exists(ctx, "checking dates of user", "user_id = ?", userID)
}

// ExistsForCalendar reports whether any date row references the given calendar.
func (r *DateRepository) ExistsForCalendar(ctx context.Context, calendarID int64) (bool, error) {
	return r.exists(ctx, "checking dates of calendar", "calendar_id = ?", calendarID)
}

// Create inserts a new date row. Returns domain.ErrConflict on a duplicated id.
func (r *DateRepository) Create(ctx context.Context, date *domain.Date) error {
	m := toDateModel(date)
	if err := r.store.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.ErrorContext(ctx, "failed to create date",
			slog.Int64("id", date.ID),
			slog.Any("error", err),
		)
		return translateError("creating date", err)
	}
	return nil
}

// Update replaces an existing date row by primary key. Zero affected rows
// maps to domain.ErrNotFound.
func (r *DateRepository) Update(ctx context.Context, date *domain.Date) error {
	m := toDateModel(date)
	res := r.store.db.WithContext(ctx).
		Model(&dateModel{}).
		Where("id = ?", m.ID).
		Select("calendar_id", "user_id", "start_date", "end_date").
		Updates(&m)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "failed to update date",
			slog.Int64("id", date.ID),
			slog.Any("error", res.Error),
		)
		return translateError("updating date", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a date row by id.
func (r *DateRepository) Delete(ctx context.Context, id int64) error {
	res := r.store.db.WithContext(ctx).Delete(&dateModel{}, "id = ?", id)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "failed to delete date",
			slog.Int64("id", id),
			slog.Any("error", res.Error),
		)
		return translateError("deleting date", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// find runs a filtered date query and converts the rows.
func (r *DateRepository) find(ctx context.Context, op string, apply func(*gorm.DB) *gorm.DB) ([]domain.Date, error) {
	var models []dateModel
	if err := apply(r.store.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, translateError(op, err)
	}

	dates := make([]domain.Date, len(models))
	for i := range models {
		dates[i] = toDomainDate(&models[i])
	}
	return dates, nil
}

// exists runs a COUNT query with a single condition.
func (r *DateRepository) exists(ctx context.Context, op, cond string, arg int64) (bool, error) {
	var count int64
	err := r.store.db.WithContext(ctx).
		Model(&dateModel{}).
		Where(cond, arg).
		Count(&count).Error
	if err != nil {
		return false, translateError(op, err)
	}
	return count > 0, nil
}
