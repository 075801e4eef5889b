package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that DateService implements ports.DateService.
var _ ports.DateService = (*DateService)(nil)

// DateService implements ports.DateService on top of the date repository.
type DateService struct {
	dates  ports.DateRepository
	logger *slog.Logger
}

// NewDateService creates a DateService.
func NewDateService(dates ports.DateRepository, logger *slog.Logger) *DateService {
	return &DateService{dates: dates, logger: logger}
}

// ListDates returns all dates ordered by id.
func (s *DateService) ListDates(ctx context.Context) ([]domain.Date, error) {
	dates, err := s.dates.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list dates",
			slog.String("operation", "ListDates"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return dates, nil
}

// GetDate returns a single date by id.
func (s *DateService) GetDate(ctx context.Context, id int64) (*domain.Date, error) {
	date, err := s.dates.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch date",
			slog.String("operation", "GetDate"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return date, nil
}

// ListDatesByCalendar returns the dates of one calendar; empty is not an error.
func (s *DateService) ListDatesByCalendar(ctx context.Context, calendarID int64) ([]domain.Date, error) {
	dates, err := s.dates.ListByCalendar(ctx, calendarID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list dates by calendar",
			slog.String("operation", "ListDatesByCalendar"),
			slog.Int64("calendar_id", calendarID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return dates, nil
}

// ListDatesByUser returns the dates of one user; empty is not an error.
func (s *DateService) ListDatesByUser(ctx context.Context, userID int64) ([]domain.Date, error) {
	dates, err := s.dates.ListByUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list dates by user",
			slog.String("operation", "ListDatesByUser"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return dates, nil
}

// ListDatesByUserAndCalendar returns the dates matching both keys. The
// pre-check mirrors the rest of the API: when the user or the calendar has
// no dates at all the result is a not-found, while an empty intersection
// between two non-empty sides is a valid empty list.
func (s *DateService) ListDatesByUserAndCalendar(ctx context.Context, userID, calendarID int64) ([]domain.Date, error) {
	forUser, err := s.dates.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	forCalendar, err := s.dates.ExistsForCalendar(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	if !forUser || !forCalendar {
		return nil, domain.ErrNotFound
	}

	dates, err := s.dates.ListByUserAndCalendar(ctx, userID, calendarID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list dates by user and calendar",
			slog.String("operation", "ListDatesByUserAndCalendar"),
			slog.Int64("user_id", userID),
			slog.Int64("calendar_id", calendarID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return dates, nil
}

// CreateDate validates and creates a new date. The id pre-check gives a
// friendly conflict message; the primary key remains the authoritative
// guard under concurrent creates.
func (s *DateService) CreateDate(ctx context.Context, date *domain.Date) error {
	s.logger.InfoContext(ctx, "creating date", slog.Int64("id", date.ID))

	if err := date.Validate(); err != nil {
		return err
	}

	taken, err := s.dates.Exists(ctx, date.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: date with this id already exists", domain.ErrConflict)
	}

	if err := s.dates.Create(ctx, date); err != nil {
		s.logger.ErrorContext(ctx, "failed to create date",
			slog.String("operation", "CreateDate"),
			slog.Int64("id", date.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// UpdateDate validates and replaces an existing date row.
func (s *DateService) UpdateDate(ctx context.Context, date *domain.Date) error {
	s.logger.InfoContext(ctx, "updating date", slog.Int64("id", date.ID))

	exists, err := s.dates.Exists(ctx, date.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := date.Validate(); err != nil {
		return err
	}

	if err := s.dates.Update(ctx, date); err != nil {
		s.logger.ErrorContext(ctx, "failed to update date",
			slog.String("operation", "UpdateDate"),
			slog.Int64("id", date.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// DeleteDate removes a date by id.
func (s *DateService) DeleteDate(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting date", slog.Int64("id", id))

	if err := s.dates.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete date",
			slog.String("operation", "DeleteDate"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
