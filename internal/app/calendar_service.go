package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/ports"
)

// Compile-time check that CalendarService implements ports.CalendarService.
var _ ports.CalendarService = (*CalendarService)(nil)

// CalendarService implements ports.CalendarService on top of the calendar
// repository.
type CalendarService struct {
	calendars ports.CalendarRepository
	logger    *slog.Logger
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(calendars ports.CalendarRepository, logger *slog.Logger) *CalendarService {
	return &CalendarService{calendars: calendars, logger: logger}
}

// ListCalendars returns all calendars ordered by id.
func (s *CalendarService) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	calendars, err := s.calendars.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list calendars",
			slog.String("operation", "ListCalendars"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return calendars, nil
}

// GetCalendarOfGroup returns the calendar belonging to a group.
func (s *CalendarService) GetCalendarOfGroup(ctx context.Context, groupID int64) (*domain.Calendar, error) {
	calendar, err := s.calendars.GetByGroup(ctx, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch calendar of group",
			slog.String("operation", "GetCalendarOfGroup"),
			slog.Int64("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return calendar, nil
}

// CreateCalendar validates and creates a new calendar. The id pre-check
// gives a friendly conflict message; the primary key remains the
// authoritative guard under concurrent creates.
func (s *CalendarService) CreateCalendar(ctx context.Context, calendar *domain.Calendar) error {
	s.logger.InfoContext(ctx, "creating calendar", slog.Int64("id", calendar.ID))

	if err := calendar.Validate(); err != nil {
		return err
	}

	taken, err := s.calendars.Exists(ctx, calendar.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: calendar with this id already exists", domain.ErrConflict)
	}

	if err := s.calendars.Create(ctx, calendar); err != nil {
		s.logger.ErrorContext(ctx, "failed to create calendar",
			slog.String("operation", "CreateCalendar"),
			slog.Int64("id", calendar.ID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// DeleteCalendar removes a calendar by id.
func (s *CalendarService) DeleteCalendar(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting calendar", slog.Int64("id", id))

	if err := s.calendars.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete calendar",
			slog.String("operation", "DeleteCalendar"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
