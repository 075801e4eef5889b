package app_test

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/famapp/famapp-api/internal/adapters/storage"
	"github.com/famapp/famapp-api/internal/app"
	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/platform/config"
)

var dbSeq atomic.Int64

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var testStart = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// services bundles the three application services over one fresh database.
type services struct {
	users     *app.UserService
	calendars *app.CalendarService
	dates     *app.DateService
}

func newServices(t *testing.T) services {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	dsn := fmt.Sprintf("file:app_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	store, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", DSN: dsn}, logger)
	if err != nil {
		t.Fatalf("failed to open test storage: %v", err)
	}

	return services{
		users:     app.NewUserService(storage.NewUserRepository(store, logger), logger),
		calendars: app.NewCalendarService(storage.NewCalendarRepository(store, logger), logger),
		dates:     app.NewDateService(storage.NewDateRepository(store, logger), logger),
	}
}

func validUser() *domain.User {
	return &domain.User{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "s3cret",
	}
}

func validDate() *domain.Date {
	return &domain.Date{
		ID:         1,
		CalendarID: 1,
		UserID:     1,
		StartDate:  testStart,
		EndDate:    testStart.Add(2 * time.Hour),
	}
}
