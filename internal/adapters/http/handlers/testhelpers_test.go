package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/famapp/famapp-api/internal/adapters/http/handlers"
	"github.com/famapp/famapp-api/internal/adapters/storage"
	"github.com/famapp/famapp-api/internal/app"
	"github.com/famapp/famapp-api/internal/domain"
	"github.com/famapp/famapp-api/internal/platform/config"
)

var testTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testStack wires handlers against a fresh in-memory database. Services are
// exposed so tests can seed data without going through HTTP.
type testStack struct {
	users     *app.UserService
	calendars *app.CalendarService
	dates     *app.DateService

	userHandler     *handlers.UserHandler
	calendarHandler *handlers.CalendarHandler
	dateHandler     *handlers.DateHandler
}

// dbSeq gives every test stack its own named in-memory database. A shared
// cache keeps the database alive across the pooled connections gorm opens.
var dbSeq atomic.Int64

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	store, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", DSN: dsn}, logger)
	if err != nil {
		t.Fatalf("opening test storage: %v", err)
	}

	users := app.NewUserService(storage.NewUserRepository(store, logger), logger)
	calendars := app.NewCalendarService(storage.NewCalendarRepository(store, logger), logger)
	dates := app.NewDateService(storage.NewDateRepository(store, logger), logger)

	return &testStack{
		users:           users,
		calendars:       calendars,
		dates:           dates,
		userHandler:     handlers.NewUserHandler(users),
		calendarHandler: handlers.NewCalendarHandler(calendars),
		dateHandler:     handlers.NewDateHandler(dates),
	}
}

func (s *testStack) seedUser(t *testing.T, u domain.User) {
	t.Helper()
	if err := s.users.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("seeding user %d: %v", u.ID, err)
	}
}

func (s *testStack) seedCalendar(t *testing.T, c domain.Calendar) {
	t.Helper()
	if err := s.calendars.CreateCalendar(context.Background(), &c); err != nil {
		t.Fatalf("seeding calendar %d: %v", c.ID, err)
	}
}

func (s *testStack) seedDate(t *testing.T, d domain.Date) {
	t.Helper()
	if err := s.dates.CreateDate(context.Background(), &d); err != nil {
		t.Fatalf("seeding date %d: %v", d.ID, err)
	}
}

func validUser() domain.User {
	return domain.User{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "s3cret",
	}
}

func validCalendar() domain.Calendar {
	return domain.Calendar{ID: 1, GroupID: 1}
}

func validDate() domain.Date {
	return domain.Date{
		ID:         1,
		CalendarID: 1,
		UserID:     1,
		StartDate:  testTime,
		EndDate:    testTime.Add(2 * time.Hour),
	}
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
