package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	adapthttp "github.com/famapp/famapp-api/internal/adapters/http"
	"github.com/famapp/famapp-api/internal/adapters/http/handlers"
	"github.com/famapp/famapp-api/internal/adapters/storage"
	"github.com/famapp/famapp-api/internal/app"
	"github.com/famapp/famapp-api/internal/platform/config"
	"github.com/famapp/famapp-api/internal/platform/health"
)

var routerDBSeq atomic.Int64

// newTestRouter wires the full stack over a fresh in-memory database so
// requests exercise real routing, parameter extraction, and storage.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := discardLogger()
	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", routerDBSeq.Add(1))
	store, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", DSN: dsn}, logger)
	if err != nil {
		t.Fatalf("failed to open test storage: %v", err)
	}

	registry := health.New()
	registry.Register(store)

	return adapthttp.NewRouter(
		handlers.NewUserHandler(app.NewUserService(storage.NewUserRepository(store, logger), logger)),
		handlers.NewCalendarHandler(app.NewCalendarService(storage.NewCalendarRepository(store, logger), logger)),
		handlers.NewDateHandler(app.NewDateService(storage.NewDateRepository(store, logger), logger)),
		handlers.NewHealthHandler(registry),
	)
}

func TestRouter_RouteRegistration(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/health/live", "", http.StatusOK},
		{http.MethodGet, "/health/ready", "", http.StatusOK},
		{http.MethodGet, "/api/user", "", http.StatusOK},
		{http.MethodGet, "/api/user/id/1", "", http.StatusNotFound},
		{http.MethodGet, "/api/user/mail/nobody@example.com", "", http.StatusNotFound},
		{http.MethodGet, "/api/calendar", "", http.StatusOK},
		{http.MethodGet, "/api/calendar/id/1", "", http.StatusNotFound},
		{http.MethodGet, "/api/date", "", http.StatusOK},
		{http.MethodGet, "/api/date/1", "", http.StatusNotFound},
		{http.MethodGet, "/api/date/calendar/1", "", http.StatusOK},
		{http.MethodGet, "/api/date/user/1", "", http.StatusOK},
		{http.MethodGet, "/api/date/user/1/calendar/1", "", http.StatusNotFound},
		{http.MethodDelete, "/api/user/1", "", http.StatusNotFound},
		{http.MethodDelete, "/api/calendar/1", "", http.StatusNotFound},
		{http.MethodDelete, "/api/date/1", "", http.StatusNotFound},
		{http.MethodPost, "/api/user", "{}", http.StatusBadRequest},
		{http.MethodPost, "/api/calendar", "{}", http.StatusBadRequest},
		{http.MethodPost, "/api/date", "{}", http.StatusBadRequest},
		{http.MethodPut, "/api/user/update/1", "{}", http.StatusBadRequest},
		{http.MethodPost, "/api/date/update/1", "{}", http.StatusBadRequest},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRouter_CreateThenFetchRoundTrip(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	body := `{"id":1,"first_name":"Anna","last_name":"Berg","email":"anna.berg@example.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/id/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"anna.berg@example.com"`) {
		t.Errorf("fetch body = %s, want it to contain the email", rec.Body.String())
	}
}

// More specific date routes must win over the catch-all id route.
func TestRouter_DateRoutePrecedence(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	// /api/date/calendar/7 must hit the by-calendar list, not GetDate with
	// id "calendar". A list answer is 200 even when empty.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/date/calendar/7", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty list", body)
	}
}
