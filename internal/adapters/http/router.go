// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/famapp/famapp-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	userHandler *handlers.UserHandler,
	calendarHandler *handlers.CalendarHandler,
	dateHandler *handlers.DateHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Users.
		r.Get("/user", userHandler.ListUsers)
		r.Get("/user/id/{userId}", userHandler.GetUserByID)
		r.Get("/user/mail/{email}", userHandler.GetUserByEmail)
		r.Post("/user", userHandler.CreateUser)
		r.Put("/user/update/{userId}", userHandler.UpdateUser)
		r.Delete("/user/{userId}", userHandler.DeleteUser)

		// Calendars.
		r.Get("/calendar", calendarHandler.ListCalendars)
		r.Get("/calendar/id/{groupId}", calendarHandler.GetCalendarOfGroup)
		r.Post("/calendar", calendarHandler.CreateCalendar)
		r.Delete("/calendar/{calendarId}", calendarHandler.DeleteCalendar)

		// Dates.
		r.Get("/date", dateHandler.ListDates)
		r.Get("/date/calendar/{calendarId}", dateHandler.ListDatesByCalendar)
		r.Get("/date/user/{userId}/calendar/{calendarId}", dateHandler.ListDatesByUserAndCalendar)
		r.Get("/date/user/{userId}", dateHandler.ListDatesByUser)
		r.Get("/date/{dateId}", dateHandler.GetDate)
		r.Post("/date", dateHandler.CreateDate)
		r.Post("/date/update/{dateId}", dateHandler.UpdateDate)
		r.Delete("/date/{dateId}", dateHandler.DeleteDate)
	})

	return r
}
