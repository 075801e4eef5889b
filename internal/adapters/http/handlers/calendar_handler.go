package handlers

import (
	"net/http"

	"github.com/famapp/famapp-api/internal/adapters/http/dto"
	"github.com/famapp/famapp-api/internal/ports"
)

// CalendarHandler handles HTTP requests for calendar operations.
type CalendarHandler struct {
	service ports.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler with the given service port.
func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// ListCalendars handles GET /api/calendar.
func (h *CalendarHandler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.service.ListCalendars(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCalendarListResponse(calendars))
}

// GetCalendarOfGroup handles GET /api/calendar/id/{groupId}.
func (h *CalendarHandler) GetCalendarOfGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseID(r, "groupId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	calendar, err := h.service.GetCalendarOfGroup(r.Context(), groupID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCalendarResponse(calendar))
}

// CreateCalendar handles POST /api/calendar.
func (h *CalendarHandler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	var req dto.CalendarRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.CreateCalendar(r.Context(), req.ToCalendar()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully created calendar"})
}

// DeleteCalendar handles DELETE /api/calendar/{calendarId}. Unlike the other
// delete endpoints this one answers 200 with an empty body, a published
// contract kept for client compatibility.
func (h *CalendarHandler) DeleteCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "calendarId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteCalendar(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
