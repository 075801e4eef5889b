package handlers

import (
	"net/http"

	"github.com/famapp/famapp-api/internal/adapters/http/dto"
	"github.com/famapp/famapp-api/internal/ports"
)

// DateHandler handles HTTP requests for date (calendar event) operations.
type DateHandler struct {
	service ports.DateService
}

// NewDateHandler creates a new DateHandler with the given service port.
func NewDateHandler(service ports.DateService) *DateHandler {
	return &DateHandler{service: service}
}

// ListDates handles GET /api/date.
func (h *DateHandler) ListDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.ListDates(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateListResponse(dates))
}

// GetDate handles GET /api/date/{dateId}.
func (h *DateHandler) GetDate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "dateId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	date, err := h.service.GetDate(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateResponse(date))
}

// ListDatesByCalendar handles GET /api/date/calendar/{calendarId}. A calendar
// without dates yields an empty list, not a 404.
func (h *DateHandler) ListDatesByCalendar(w http.ResponseWriter, r *http.Request) {
	calendarID, err := parseID(r, "calendarId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dates, err := h.service.ListDatesByCalendar(r.Context(), calendarID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateListResponse(dates))
}

// ListDatesByUser handles GET /api/date/user/{userId}. A user without dates
// yields an empty list, not a 404.
func (h *DateHandler) ListDatesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dates, err := h.service.ListDatesByUser(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateListResponse(dates))
}

// ListDatesByUserAndCalendar handles GET /api/date/user/{userId}/calendar/{calendarId}.
func (h *DateHandler) ListDatesByUserAndCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	calendarID, err := parseID(r, "calendarId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dates, err := h.service.ListDatesByUserAndCalendar(r.Context(), userID, calendarID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateListResponse(dates))
}

// CreateDate handles POST /api/date.
func (h *DateHandler) CreateDate(w http.ResponseWriter, r *http.Request) {
	var req dto.DateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.CreateDate(r.Context(), req.ToDate()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully created date"})
}

// UpdateDate handles POST /api/date/update/{dateId}.
func (h *DateHandler) UpdateDate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "dateId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !requireMatchingID(w, r, id, req.ID) {
		return
	}

	if err := h.service.UpdateDate(r.Context(), req.ToDate()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDate handles DELETE /api/date/{dateId}.
func (h *DateHandler) DeleteDate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "dateId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteDate(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
