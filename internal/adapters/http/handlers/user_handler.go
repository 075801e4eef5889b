// Package handlers contains the HTTP handler layer translating requests into
// service calls and domain results into JSON responses.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/famapp/famapp-api/internal/adapters/http/dto"
	"github.com/famapp/famapp-api/internal/ports"
)

// UserHandler handles HTTP requests for user CRUD operations.
type UserHandler struct {
	service ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/user.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// GetUserByID handles GET /api/user/id/{userId}.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// GetUserByEmail handles GET /api/user/mail/{email}.
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.service.GetUserByEmail(r.Context(), email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// CreateUser handles POST /api/user. A successful create answers 200 with a
// confirmation message rather than echoing the entity.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.CreateUser(r.Context(), req.ToUser()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully created user"})
}

// UpdateUser handles PUT /api/user/update/{userId}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !requireMatchingID(w, r, id, req.ID) {
		return
	}

	if err := h.service.UpdateUser(r.Context(), req.ToUser()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/user/{userId}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
