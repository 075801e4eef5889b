package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/famapp/famapp-api/internal/adapters/http/dto"
)

// --- ListUsers ---

func TestListUsers_Empty(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	s.userHandler.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.UserResponse](t, rec)
	if len(resp) != 0 {
		t.Errorf("len = %d, want 0", len(resp))
	}
}

func TestListUsers_ReturnsSeeded(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	s.userHandler.ListUsers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.UserResponse](t, rec)
	if len(resp) != 1 {
		t.Fatalf("len = %d, want 1", len(resp))
	}
	if resp[0].Email != "anna.berg@example.com" {
		t.Errorf("Email = %q, want %q", resp[0].Email, "anna.berg@example.com")
	}
}

// --- CreateUser ---

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	body := jsonBody(t, dto.UserRequest{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "s3cret",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user", body)
	req.Header.Set("Content-Type", "application/json")
	s.userHandler.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Message != "Successfully created user" {
		t.Errorf("Message = %q, want %q", resp.Message, "Successfully created user")
	}
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	s.userHandler.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateUser_MissingFields(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	body := jsonBody(t, dto.UserRequest{ID: 1, FirstName: "Anna"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user", body)
	req.Header.Set("Content-Type", "application/json")
	s.userHandler.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	body := jsonBody(t, dto.UserRequest{
		ID:        2,
		FirstName: "Annika",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "other",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user", body)
	req.Header.Set("Content-Type", "application/json")
	s.userHandler.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestCreateUser_DuplicateEmailCaseAndWhitespace(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	// Same address up to case and surrounding whitespace.
	body := jsonBody(t, dto.UserRequest{
		ID:        2,
		FirstName: "Annika",
		LastName:  "Berg",
		Email:     "  Anna.Berg@Example.COM ",
		Password:  "other",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user", body)
	req.Header.Set("Content-Type", "application/json")
	s.userHandler.CreateUser(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- GetUserByID ---

func TestGetUserByID_Success(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/user/id/1", nil), map[string]string{"userId": "1"})
	s.userHandler.GetUserByID(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGetUserByID_InvalidID(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/user/id/abc", nil), map[string]string{"userId": "abc"})
	s.userHandler.GetUserByID(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetUserByID_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/user/id/999", nil), map[string]string{"userId": "999"})
	s.userHandler.GetUserByID(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- GetUserByEmail ---

func TestGetUserByEmail_Success(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/user/mail/anna.berg@example.com", nil),
		map[string]string{"email": "anna.berg@example.com"},
	)
	s.userHandler.GetUserByEmail(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/user/mail/Anna.Berg@Example.COM", nil),
		map[string]string{"email": "Anna.Berg@Example.COM"},
	)
	s.userHandler.GetUserByEmail(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/user/mail/nobody@example.com", nil),
		map[string]string{"email": "nobody@example.com"},
	)
	s.userHandler.GetUserByEmail(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateUser ---

func TestUpdateUser_Success(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	body := jsonBody(t, dto.UserRequest{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Lind",
		Email:     "anna.lind@example.com",
		Password:  "s3cret",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/update/1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"userId": "1"})
	s.userHandler.UpdateUser(rec, req)

	requireStatus(t, rec, http.StatusNoContent)

	// The update must be visible on a subsequent read.
	rec = httptest.NewRecorder()
	getReq := withChiParams(httptest.NewRequest(http.MethodGet, "/api/user/id/1", nil), map[string]string{"userId": "1"})
	s.userHandler.GetUserByID(rec, getReq)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.LastName != "Lind" {
		t.Errorf("LastName = %q, want %q", resp.LastName, "Lind")
	}
}

func TestUpdateUser_IDMismatch(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	body := jsonBody(t, dto.UserRequest{
		ID:        2,
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "anna.berg@example.com",
		Password:  "s3cret",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/update/1", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"userId": "1"})
	s.userHandler.UpdateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateUser_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	body := jsonBody(t, dto.UserRequest{
		ID:        999,
		FirstName: "Ghost",
		LastName:  "User",
		Email:     "ghost@example.com",
		Password:  "none",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/update/999", body)
	req.Header.Set("Content-Type", "application/json")
	req = withChiParams(req, map[string]string{"userId": "999"})
	s.userHandler.UpdateUser(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteUser ---

func TestDeleteUser_Success(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)
	s.seedUser(t, validUser())

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/user/1", nil), map[string]string{"userId": "1"})
	s.userHandler.DeleteUser(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteUser_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/user/999", nil), map[string]string{"userId": "999"})
	s.userHandler.DeleteUser(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteUser_InvalidID(t *testing.T) {
	t.Parallel()
	s := newTestStack(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/user/abc", nil), map[string]string{"userId": "abc"})
	s.userHandler.DeleteUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
