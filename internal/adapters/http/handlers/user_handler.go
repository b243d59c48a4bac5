// Package handlers provides the HTTP handlers bridging chi routes to the
// service ports. Handlers stay thin: decode, call the port, serialize the
// envelope. All narrowing of untyped input happens in the core.
package handlers

import (
	"net/http"

	"github.com/mwhidden/vetted/internal/adapters/http/dto"
	"github.com/mwhidden/vetted/internal/ports"
)

// UserHandler handles HTTP requests for user CRUD and the audit feed.
type UserHandler struct {
	service ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeObjectBody(w, r)
	if !ok {
		return
	}

	res := h.service.Create(r.Context(), raw)
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusCreated, dto.ToUserResponse(res.Data()))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	res := h.service.Get(r.Context(), pathID(r))
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusOK, dto.ToUserResponse(res.Data()))
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListQuery(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	res := h.service.List(r.Context(), q)
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	items, pagination := dto.ToUserListData(res.Data())
	dto.WritePage(w, r, items, pagination)
}

// UpdateUser handles PATCH /api/v1/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeObjectBody(w, r)
	if !ok {
		return
	}

	res := h.service.Update(r.Context(), pathID(r), raw)
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusOK, dto.ToUserResponse(res.Data()))
}

// DeleteUser handles DELETE /api/v1/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res := h.service.Delete(r.Context(), pathID(r))
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusOK, dto.MessageResponse{Message: res.Data()})
}

// ListEvents handles GET /api/v1/events.
func (h *UserHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	res := h.service.ListEvents(r.Context(), dto.ParseEventKind(r))
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusOK, dto.ToEventListResponse(res.Data()))
}

// RecordLogin handles POST /api/v1/users/{id}/login-attempts.
func (h *UserHandler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginAttemptRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	remote := req.Remote
	if remote == "" {
		remote = r.RemoteAddr
	}

	res := h.service.RecordLogin(r.Context(), pathID(r), *req.Success, remote)
	if res.IsFailure() {
		dto.WriteError(w, r, res.Err())
		return
	}

	dto.WriteData(w, r, http.StatusCreated, dto.ToEventResponse(res.Data()))
}
