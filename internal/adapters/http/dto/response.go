// Package dto provides the HTTP envelope, request decoding, and response
// serialization for the inbound HTTP adapter layer. Every response body is
// an Envelope: success with data, or failure with exactly one classified
// error, never both.
package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/ports"
)

// Envelope is the uniform response wrapper. Data and Error are mutually
// exclusive; Pagination accompanies list responses only.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page position of a list response. Total counts
// the full matching set, Pages is ceil(Total/Limit).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// UserResponse represents a single user entity in HTTP responses.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   ContactResponse `json:"contact"`
	Age       int             `json:"age"`
	Active    bool            `json:"isActive"`
	Tags      []string        `json:"tags"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// ContactResponse represents a user's contact record in HTTP responses.
type ContactResponse struct {
	Email   string           `json:"email"`
	Phone   string           `json:"phone,omitempty"`
	Address *AddressResponse `json:"address,omitempty"`
}

// AddressResponse represents a postal address in HTTP responses.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u user.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Contact:   ContactResponse{Email: u.Contact.Email, Phone: u.Contact.Phone},
		Age:       u.Age,
		Active:    u.Active,
		Tags:      u.Tags,
		Metadata:  u.Metadata,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.Contact.Address != nil {
		resp.Contact.Address = &AddressResponse{
			Street:     u.Contact.Address.Street,
			City:       u.Contact.Address.City,
			PostalCode: u.Contact.Address.PostalCode,
			Country:    u.Contact.Address.Country,
		}
	}
	return resp
}

// ToUserListData converts a page of users into the envelope's data and
// pagination parts.
func ToUserListData(page ports.Page[user.User]) ([]UserResponse, *Pagination) {
	items := make([]UserResponse, len(page.Items))
	for i, u := range page.Items {
		items[i] = ToUserResponse(u)
	}
	return items, &Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.Pages,
	}
}

// EventResponse represents a single audit event in HTTP responses. Type is
// the envelope discriminant; Payload carries the kind-specific fields.
type EventResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// ToEventResponse converts a domain audit event to an HTTP response DTO.
// The payload switch is exhaustive over the closed variant set.
func ToEventResponse(e audit.Event) EventResponse {
	resp := EventResponse{
		ID:        e.ID,
		Type:      e.Kind.String(),
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}

	switch p := e.Payload.(type) {
	case audit.Created:
		resp.Payload = map[string]any{"user": ToUserResponse(p.User)}
	case audit.Updated:
		resp.Payload = map[string]any{"userId": p.UserID, "previous": ToUserResponse(p.Previous)}
	case audit.Deleted:
		resp.Payload = map[string]any{"userId": p.UserID, "backup": ToUserResponse(p.Backup)}
	case audit.LoginAttempt:
		resp.Payload = map[string]any{"userId": p.UserID, "success": p.Success, "remote": p.Remote}
	}

	return resp
}

// ToEventListResponse converts a slice of audit events to HTTP response DTOs.
func ToEventListResponse(events []audit.Event) []EventResponse {
	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = ToEventResponse(e)
	}
	return items
}

// MessageResponse wraps a confirmation message, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteData writes a success envelope with the given status and data.
func WriteData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, status, Envelope{Success: true, Data: data})
}

// WritePage writes a success envelope carrying list data and pagination.
func WritePage(w http.ResponseWriter, r *http.Request, data any, p *Pagination) {
	writeEnvelope(w, r, http.StatusOK, Envelope{Success: true, Data: data, Pagination: p})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response envelope",
			slog.Any("error", err),
		)
	}
}
