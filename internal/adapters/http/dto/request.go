package dto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/ports"
)

// Default pagination used when a list request omits the parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// DecodeObject reads the request body as a single untyped JSON object. The
// core narrows the fields itself; the adapter only guarantees "it was a JSON
// object". Returns a *domain.FieldErrors on malformed input.
func DecodeObject(r *http.Request) (map[string]any, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, domain.NewFieldErrors(domain.FieldError{
			Field: "body", Message: "must be a JSON object",
		})
	}
	if raw == nil {
		return nil, domain.NewFieldErrors(domain.FieldError{
			Field: "body", Message: "must be a JSON object",
		})
	}
	return raw, nil
}

// ParseListQuery extracts pagination and sorting parameters. Absent
// parameters select the defaults; present-but-malformed ones are rejected,
// each with its own error entry. Range checks live in the store, which owns
// the configured maximum page size.
func ParseListQuery(r *http.Request) (ports.ListQuery, error) {
	q := ports.ListQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	var errs []domain.FieldError
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer", Value: raw})
		} else {
			q.Page = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer", Value: raw})
		} else {
			q.Limit = n
		}
	}
	if len(errs) > 0 {
		return ports.ListQuery{}, domain.NewFieldErrors(errs...)
	}
	return q, nil
}

// ParseEventKind extracts the optional "type" filter for the events feed.
// Nil means no filter; validity of a present value is the store's call.
func ParseEventKind(r *http.Request) *audit.Kind {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil
	}
	k := audit.Kind(raw)
	return &k
}

// LoginAttemptRequest represents the JSON body for recording a login attempt.
type LoginAttemptRequest struct {
	Success *bool  `json:"success"`
	Remote  string `json:"remote,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.FieldErrors if any checks fail.
func (r *LoginAttemptRequest) Validate() error {
	if r.Success == nil {
		return domain.NewFieldErrors(domain.FieldError{
			Field: "success", Message: domain.MsgMissing,
		})
	}
	return nil
}
