package ports

import (
	"context"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
)

// ListQuery carries pagination and sorting parameters for List. Page must be
// >= 1 and Limit within [1, the configured maximum]; out-of-range values are
// rejected with a validation error, never silently clamped. Empty SortBy and
// SortOrder select the defaults (created_at, descending).
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Page is one page of a sorted result set. Total reflects the full matching
// set, not the page size; Pages is ceil(Total/Limit).
type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int
	Pages int
}

// UserService is the service port for validated user operations. Implemented
// by the application layer; called by inbound adapters (handlers). Every
// method returns a domain.Result: success with a payload or failure with a
// classified error, never both. Raw inputs are untyped records as decoded
// from the transport; narrowing them is the core's job, not the caller's.
type UserService interface {
	// Create validates raw input merged with system-generated fields and
	// stores the resulting entity. Fails with a validation error listing
	// every failing field; nothing is stored on failure.
	Create(ctx context.Context, raw map[string]any) domain.Result[user.User]

	// Get returns the entity by id. Fails with a validation error for an
	// empty id, business/NOT_FOUND for a miss, and business/DATA_CORRUPTION
	// if the stored copy no longer passes validation.
	Get(ctx context.Context, id string) domain.Result[user.User]

	// List returns one page of the sorted entity set.
	List(ctx context.Context, q ListQuery) domain.Result[Page[user.User]]

	// Update merges partial input over the stored entity, preserving id and
	// createdAt, and re-validates the merged result before storing it.
	Update(ctx context.Context, id string, partial map[string]any) domain.Result[user.User]

	// Delete removes the entity and returns a confirmation message.
	Delete(ctx context.Context, id string) domain.Result[string]

	// ListEvents returns audit events newest-first, optionally filtered by
	// kind. Events failing re-validation are skipped, never surfaced.
	ListEvents(ctx context.Context, kind *audit.Kind) domain.Result[[]audit.Event]

	// RecordLogin appends a login_attempt audit event for the entity.
	RecordLogin(ctx context.Context, id string, success bool, remote string) domain.Result[audit.Event]
}

// UserStore is the storage port implemented by the in-memory store. It uses
// conventional (value, error) returns; errors are always one of the three
// classified kinds. All returned entities and events are deep copies.
type UserStore interface {
	Create(ctx context.Context, raw map[string]any) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	List(ctx context.Context, q ListQuery) (Page[user.User], error)
	Update(ctx context.Context, id string, partial map[string]any) (user.User, error)
	Delete(ctx context.Context, id string) (string, error)
	ListEvents(ctx context.Context, kind *audit.Kind) ([]audit.Event, error)
	RecordLoginAttempt(ctx context.Context, id string, success bool, remote string) (audit.Event, error)
}
