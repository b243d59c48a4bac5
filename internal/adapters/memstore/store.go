// Package memstore provides the in-memory entity store and its audit log.
// The store exclusively owns both collections: every entity or event handed
// to a caller is a deep copy, so caller-side mutation cannot corrupt stored
// state. All operations are atomic with respect to each other under a single
// exclusive lock; nothing suspends while holding it (validation is pure and
// CPU-bound).
package memstore

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/ports"
	"github.com/mwhidden/vetted/internal/validate"
)

// Compile-time checks against the store and health ports.
var (
	_ ports.UserStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Sortable fields for List. Empty SortBy selects created_at.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByName      = "name"
	SortByAge       = "age"
)

// Options configures store capacities. Zero values select the defaults.
type Options struct {
	// AuditRetention caps the main audit log (default 100).
	AuditRetention int
	// SessionRetention caps the login-attempt session feed (default 50).
	SessionRetention int
	// MaxPageSize bounds List's limit parameter (default 100).
	MaxPageSize int
	// Now overrides the clock, for tests.
	Now func() time.Time
	// NewID overrides id generation, for tests.
	NewID func() string
}

const (
	defaultAuditRetention   = 100
	defaultSessionRetention = 50
	defaultMaxPageSize      = 100
)

// Store is the in-memory keyed entity collection plus its append-only audit
// log and session feed.
type Store struct {
	mu       sync.Mutex
	users    map[string]user.User
	order    []string // insertion order, the tie-breaker for stable sorts
	events   *audit.Log
	sessions *audit.Log

	maxPageSize int
	now         func() time.Time
	newID       func() string
	logger      *slog.Logger
}

// New creates an empty store. A nil logger discards log output.
func New(opts Options, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.AuditRetention <= 0 {
		opts.AuditRetention = defaultAuditRetention
	}
	if opts.SessionRetention <= 0 {
		opts.SessionRetention = defaultSessionRetention
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = defaultMaxPageSize
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Store{
		users:       make(map[string]user.User),
		events:      audit.NewLog(opts.AuditRetention),
		sessions:    audit.NewLog(opts.SessionRetention),
		maxPageSize: opts.MaxPageSize,
		now:         opts.Now,
		newID:       opts.NewID,
		logger:      logger,
	}
}

// Create merges the caller's raw input with system-generated fields (id,
// createdAt, updatedAt), runs detailed validation, and only then inserts the
// entity and appends a created event. On failure nothing is stored and the
// caller's map is left untouched.
func (s *Store) Create(_ context.Context, raw map[string]any) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]any, len(raw)+3)
	maps.Copy(merged, raw)

	now := s.now()
	merged["id"] = s.newID()
	merged["createdAt"] = now
	merged["updatedAt"] = now

	u, ferr := user.Decode(merged)
	if ferr != nil {
		return user.User{}, ferr
	}

	// The id came from our own generator; an empty one is a defect.
	validate.MustNonEmptyString(u.ID, "id")

	stored := u.Clone()
	s.users[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	s.appendEvent(audit.Created{User: stored.Clone()})

	return stored.Clone(), nil
}

// GetByID returns the entity by id. The stored copy is re-validated before
// being returned; a copy that no longer passes its own shape is surfaced as
// business/DATA_CORRUPTION rather than handed back stale.
func (s *Store) GetByID(_ context.Context, id string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

func (s *Store) getLocked(id string) (user.User, error) {
	if ferr := checkID(id); ferr != nil {
		return user.User{}, ferr
	}
	stored, ok := s.users[id]
	if !ok {
		return user.User{}, domain.NotFound(id)
	}
	if err := stored.Validate(); err != nil {
		s.logger.Error("stored user failed re-validation",
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return user.User{}, domain.Corrupted(id, err)
	}
	return stored.Clone(), nil
}

// List returns one page of the sorted entity set. Out-of-range pagination
// parameters are rejected, never clamped; every failing parameter gets its
// own error entry. Sorting is a total order over the requested field with
// ties broken by insertion order; default is created_at descending.
func (s *Store) List(_ context.Context, q ports.ListQuery) (ports.Page[user.User], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByCreatedAt
	}
	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	var errs []domain.FieldError
	if q.Page < 1 {
		errs = append(errs, domain.FieldError{
			Field: "page", Message: "must be >= 1", Value: q.Page,
		})
	}
	if q.Limit < 1 || q.Limit > s.maxPageSize {
		errs = append(errs, domain.FieldError{
			Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", s.maxPageSize), Value: q.Limit,
		})
	}
	switch sortBy {
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByAge:
	default:
		errs = append(errs, domain.FieldError{
			Field: "sortBy", Message: "must be one of: created_at, updated_at, name, age", Value: q.SortBy,
		})
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		errs = append(errs, domain.FieldError{
			Field: "sortOrder", Message: "must be one of: asc, desc", Value: q.SortOrder,
		})
	}
	if len(errs) > 0 {
		return ports.Page[user.User]{}, domain.NewFieldErrors(errs...)
	}

	// Snapshot in insertion order so the stable sort breaks ties by it.
	all := make([]user.User, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.users[id])
	}
	sort.SliceStable(all, sortLess(all, sortBy, sortOrder))

	total := len(all)
	pages := (total + q.Limit - 1) / q.Limit

	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	items := make([]user.User, 0, end-start)
	for _, u := range all[start:end] {
		items = append(items, u.Clone())
	}

	return ports.Page[user.User]{
		Items: items,
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

func sortLess(all []user.User, sortBy, sortOrder string) func(i, j int) bool {
	asc := sortOrder == "asc"
	return func(i, j int) bool {
		a, b := all[i], all[j]
		var less bool
		switch sortBy {
		case SortByUpdatedAt:
			if a.UpdatedAt.Equal(b.UpdatedAt) {
				return false
			}
			less = a.UpdatedAt.Before(b.UpdatedAt)
		case SortByName:
			if a.Name == b.Name {
				return false
			}
			less = a.Name < b.Name
		case SortByAge:
			if a.Age == b.Age {
				return false
			}
			less = a.Age < b.Age
		default: // SortByCreatedAt
			if a.CreatedAt.Equal(b.CreatedAt) {
				return false
			}
			less = a.CreatedAt.Before(b.CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	}
}

// Update merges partial input over the stored entity, forcibly preserving id
// and createdAt, re-validates the merged result, and only on success stores
// it, refreshes updatedAt, and appends an updated event carrying the
// previous values.
func (s *Store) Update(_ context.Context, id string, partial map[string]any) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, err := s.getLocked(id)
	if err != nil {
		return user.User{}, err
	}

	merged := previous.ToMap()
	maps.Copy(merged, partial)

	// id and createdAt are immutable regardless of what the caller sent.
	merged["id"] = previous.ID
	merged["createdAt"] = previous.CreatedAt
	merged["updatedAt"] = s.now()

	u, ferr := user.Decode(merged)
	if ferr != nil {
		return user.User{}, ferr
	}

	stored := u.Clone()
	s.users[stored.ID] = stored
	s.appendEvent(audit.Updated{UserID: stored.ID, Previous: previous})

	return stored.Clone(), nil
}

// Delete removes the entity, appends a deleted event with a full backup
// copy, and returns a confirmation message.
func (s *Store) Delete(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup, err := s.getLocked(id)
	if err != nil {
		return "", err
	}

	delete(s.users, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.appendEvent(audit.Deleted{UserID: id, Backup: backup})

	return fmt.Sprintf("user %q deleted", id), nil
}

// ListEvents returns audit events newest-first, optionally filtered by kind.
// Each event is re-validated through the dispatcher before being returned;
// events that fail are skipped with a warning, never surfaced as corrupt.
// (Entity reads surface corruption instead: callers depend on entity data,
// while the audit feed is advisory.)
func (s *Store) ListEvents(_ context.Context, kind *audit.Kind) ([]audit.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kind != nil && !kind.IsValid() {
		return nil, domain.NewFieldErrors(domain.FieldError{
			Field: "kind", Message: "must be a known event kind", Value: string(*kind),
		})
	}

	candidates := s.events.NewestFirst(kind)
	out := make([]audit.Event, 0, len(candidates))
	for _, e := range candidates {
		if err := e.Validate(); err != nil {
			s.logger.Warn("skipping invalid audit event",
				slog.String("event_id", e.ID),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// RecordLoginAttempt appends a login_attempt event for an existing entity to
// both the main audit log and the capped session feed.
func (s *Store) RecordLoginAttempt(_ context.Context, id string, success bool, remote string) (audit.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getLocked(id); err != nil {
		return audit.Event{}, err
	}

	e := s.appendEvent(audit.LoginAttempt{UserID: id, Success: success, Remote: remote})
	return e.Clone(), nil
}

// SessionFeed returns the capped login-attempt feed, newest first.
func (s *Store) SessionFeed() []audit.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.NewestFirst(nil)
}

// appendEvent builds the envelope for a payload and appends it. Must be
// called with s.mu held. Login attempts additionally feed the session log.
func (s *Store) appendEvent(p audit.Payload) audit.Event {
	e := audit.Event{
		ID:        s.newID(),
		Kind:      p.EventKind(),
		Timestamp: s.now(),
		Payload:   p,
	}
	s.events.Append(e)
	if e.Kind == audit.KindLoginAttempt {
		s.sessions.Append(e)
	}
	return e
}

// EventCount returns the number of retained audit events.
func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.Len()
}

// Len returns the number of stored entities.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Name identifies the store to the health registry.
func (s *Store) Name() string { return "user-store" }

// HealthCheck verifies the store's internal invariants: the insertion index
// matches the entity map and the logs are within their capacities.
func (s *Store) HealthCheck(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) != len(s.users) {
		return fmt.Errorf("insertion index has %d entries, entity map has %d", len(s.order), len(s.users))
	}
	for _, id := range s.order {
		if _, ok := s.users[id]; !ok {
			return fmt.Errorf("insertion index references missing entity %q", id)
		}
	}
	if s.events.Len() > s.events.Capacity() {
		return fmt.Errorf("audit log over capacity: %d > %d", s.events.Len(), s.events.Capacity())
	}
	if s.sessions.Len() > s.sessions.Capacity() {
		return fmt.Errorf("session feed over capacity: %d > %d", s.sessions.Len(), s.sessions.Capacity())
	}
	return nil
}

// Shutdown releases the store's collections. It satisfies samber/do's
// Shutdowner so the DI container tears the store down with the app.
func (s *Store) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]user.User)
	s.order = nil
	return nil
}

func checkID(id string) *domain.FieldErrors {
	if strings.TrimSpace(id) == "" {
		return domain.NewFieldErrors(domain.FieldError{
			Field: "id", Message: "must be a non-empty string", Value: id,
		})
	}
	return nil
}
