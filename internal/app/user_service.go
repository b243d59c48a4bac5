// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the store through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/platform/telemetry"
	"github.com/mwhidden/vetted/internal/ports"
	"github.com/mwhidden/vetted/internal/validate"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. It adds structured logging,
// metrics, and the top-level assertion boundary around the store; all
// validation and state transitions live below it. Expected failures travel
// as failure Results; only trust-boundary assertions panic, and they are
// converted here into a generic business/INTERNAL_ERROR so the boundary
// never crashes.
type UserService struct {
	store   ports.UserStore
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewUserService creates a UserService. A nil metrics value disables
// instrument recording.
func NewUserService(store ports.UserStore, logger *slog.Logger, metrics *telemetry.Metrics) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{store: store, logger: logger, metrics: metrics}
}

// recoverToResult converts an escaped *validate.AssertionError into a
// failure Result carrying business/INTERNAL_ERROR. Assertions signal
// defects, not conditions to recover from, so the full detail is logged
// while the caller sees only the generic error. Any other panic value is
// re-raised for the transport-level recovery middleware.
func recoverToResult[T any](ctx context.Context, logger *slog.Logger, op string, res *domain.Result[T]) {
	v := recover()
	if v == nil {
		return
	}
	ae, ok := v.(*validate.AssertionError)
	if !ok {
		panic(v)
	}
	logger.ErrorContext(ctx, "assertion failed at trust boundary",
		slog.String("operation", op),
		slog.String("field", ae.Field),
		slog.String("expected", ae.Expected),
		slog.Any("received", ae.Received),
	)
	*res = domain.Failure[T](domain.Internal(ae.Error()))
}

func (s *UserService) record(ctx context.Context, op string, err error) {
	if s.metrics != nil {
		s.metrics.RecordEntityOp(ctx, op, err)
	}
}

// Create validates and stores a new entity built from raw untyped input.
func (s *UserService) Create(ctx context.Context, raw map[string]any) (res domain.Result[user.User]) {
	defer recoverToResult(ctx, s.logger, "Create", &res)

	s.logger.InfoContext(ctx, "creating user")

	u, err := s.store.Create(ctx, raw)
	s.record(ctx, "create", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return domain.Failure[user.User](domain.Classify(err))
	}

	return domain.Success(u)
}

// Get returns a single entity by id.
func (s *UserService) Get(ctx context.Context, id string) (res domain.Result[user.User]) {
	defer recoverToResult(ctx, s.logger, "Get", &res)

	s.logger.InfoContext(ctx, "fetching user", slog.String("user_id", id))

	u, err := s.store.GetByID(ctx, id)
	s.record(ctx, "get", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "Get"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return domain.Failure[user.User](domain.Classify(err))
	}

	return domain.Success(u)
}

// List returns one page of the sorted entity set.
func (s *UserService) List(ctx context.Context, q ports.ListQuery) (res domain.Result[ports.Page[user.User]]) {
	defer recoverToResult(ctx, s.logger, "List", &res)

	s.logger.InfoContext(ctx, "listing users",
		slog.Int("page", q.Page),
		slog.Int("limit", q.Limit),
	)

	page, err := s.store.List(ctx, q)
	s.record(ctx, "list", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return domain.Failure[ports.Page[user.User]](domain.Classify(err))
	}

	return domain.Success(page, map[string]any{"total": page.Total})
}

// Update merges partial input over the stored entity and re-validates it.
func (s *UserService) Update(ctx context.Context, id string, partial map[string]any) (res domain.Result[user.User]) {
	defer recoverToResult(ctx, s.logger, "Update", &res)

	s.logger.InfoContext(ctx, "updating user", slog.String("user_id", id))

	u, err := s.store.Update(ctx, id, partial)
	s.record(ctx, "update", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "Update"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return domain.Failure[user.User](domain.Classify(err))
	}

	return domain.Success(u)
}

// Delete removes the entity and returns a confirmation message.
func (s *UserService) Delete(ctx context.Context, id string) (res domain.Result[string]) {
	defer recoverToResult(ctx, s.logger, "Delete", &res)

	s.logger.InfoContext(ctx, "deleting user", slog.String("user_id", id))

	msg, err := s.store.Delete(ctx, id)
	s.record(ctx, "delete", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("operation", "Delete"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return domain.Failure[string](domain.Classify(err))
	}

	return domain.Success(msg)
}

// ListEvents returns audit events newest-first, optionally filtered by kind.
func (s *UserService) ListEvents(ctx context.Context, kind *audit.Kind) (res domain.Result[[]audit.Event]) {
	defer recoverToResult(ctx, s.logger, "ListEvents", &res)

	events, err := s.store.ListEvents(ctx, kind)
	s.record(ctx, "list_events", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list audit events",
			slog.String("operation", "ListEvents"),
			slog.Any("error", err),
		)
		return domain.Failure[[]audit.Event](domain.Classify(err))
	}

	return domain.Success(events)
}

// RecordLogin appends a login_attempt audit event for the entity.
func (s *UserService) RecordLogin(ctx context.Context, id string, success bool, remote string) (res domain.Result[audit.Event]) {
	defer recoverToResult(ctx, s.logger, "RecordLogin", &res)

	s.logger.InfoContext(ctx, "recording login attempt",
		slog.String("user_id", id),
		slog.Bool("success", success),
	)

	e, err := s.store.RecordLoginAttempt(ctx, id, success, remote)
	s.record(ctx, "record_login", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record login attempt",
			slog.String("operation", "RecordLogin"),
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return domain.Failure[audit.Event](domain.Classify(err))
	}

	return domain.Success(e)
}
