package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/ports"
	"github.com/mwhidden/vetted/internal/validate"
	"github.com/mwhidden/vetted/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validUser() user.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return user.User{
		ID:        "u-1",
		Name:      "Ann",
		Contact:   user.ContactInfo{Email: "ann@example.com"},
		Age:       30,
		Active:    true,
		Tags:      []string{"admin"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewUserService_NilLogger(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockUserStore(t)

	svc := NewUserService(store, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewUserService(nil logger) should create a no-op logger, got nil")
	}
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()

	t.Run("returns success with the stored entity", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore(t)
		svc := NewUserService(store, discardLogger(), nil)

		want := validUser()
		store.EXPECT().Create(mock.Anything, mock.Anything).Return(want, nil)

		res := svc.Create(context.Background(), map[string]any{"name": "Ann"})
		if !res.IsSuccess() {
			t.Fatalf("Create() failure = %v, want success", res.Err())
		}
		if res.Data().ID != "u-1" {
			t.Errorf("Data().ID = %s, want u-1", res.Data().ID)
		}
	})

	t.Run("classifies a validation failure", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore(t)
		svc := NewUserService(store, discardLogger(), nil)

		ferr := domain.NewFieldErrors(domain.FieldError{Field: "age", Message: "must be a positive integer"})
		store.EXPECT().Create(mock.Anything, mock.Anything).Return(user.User{}, ferr)

		res := svc.Create(context.Background(), map[string]any{"age": -1})
		if !res.IsFailure() {
			t.Fatal("Create() = success, want failure")
		}
		if res.Err().Kind() != domain.KindValidation {
			t.Errorf("Err().Kind() = %s, want validation", res.Err().Kind())
		}
	})

	t.Run("wraps an unclassified store error as internal", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore(t)
		svc := NewUserService(store, discardLogger(), nil)

		store.EXPECT().Create(mock.Anything, mock.Anything).Return(user.User{}, errors.New("disk on fire"))

		res := svc.Create(context.Background(), map[string]any{})
		if res.Err() == nil || !errors.Is(res.Err(), domain.ErrInternal) {
			t.Errorf("Err() = %v, want wrapping ErrInternal", res.Err())
		}
	})
}

func TestUserService_Get(t *testing.T) {
	t.Parallel()

	t.Run("maps a miss to business not found", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore(t)
		svc := NewUserService(store, discardLogger(), nil)

		store.EXPECT().GetByID(mock.Anything, "ghost").Return(user.User{}, domain.NotFound("ghost"))

		res := svc.Get(context.Background(), "ghost")
		if !res.IsFailure() {
			t.Fatal("Get() = success, want failure")
		}
		if !errors.Is(res.Err(), domain.ErrNotFound) {
			t.Errorf("Err() = %v, want wrapping ErrNotFound", res.Err())
		}
	})

	t.Run("surfaces data corruption", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore(t)
		svc := NewUserService(store, discardLogger(), nil)

		corrupt := domain.Corrupted("u-1", errors.New("age: must be a positive integer"))
		store.EXPECT().GetByID(mock.Anything, "u-1").Return(user.User{}, corrupt)

		res := svc.Get(context.Background(), "u-1")
		if !errors.Is(res.Err(), domain.ErrCorrupted) {
			t.Errorf("Err() = %v, want wrapping ErrCorrupted", res.Err())
		}
	})
}

func TestUserService_List(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	page := ports.Page[user.User]{
		Items: []user.User{validUser()},
		Page:  1,
		Limit: 20,
		Total: 41,
		Pages: 3,
	}
	store.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil)

	res := svc.List(context.Background(), ports.ListQuery{Page: 1, Limit: 20})
	if !res.IsSuccess() {
		t.Fatalf("List() failure = %v, want success", res.Err())
	}
	if res.Data().Total != 41 {
		t.Errorf("Data().Total = %d, want 41", res.Data().Total)
	}
	if res.Metadata()["total"] != 41 {
		t.Errorf("Metadata()[total] = %v, want 41", res.Metadata()["total"])
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	store.EXPECT().Delete(mock.Anything, "u-1").Return(`user "u-1" deleted`, nil)

	res := svc.Delete(context.Background(), "u-1")
	if !res.IsSuccess() {
		t.Fatalf("Delete() failure = %v, want success", res.Err())
	}
	if res.Data() == "" {
		t.Error("Data() = empty, want confirmation message")
	}
}

func TestUserService_ListEvents(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	kind := audit.KindLoginAttempt
	events := []audit.Event{{
		ID:        "evt-1",
		Kind:      audit.KindLoginAttempt,
		Timestamp: time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC),
		Payload:   audit.LoginAttempt{UserID: "u-1", Success: true},
	}}
	store.EXPECT().ListEvents(mock.Anything, &kind).Return(events, nil)

	res := svc.ListEvents(context.Background(), &kind)
	if !res.IsSuccess() {
		t.Fatalf("ListEvents() failure = %v, want success", res.Err())
	}
	if len(res.Data()) != 1 {
		t.Errorf("len(Data()) = %d, want 1", len(res.Data()))
	}
}

func TestUserService_RecordLogin(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	event := audit.Event{
		ID:        "evt-1",
		Kind:      audit.KindLoginAttempt,
		Timestamp: time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC),
		Payload:   audit.LoginAttempt{UserID: "u-1", Success: false, Remote: "10.0.0.2"},
	}
	store.EXPECT().RecordLoginAttempt(mock.Anything, "u-1", false, "10.0.0.2").Return(event, nil)

	res := svc.RecordLogin(context.Background(), "u-1", false, "10.0.0.2")
	if !res.IsSuccess() {
		t.Fatalf("RecordLogin() failure = %v, want success", res.Err())
	}
	if res.Data().Kind != audit.KindLoginAttempt {
		t.Errorf("Data().Kind = %s, want login_attempt", res.Data().Kind)
	}
}

func TestUserService_RecoversAssertionPanics(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	store.EXPECT().GetByID(mock.Anything, "u-1").RunAndReturn(func(ctx context.Context, id string) (user.User, error) {
		panic(&validate.AssertionError{Field: "id", Received: "", Expected: "non-empty string"})
	})

	res := svc.Get(context.Background(), "u-1")
	if !res.IsFailure() {
		t.Fatal("Get() = success, want recovered failure")
	}
	be, ok := res.Err().(*domain.BusinessError)
	if !ok {
		t.Fatalf("Err() = %T, want *BusinessError", res.Err())
	}
	if be.Code != domain.CodeInternalError {
		t.Errorf("Code = %s, want %s", be.Code, domain.CodeInternalError)
	}
}

func TestUserService_RethrowsForeignPanics(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store, discardLogger(), nil)

	store.EXPECT().Delete(mock.Anything, "u-1").RunAndReturn(func(ctx context.Context, id string) (string, error) {
		panic("unrelated")
	})

	defer func() {
		if r := recover(); r != "unrelated" {
			t.Errorf("recover() = %v, want the original panic value", r)
		}
	}()
	svc.Delete(context.Background(), "u-1")
	t.Error("Delete() returned, want panic to propagate")
}
