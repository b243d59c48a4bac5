package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/ports"
)

// newTestStore builds a store with a deterministic clock and id sequence.
// Each call to now advances the clock by one second so created_at ordering
// follows insertion order.
func newTestStore(opts Options) *Store {
	var (
		tick int
		seq  int
	)
	if opts.Now == nil {
		opts.Now = func() time.Time {
			tick++
			return time.Date(2024, 3, 1, 12, 0, tick, 0, time.UTC)
		}
	}
	if opts.NewID == nil {
		opts.NewID = func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}
	}
	return New(opts, nil)
}

func validInput(name string, age int) map[string]any {
	return map[string]any{
		"name":     name,
		"contact":  map[string]any{"email": "ann@example.com"},
		"age":      age,
		"isActive": true,
		"tags":     []any{"admin"},
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() returned empty id")
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Errorf("timestamps = %v/%v, want equal and set", created.CreatedAt, created.UpdatedAt)
	}

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Ann" || got.Age != 30 {
		t.Errorf("GetByID() = %+v, want Ann/30", got)
	}
}

func TestStore_CreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	input := validInput("Ann", 30)
	input["age"] = -1
	delete(input, "name")

	_, err := s.Create(context.Background(), input)
	if !domain.IsValidationError(err) {
		t.Fatalf("Create() error = %v, want validation error", err)
	}
	fe := domain.Classify(err).(*domain.FieldErrors)
	if !fe.Has("age") || !fe.Has("name") {
		t.Errorf("FieldErrors = %v, want entries for age and name", fe.Errors)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after failed create, want 0", s.Len())
	}
	if s.EventCount() != 0 {
		t.Errorf("EventCount() = %d after failed create, want 0", s.EventCount())
	}
}

func TestStore_CreateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	input := validInput("Ann", 30)

	if _, err := s.Create(context.Background(), input); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := input["id"]; ok {
		t.Error("Create() wrote id into the caller's map")
	}
	if _, ok := input["createdAt"]; ok {
		t.Error("Create() wrote createdAt into the caller's map")
	}
}

func TestStore_HandedOutCopiesAreIsolated(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.Tags[0] = "mutated"

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Tags[0] != "admin" {
		t.Errorf("stored tags aliased caller copy: %v", got.Tags)
	}
}

func TestStore_NestedMetadataIsolated(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	input := validInput("Ann", 30)
	input["metadata"] = map[string]any{"prefs": map[string]any{"theme": "dark"}}

	created, err := s.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Mutating the caller's nested map after Create must not reach stored state.
	input["metadata"].(map[string]any)["prefs"].(map[string]any)["theme"] = "corrupted-by-caller"

	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if theme := got.Metadata["prefs"].(map[string]any)["theme"]; theme != "dark" {
		t.Errorf("stored metadata aliased the caller's nested map: theme=%v", theme)
	}

	// Mutating a handed-out copy's nested map must not reach stored state either.
	got.Metadata["prefs"].(map[string]any)["theme"] = "corrupted-by-reader"

	again, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if theme := again.Metadata["prefs"].(map[string]any)["theme"]; theme != "dark" {
		t.Errorf("handed-out copy shares nested metadata with stored state: theme=%v", theme)
	}
}

func TestStore_GetByID_Misses(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	_, err := s.GetByID(ctx, "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID(miss) error = %v, want ErrNotFound", err)
	}

	_, err = s.GetByID(ctx, "  ")
	if !domain.IsValidationError(err) {
		t.Errorf("GetByID(blank) error = %v, want validation error", err)
	}
}

func TestStore_List_Pagination(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := s.Create(ctx, validInput(fmt.Sprintf("User%d", i), 20+i)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page1, err := s.List(ctx, ports.ListQuery{Page: 1, Limit: 2, SortBy: "created_at", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page1.Total != 5 || page1.Pages != 3 {
		t.Errorf("Total/Pages = %d/%d, want 5/3", page1.Total, page1.Pages)
	}
	if len(page1.Items) != 2 || page1.Items[0].Name != "User0" {
		t.Errorf("page 1 = %v, want [User0 User1]", names(page1))
	}

	page3, err := s.List(ctx, ports.ListQuery{Page: 3, Limit: 2, SortBy: "created_at", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page3.Items) != 1 || page3.Items[0].Name != "User4" {
		t.Errorf("page 3 = %v, want [User4]", names(page3))
	}

	// A page past the end is valid but empty.
	page9, err := s.List(ctx, ports.ListQuery{Page: 9, Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page9.Items) != 0 || page9.Total != 5 {
		t.Errorf("page 9 = %v (total %d), want empty with total 5", names(page9), page9.Total)
	}
}

func names(p ports.Page[user.User]) []string {
	out := make([]string, 0, len(p.Items))
	for _, u := range p.Items {
		out = append(out, u.Name)
	}
	return out
}

func TestStore_List_RejectsBadParams(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{MaxPageSize: 10})
	_, err := s.List(context.Background(), ports.ListQuery{
		Page: 0, Limit: 999, SortBy: "color", SortOrder: "sideways",
	})
	if !domain.IsValidationError(err) {
		t.Fatalf("List() error = %v, want validation error", err)
	}
	fe := domain.Classify(err).(*domain.FieldErrors)
	for _, field := range []string{"page", "limit", "sortBy", "sortOrder"} {
		if !fe.Has(field) {
			t.Errorf("FieldErrors missing %q: %v", field, fe.Errors)
		}
	}
}

func TestStore_List_SortWithTieBreak(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	// Same age for the first and third user; insertion order breaks the tie.
	for _, in := range []struct {
		name string
		age  int
	}{{"Ann", 30}, {"Bo", 25}, {"Cy", 30}} {
		if _, err := s.Create(ctx, validInput(in.name, in.age)); err != nil {
			t.Fatalf("Create(%s) error = %v", in.name, err)
		}
	}

	page, err := s.List(ctx, ports.ListQuery{Page: 1, Limit: 10, SortBy: "age", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	got := make([]string, 0, len(page.Items))
	for _, u := range page.Items {
		got = append(got, u.Name)
	}
	want := []string{"Bo", "Ann", "Cy"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted names = %v, want %v", got, want)
		}
	}
}

func TestStore_List_DefaultIsCreatedAtDesc(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()
	for _, name := range []string{"First", "Second"} {
		if _, err := s.Create(ctx, validInput(name, 30)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page, err := s.List(ctx, ports.ListQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Items[0].Name != "Second" {
		t.Errorf("default order first item = %s, want Second (newest first)", page.Items[0].Name)
	}
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := s.Update(ctx, created.ID, map[string]any{
		"age": 31.0,
		"id":  "attacker-chosen",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Age != 31 {
		t.Errorf("Age = %d, want 31", updated.Age)
	}
	if updated.ID != created.ID {
		t.Errorf("ID = %s, want immutable %s", updated.ID, created.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want after %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestStore_UpdateRejectsInvalidMerge(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = s.Update(ctx, created.ID, map[string]any{"age": -1})
	if !domain.IsValidationError(err) {
		t.Fatalf("Update() error = %v, want validation error", err)
	}

	// Stored state untouched on failure.
	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Age != 30 {
		t.Errorf("Age after failed update = %d, want 30", got.Age)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	msg, err := s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if msg == "" {
		t.Error("Delete() returned empty confirmation")
	}

	_, err = s.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() after delete = %v, want nil", err)
	}
}

func TestStore_Lifecycle(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Update(ctx, created.ID, map[string]any{"age": 31.0}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Update(ctx, created.ID, map[string]any{"age": 32.0}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update(deleted) error = %v, want ErrNotFound", err)
	}

	events, err := s.ListEvents(ctx, nil)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	// Newest first: deleted, updated, created.
	wantKinds := []audit.Kind{audit.KindDeleted, audit.KindUpdated, audit.KindCreated}
	if len(events) != len(wantKinds) {
		t.Fatalf("len(events) = %d, want %d", len(events), len(wantKinds))
	}
	for i, want := range wantKinds {
		if events[i].Kind != want {
			t.Errorf("events[%d].Kind = %s, want %s", i, events[i].Kind, want)
		}
	}

	// The deleted event carries a full backup with the updated age.
	backup := events[0].Payload.(audit.Deleted).Backup
	if backup.Age != 31 {
		t.Errorf("deleted backup age = %d, want 31", backup.Age)
	}
	// The updated event carries the previous values.
	previous := events[1].Payload.(audit.Updated).Previous
	if previous.Age != 30 {
		t.Errorf("updated previous age = %d, want 30", previous.Age)
	}
}

func TestStore_ListEvents_FilterAndUnknownKind(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.RecordLoginAttempt(ctx, created.ID, true, "10.0.0.1"); err != nil {
		t.Fatalf("RecordLoginAttempt() error = %v", err)
	}

	kind := audit.KindLoginAttempt
	events, err := s.ListEvents(ctx, &kind)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 1 || events[0].Kind != audit.KindLoginAttempt {
		t.Errorf("filtered events = %v, want one login_attempt", events)
	}

	bad := audit.Kind("archived")
	if _, err := s.ListEvents(ctx, &bad); !domain.IsValidationError(err) {
		t.Errorf("ListEvents(unknown kind) error = %v, want validation error", err)
	}
}

func TestStore_AuditRetention(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{AuditRetention: 3, SessionRetention: 2})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.RecordLoginAttempt(ctx, created.ID, i%2 == 0, "10.0.0.1"); err != nil {
			t.Fatalf("RecordLoginAttempt() error = %v", err)
		}
	}

	if s.EventCount() != 3 {
		t.Errorf("EventCount() = %d, want retention cap 3", s.EventCount())
	}
	if got := len(s.SessionFeed()); got != 2 {
		t.Errorf("len(SessionFeed()) = %d, want session cap 2", got)
	}
	if err := s.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestStore_RecordLoginAttempt_RequiresEntity(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	_, err := s.RecordLoginAttempt(context.Background(), "ghost", true, "10.0.0.1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RecordLoginAttempt(miss) error = %v, want ErrNotFound", err)
	}
}

func TestStore_CorruptionSurfacedOnRead(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	created, err := s.Create(ctx, validInput("Ann", 30))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Corrupt the stored copy behind the store's back.
	s.mu.Lock()
	corrupted := s.users[created.ID]
	corrupted.Age = -5
	s.users[created.ID] = corrupted
	s.mu.Unlock()

	_, err = s.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrCorrupted) {
		t.Fatalf("GetByID(corrupted) error = %v, want ErrCorrupted", err)
	}
	be := domain.Classify(err).(*domain.BusinessError)
	if be.Code != domain.CodeDataCorruption {
		t.Errorf("Code = %s, want %s", be.Code, domain.CodeDataCorruption)
	}
}

func TestStore_HealthCheck_DetectsIndexDrift(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	ctx := context.Background()

	if _, err := s.Create(ctx, validInput("Ann", 30)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	s.mu.Lock()
	s.order = append(s.order, "phantom")
	s.mu.Unlock()

	if err := s.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() = nil, want index drift error")
	}
}

func TestStore_Shutdown(t *testing.T) {
	t.Parallel()

	s := newTestStore(Options{})
	if _, err := s.Create(context.Background(), validInput("Ann", 30)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after Shutdown = %d, want 0", s.Len())
	}
}
