package audit

import (
	"strings"
	"testing"
	"time"

	"github.com/mwhidden/vetted/internal/domain/user"
)

func sampleUser(id string) user.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return user.User{
		ID:        id,
		Name:      "Ann",
		Contact:   user.ContactInfo{Email: "ann@example.com"},
		Age:       30,
		Active:    true,
		Tags:      []string{"admin"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sampleEvent(kind Kind) Event {
	ts := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	e := Event{ID: "evt-1", Kind: kind, Timestamp: ts}
	switch kind {
	case KindCreated:
		e.Payload = Created{User: sampleUser("u-1")}
	case KindUpdated:
		e.Payload = Updated{UserID: "u-1", Previous: sampleUser("u-1")}
	case KindDeleted:
		e.Payload = Deleted{UserID: "u-1", Backup: sampleUser("u-1")}
	case KindLoginAttempt:
		e.Payload = LoginAttempt{UserID: "u-1", Success: true, Remote: "10.0.0.1"}
	}
	return e
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		if !k.IsValid() {
			t.Errorf("Kind(%q).IsValid() = false, want true", k)
		}
	}
	for _, k := range []Kind{"", "CREATED", "login-attempt", "removed"} {
		if k.IsValid() {
			t.Errorf("Kind(%q).IsValid() = true, want false", k)
		}
	}
}

func TestEvent_Validate(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()
			if err := sampleEvent(kind).Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEvent_ValidateEnvelopeFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Event)
		wantMsg string
	}{
		{
			name:    "missing id",
			mutate:  func(e *Event) { e.ID = " " },
			wantMsg: "id",
		},
		{
			name:    "unknown kind",
			mutate:  func(e *Event) { e.Kind = "exploded" },
			wantMsg: "unknown kind",
		},
		{
			name:    "zero timestamp",
			mutate:  func(e *Event) { e.Timestamp = time.Time{} },
			wantMsg: "timestamp",
		},
		{
			name:    "nil payload",
			mutate:  func(e *Event) { e.Payload = nil },
			wantMsg: "payload",
		},
		{
			name:    "payload kind mismatch",
			mutate:  func(e *Event) { e.Kind = KindDeleted },
			wantMsg: "does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := sampleEvent(KindCreated)
			tt.mutate(&e)
			err := e.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %q, missing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestEvent_ValidatePayloadFailures(t *testing.T) {
	t.Parallel()

	t.Run("created with invalid snapshot", func(t *testing.T) {
		t.Parallel()
		e := sampleEvent(KindCreated)
		bad := sampleUser("u-1")
		bad.Age = -1
		e.Payload = Created{User: bad}
		if err := e.Validate(); err == nil {
			t.Error("Validate() = nil, want error for invalid snapshot")
		}
	})

	t.Run("login attempt without user id", func(t *testing.T) {
		t.Parallel()
		e := sampleEvent(KindLoginAttempt)
		e.Payload = LoginAttempt{Success: true}
		if err := e.Validate(); err == nil {
			t.Error("Validate() = nil, want error for missing userId")
		}
	})
}

func TestEvent_CloneIsolation(t *testing.T) {
	t.Parallel()

	e := sampleEvent(KindDeleted)
	c := e.Clone()

	backup := c.Payload.(Deleted).Backup
	backup.Tags[0] = "mutated"

	if e.Payload.(Deleted).Backup.Tags[0] != "admin" {
		t.Errorf("Clone() aliased payload snapshot: %v", e.Payload.(Deleted).Backup.Tags)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("login attempt", func(t *testing.T) {
		t.Parallel()
		e, err := Decode(map[string]any{
			"id":        "evt-9",
			"type":      "login_attempt",
			"timestamp": "2024-03-01T13:00:00Z",
			"payload": map[string]any{
				"userId":  "u-1",
				"success": false,
				"remote":  "10.0.0.2",
			},
		})
		if err != nil {
			t.Fatalf("Decode() err = %v", err)
		}
		p, ok := e.Payload.(LoginAttempt)
		if !ok {
			t.Fatalf("Payload = %T, want LoginAttempt", e.Payload)
		}
		if p.UserID != "u-1" || p.Success || p.Remote != "10.0.0.2" {
			t.Errorf("Payload = %+v, want decoded fields", p)
		}
	})

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		e, err := Decode(map[string]any{
			"id":        "evt-10",
			"type":      "created",
			"timestamp": "2024-03-01T13:00:00Z",
			"payload":   map[string]any{"user": sampleUser("u-3").ToMap()},
		})
		if err != nil {
			t.Fatalf("Decode() err = %v", err)
		}
		if e.Payload.(Created).User.ID != "u-3" {
			t.Errorf("decoded user = %+v, want id u-3", e.Payload.(Created).User)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(map[string]any{
			"id":        "evt-11",
			"type":      "archived",
			"timestamp": "2024-03-01T13:00:00Z",
			"payload":   map[string]any{},
		})
		if err == nil || !strings.Contains(err.Error(), "unknown kind") {
			t.Errorf("Decode() err = %v, want unknown kind rejection", err)
		}
	})

	t.Run("envelope checked before payload", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(map[string]any{
			"id":      "evt-12",
			"type":    "created",
			"payload": map[string]any{"user": "not a record"},
		})
		if err == nil || !strings.Contains(err.Error(), "timestamp") {
			t.Errorf("Decode() err = %v, want timestamp failure before payload", err)
		}
	})

	t.Run("rejects non-object", func(t *testing.T) {
		t.Parallel()
		if _, err := Decode(42); err == nil {
			t.Error("Decode(42) err = nil, want error")
		}
	})
}
