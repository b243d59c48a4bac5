package audit

import (
	"fmt"
	"testing"
	"time"
)

func loginEvent(n int) Event {
	return Event{
		ID:        fmt.Sprintf("evt-%d", n),
		Kind:      KindLoginAttempt,
		Timestamp: time.Date(2024, 3, 1, 13, 0, n, 0, time.UTC),
		Payload:   LoginAttempt{UserID: "u-1", Success: n%2 == 0},
	}
}

func TestLog_AppendTrimsOldest(t *testing.T) {
	t.Parallel()

	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Append(loginEvent(i))
	}

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	got := l.NewestFirst(nil)
	wantIDs := []string{"evt-4", "evt-3", "evt-2"}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("NewestFirst()[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestLog_CapacityNormalized(t *testing.T) {
	t.Parallel()

	l := NewLog(0)
	if l.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", l.Capacity())
	}
	l.Append(loginEvent(1))
	l.Append(loginEvent(2))
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestLog_NewestFirstFiltersByKind(t *testing.T) {
	t.Parallel()

	l := NewLog(10)
	l.Append(loginEvent(1))
	l.Append(Event{
		ID:        "evt-del",
		Kind:      KindDeleted,
		Timestamp: time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		Payload:   Deleted{UserID: "u-1", Backup: sampleUser("u-1")},
	})
	l.Append(loginEvent(2))

	kind := KindLoginAttempt
	got := l.NewestFirst(&kind)
	if len(got) != 2 {
		t.Fatalf("len(NewestFirst(login_attempt)) = %d, want 2", len(got))
	}
	if got[0].ID != "evt-2" || got[1].ID != "evt-1" {
		t.Errorf("filtered order = [%s %s], want [evt-2 evt-1]", got[0].ID, got[1].ID)
	}
}

func TestLog_NewestFirstReturnsCopies(t *testing.T) {
	t.Parallel()

	l := NewLog(10)
	l.Append(Event{
		ID:        "evt-del",
		Kind:      KindDeleted,
		Timestamp: time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		Payload:   Deleted{UserID: "u-1", Backup: sampleUser("u-1")},
	})

	out := l.NewestFirst(nil)
	out[0].Payload.(Deleted).Backup.Tags[0] = "mutated"

	again := l.NewestFirst(nil)
	if again[0].Payload.(Deleted).Backup.Tags[0] != "admin" {
		t.Error("NewestFirst() handed out aliased payload state")
	}
}
