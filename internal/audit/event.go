// Package audit defines the tagged-union audit event model: a generic
// envelope discriminated by event kind, kind-specific payloads, a dispatcher
// that narrows untyped records into events, and an append-only capped log.
package audit

import (
	"fmt"
	"time"

	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/domain/user"
	"github.com/mwhidden/vetted/internal/validate"
)

// Kind is the discriminant selecting an event variant. The set is closed;
// unknown kinds are rejected by the dispatcher, never silently accepted.
type Kind string

const (
	KindCreated      Kind = "created"
	KindUpdated      Kind = "updated"
	KindDeleted      Kind = "deleted"
	KindLoginAttempt Kind = "login_attempt"
)

// Kinds lists every known variant, in declaration order.
var Kinds = []Kind{KindCreated, KindUpdated, KindDeleted, KindLoginAttempt}

// IsValid reports whether k names a known variant.
func (k Kind) IsValid() bool {
	switch k {
	case KindCreated, KindUpdated, KindDeleted, KindLoginAttempt:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

// Payload is the sealed set of kind-specific event payloads. Exactly four
// types implement it, one per Kind.
type Payload interface {
	EventKind() Kind
	sealed()
}

// Compile-time checks that each variant implements Payload.
var (
	_ Payload = Created{}
	_ Payload = Updated{}
	_ Payload = Deleted{}
	_ Payload = LoginAttempt{}
)

// Created records a successful entity creation with a snapshot of the
// stored entity.
type Created struct {
	User user.User
}

// EventKind reports KindCreated.
func (Created) EventKind() Kind { return KindCreated }
func (Created) sealed()         {}

// Updated records a successful mutation and carries the full previous
// entity for audit and rollback purposes.
type Updated struct {
	UserID   string
	Previous user.User
}

// EventKind reports KindUpdated.
func (Updated) EventKind() Kind { return KindUpdated }
func (Updated) sealed()         {}

// Deleted records an entity removal and carries a full backup copy of the
// removed entity.
type Deleted struct {
	UserID string
	Backup user.User
}

// EventKind reports KindDeleted.
func (Deleted) EventKind() Kind { return KindDeleted }
func (Deleted) sealed()         {}

// LoginAttempt records an authentication attempt against a stored entity.
type LoginAttempt struct {
	UserID  string
	Success bool
	Remote  string
}

// EventKind reports KindLoginAttempt.
func (LoginAttempt) EventKind() Kind { return KindLoginAttempt }
func (LoginAttempt) sealed()         {}

// Event is the tagged union: a generic envelope plus a kind-specific
// payload. Events are immutable once appended to a Log.
type Event struct {
	ID        string
	Kind      Kind
	Timestamp time.Time
	Payload   Payload
}

// Validate checks the envelope and then the payload for its kind. The kind
// switch is exhaustive over the closed variant set; the default branch
// exists only to fail loudly if a variant is ever added without a case
// here.
func (e Event) Validate() error {
	if !validate.IsNonEmptyString(e.ID) {
		return fmt.Errorf("audit event: id %s", domain.MsgMissing)
	}
	if !e.Kind.IsValid() {
		return fmt.Errorf("audit event: unknown kind %q", e.Kind)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("audit event %s: timestamp %s", e.ID, domain.MsgMissing)
	}
	if e.Payload == nil {
		return fmt.Errorf("audit event %s: payload %s", e.ID, domain.MsgMissing)
	}
	if e.Payload.EventKind() != e.Kind {
		return fmt.Errorf("audit event %s: payload kind %q does not match envelope kind %q",
			e.ID, e.Payload.EventKind(), e.Kind)
	}

	switch p := e.Payload.(type) {
	case Created:
		if err := p.User.Validate(); err != nil {
			return fmt.Errorf("audit event %s: created payload: %w", e.ID, err)
		}
	case Updated:
		if !validate.IsNonEmptyString(p.UserID) {
			return fmt.Errorf("audit event %s: updated payload: userId %s", e.ID, domain.MsgMissing)
		}
		if err := p.Previous.Validate(); err != nil {
			return fmt.Errorf("audit event %s: updated payload: %w", e.ID, err)
		}
	case Deleted:
		if !validate.IsNonEmptyString(p.UserID) {
			return fmt.Errorf("audit event %s: deleted payload: userId %s", e.ID, domain.MsgMissing)
		}
		if err := p.Backup.Validate(); err != nil {
			return fmt.Errorf("audit event %s: deleted payload: %w", e.ID, err)
		}
	case LoginAttempt:
		if !validate.IsNonEmptyString(p.UserID) {
			return fmt.Errorf("audit event %s: login_attempt payload: userId %s", e.ID, domain.MsgMissing)
		}
	default:
		// Unreachable while the Payload set stays closed.
		return fmt.Errorf("audit event %s: unhandled payload type %T", e.ID, e.Payload)
	}
	return nil
}

// Clone deep-copies the event, including any entity snapshots inside the
// payload, so log readers cannot reach stored state.
func (e Event) Clone() Event {
	c := e
	switch p := e.Payload.(type) {
	case Created:
		c.Payload = Created{User: p.User.Clone()}
	case Updated:
		c.Payload = Updated{UserID: p.UserID, Previous: p.Previous.Clone()}
	case Deleted:
		c.Payload = Deleted{UserID: p.UserID, Backup: p.Backup.Clone()}
	case LoginAttempt:
		c.Payload = p
	default:
		// Unreachable while the Payload set stays closed.
		panic(fmt.Sprintf("audit: unhandled payload type %T", e.Payload))
	}
	return c
}

// Decode narrows an untyped record into an Event. The generic envelope is
// validated first (discriminant present, timestamp present and valid,
// payload a record); only then is the kind-specific payload validator
// applied. Unknown discriminant values are rejected.
func Decode(raw any) (Event, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Event{}, fmt.Errorf("audit event: must be a plain object, got %T", raw)
	}

	id, ok := m["id"].(string)
	if !ok || !validate.IsNonEmptyString(id) {
		return Event{}, fmt.Errorf("audit event: id %s", domain.MsgMissing)
	}

	kindRaw, present := m["type"]
	if !present {
		return Event{}, fmt.Errorf("audit event %s: type %s", id, domain.MsgMissing)
	}
	kindStr, ok := kindRaw.(string)
	if !ok {
		return Event{}, fmt.Errorf("audit event %s: type must be a string", id)
	}
	kind := Kind(kindStr)
	if !kind.IsValid() {
		return Event{}, fmt.Errorf("audit event %s: unknown kind %q", id, kindStr)
	}

	ts, ok := validate.AsTime(m["timestamp"])
	if !ok {
		return Event{}, fmt.Errorf("audit event %s: timestamp %s", id, domain.MsgMissing)
	}

	payloadRaw, present := m["payload"]
	if !present || !validate.IsPlainMap(payloadRaw) {
		return Event{}, fmt.Errorf("audit event %s: payload must be a plain object", id)
	}
	pm := payloadRaw.(map[string]any)

	payload, err := decodePayload(kind, pm)
	if err != nil {
		return Event{}, fmt.Errorf("audit event %s: %w", id, err)
	}

	return Event{ID: id, Kind: kind, Timestamp: ts, Payload: payload}, nil
}

// decodePayload dispatches on the discriminant to the variant-specific
// validator. Every known kind has a case; the default fails loudly.
func decodePayload(kind Kind, pm map[string]any) (Payload, error) {
	switch kind {
	case KindCreated:
		u, ferr := user.Decode(pm["user"])
		if ferr != nil {
			return nil, fmt.Errorf("created payload: %w", ferr)
		}
		return Created{User: u}, nil

	case KindUpdated:
		id, ok := pm["userId"].(string)
		if !ok || !validate.IsNonEmptyString(id) {
			return nil, fmt.Errorf("updated payload: userId %s", domain.MsgMissing)
		}
		prev, ferr := user.Decode(pm["previous"])
		if ferr != nil {
			return nil, fmt.Errorf("updated payload: %w", ferr)
		}
		return Updated{UserID: id, Previous: prev}, nil

	case KindDeleted:
		id, ok := pm["userId"].(string)
		if !ok || !validate.IsNonEmptyString(id) {
			return nil, fmt.Errorf("deleted payload: userId %s", domain.MsgMissing)
		}
		backup, ferr := user.Decode(pm["backup"])
		if ferr != nil {
			return nil, fmt.Errorf("deleted payload: %w", ferr)
		}
		return Deleted{UserID: id, Backup: backup}, nil

	case KindLoginAttempt:
		id, ok := pm["userId"].(string)
		if !ok || !validate.IsNonEmptyString(id) {
			return nil, fmt.Errorf("login_attempt payload: userId %s", domain.MsgMissing)
		}
		success, ok := pm["success"].(bool)
		if !ok {
			return nil, fmt.Errorf("login_attempt payload: success must be a boolean")
		}
		remote, _ := pm["remote"].(string)
		return LoginAttempt{UserID: id, Success: success, Remote: remote}, nil

	default:
		// Unreachable: Decode rejects unknown kinds before dispatching.
		return nil, fmt.Errorf("unhandled kind %q", kind)
	}
}
