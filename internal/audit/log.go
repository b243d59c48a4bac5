package audit

// Log is an append-only event log with a fixed retention capacity. Events
// are never mutated or removed individually; once the capacity is exceeded
// the oldest events are trimmed in bulk so the last capacity events remain.
//
// Log is not safe for concurrent use on its own; the store serializes all
// access under its own lock.
type Log struct {
	capacity int
	events   []Event
}

// NewLog creates a log retaining at most capacity events. A capacity below
// one is normalized to one so the log always retains the newest event.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity}
}

// Append adds an event, trimming the oldest entries once the capacity is
// exceeded.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
	if excess := len(l.events) - l.capacity; excess > 0 {
		l.events = append(l.events[:0], l.events[excess:]...)
	}
}

// Len returns the number of retained events.
func (l *Log) Len() int { return len(l.events) }

// Capacity returns the retention limit.
func (l *Log) Capacity() int { return l.capacity }

// NewestFirst returns deep copies of the retained events, newest first,
// optionally filtered by kind (nil means every kind).
func (l *Log) NewestFirst(kind *Kind) []Event {
	out := make([]Event, 0, len(l.events))
	for i := len(l.events) - 1; i >= 0; i-- {
		e := l.events[i]
		if kind != nil && e.Kind != *kind {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}
