package testutil

import (
	"sync"

	"github.com/upb-facilities/cleaning-records/internal/audit"
)

// AuditRecorder is an audit.Sink that keeps events in memory.
type AuditRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *AuditRecorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *AuditRecorder) Events() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.events...)
}

func (r *AuditRecorder) Actions() []string {
	var out []string
	for _, ev := range r.Events() {
		out = append(out, ev.Action)
	}
	return out
}
