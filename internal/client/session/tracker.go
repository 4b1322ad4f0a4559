package session

import "sync"

// Tracker observes a Provider and exposes the current principal to the rest
// of the client. It subscribes exactly once on construction and must be
// closed on teardown to release that subscription.
//
// A nil Current() result is a legitimate, enduring state meaning "require
// login"; the tracker never retries or surfaces provider failures itself.
type Tracker struct {
	mu      sync.Mutex
	current Principal
	subs    map[int]func(Principal)
	nextID  int
	unsub   func()
}

// NewTracker builds a tracker bound to p and seeds it with p.Current().
func NewTracker(p Provider) *Tracker {
	t := &Tracker{
		current: p.Current(),
		subs:    make(map[int]func(Principal)),
	}
	t.unsub = p.Subscribe(t.onChange)
	return t
}

func (t *Tracker) onChange(p Principal) {
	t.mu.Lock()
	t.current = p
	fns := make([]func(Principal), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Current returns the signed-in principal, or nil when signed out.
func (t *Tracker) Current() Principal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Subscribe registers fn to run on every principal change and returns the
// matching unsubscribe. The provider's notification channel is single-purpose,
// so dependents subscribe here rather than being pushed to directly.
func (t *Tracker) Subscribe(fn func(Principal)) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// Close releases the tracker's provider subscription.
func (t *Tracker) Close() {
	if t.unsub != nil {
		t.unsub()
		t.unsub = nil
	}
}
