package reveal

import (
	"errors"
	"sync"
)

// ErrObserved is returned when a target id is already being observed.
var ErrObserved = errors.New("reveal: target already observed")

// Dispatcher is an Observer fed by intersection reports that arrive from
// outside the process, such as htmx requests fired by the browser's own
// observer. It is safe for concurrent use.
type Dispatcher struct {
	mu         sync.Mutex
	subs       map[string]subscription
	observes   int
	unobserves int
}

type subscription struct {
	target Target
	fn     func(Entry)
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[string]subscription)}
}

// Observe implements Observer.
func (d *Dispatcher) Observe(t Target, fn func(Entry)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.subs[t.ID]; ok {
		return ErrObserved
	}
	d.subs[t.ID] = subscription{target: t, fn: fn}
	d.observes++
	return nil
}

// Unobserve implements Observer. Unknown targets are ignored.
func (d *Dispatcher) Unobserve(t Target) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.subs[t.ID]; !ok {
		return
	}
	delete(d.subs, t.ID)
	d.unobserves++
}

// Dispatch delivers e to the subscriber for id. It reports whether a
// subscriber was found. The callback runs without the lock held so it may
// unobserve its own target.
func (d *Dispatcher) Dispatch(id string, e Entry) bool {
	d.mu.Lock()
	sub, ok := d.subs[id]
	d.mu.Unlock()
	if !ok {
		return false
	}
	e.Target = sub.target
	sub.fn(e)
	return true
}

// Active returns the number of targets currently observed.
func (d *Dispatcher) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Counts returns how many observe and unobserve calls took effect.
func (d *Dispatcher) Counts() (observes, unobserves int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.observes, d.unobserves
}
