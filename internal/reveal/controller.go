package reveal

import (
	"maps"
	"sync"
)

// Controller tracks one visibility flag per target. A flag starts false and
// flips to true once, on the first qualifying entry for its target.
type Controller struct {
	mu       sync.Mutex
	visible  map[string]bool
	cancels  map[string]func()
	onReveal func(id string)
	closed   bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithOnReveal registers a hook that runs after a target's flag flips.
func WithOnReveal(fn func(id string)) ControllerOption {
	return func(c *Controller) { c.onReveal = fn }
}

// NewController starts watching every target on obs. With a nil observer
// every target is visible as soon as NewController returns.
func NewController(obs Observer, targets []Target, opts Options, options ...ControllerOption) *Controller {
	c := &Controller{
		visible: make(map[string]bool, len(targets)),
		cancels: make(map[string]func(), len(targets)),
	}
	for _, o := range options {
		o(c)
	}
	for _, t := range targets {
		c.visible[t.ID] = false
	}
	for _, t := range targets {
		cancel := ObserveOnce(obs, t, opts, c.reveal)
		c.mu.Lock()
		if !c.visible[t.ID] {
			c.cancels[t.ID] = cancel
		}
		c.mu.Unlock()
	}
	return c
}

func (c *Controller) reveal(t Target) {
	c.mu.Lock()
	if c.closed || c.visible[t.ID] {
		c.mu.Unlock()
		return
	}
	c.visible[t.ID] = true
	delete(c.cancels, t.ID)
	hook := c.onReveal
	c.mu.Unlock()

	if hook != nil {
		hook(t.ID)
	}
}

// Visible reports whether the target with the given id has been revealed.
func (c *Controller) Visible(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[id]
}

// Snapshot returns a copy of every flag keyed by target id.
func (c *Controller) Snapshot() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.visible)
}

// Pending returns the number of subscriptions that have not fired yet.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cancels)
}

// Close releases every outstanding subscription. Flags keep their values.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancels := c.cancels
	c.cancels = map[string]func(){}
	c.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
