package page

import (
	"sync"
	"time"

	"github.com/Akshat0071/portfolio/internal/reveal"
)

// Composer is the reveal state of one page visit. Sections that are not
// lazy, and every section when the composer has no observer, are visible
// from the start.
type Composer struct {
	ID string

	dispatcher *reveal.Dispatcher
	controller *reveal.Controller

	mu       sync.Mutex
	lastSeen time.Time
}

// NewComposer builds the reveal state for one visit. With observe false no
// subscription is made and every section is visible immediately.
func NewComposer(id string, observe bool, opts reveal.Options, now time.Time) *Composer {
	c := &Composer{ID: id, lastSeen: now}
	var obs reveal.Observer
	if observe {
		c.dispatcher = reveal.NewDispatcher()
		obs = c.dispatcher
	}
	c.controller = reveal.NewController(obs, lazyTargets(), opts)
	return c
}

// Visible reports whether section should render its full content.
func (c *Composer) Visible(section string) bool {
	s, err := Lookup(section)
	if err != nil {
		return false
	}
	if !s.Lazy {
		return true
	}
	return c.controller.Visible(s.Target.ID)
}

// Snapshot returns the flag of every section keyed by section name.
func (c *Composer) Snapshot() map[string]bool {
	out := make(map[string]bool, len(Sections))
	for _, s := range Sections {
		out[s.Name] = c.Visible(s.Name)
	}
	return out
}

// Lazy reports whether the composer is waiting on intersection reports.
func (c *Composer) Lazy() bool {
	return c.dispatcher != nil
}

// Report feeds an intersection report for section and returns whether the
// section is visible afterwards.
func (c *Composer) Report(section string, e reveal.Entry) (bool, error) {
	s, err := Lookup(section)
	if err != nil {
		return false, err
	}
	if c.dispatcher != nil && s.Lazy {
		c.dispatcher.Dispatch(s.Target.ID, e)
	}
	return c.Visible(section), nil
}

// Pending returns how many sections are still waiting to be revealed.
func (c *Composer) Pending() int {
	return c.controller.Pending()
}

// Close releases every outstanding subscription.
func (c *Composer) Close() {
	c.controller.Close()
}

func (c *Composer) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *Composer) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}
