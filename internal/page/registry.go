package page

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Akshat0071/portfolio/internal/reveal"
)

// DefaultMaxSessions bounds the number of visits tracked at once.
const DefaultMaxSessions = 10000

// Registry tracks the Composer of every live page visit. Idle visits are
// torn down by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Composer

	ttl         time.Duration
	maxSessions int
	opts        reveal.Options
	now         func() time.Time
	log         *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

func WithClock(now func() time.Time) Option { return func(r *Registry) { r.now = now } }
func WithLogger(log *zap.Logger) Option     { return func(r *Registry) { r.log = log } }
func WithMaxSessions(n int) Option          { return func(r *Registry) { r.maxSessions = n } }
func WithRevealOptions(o reveal.Options) Option {
	return func(r *Registry) { r.opts = o }
}

// NewRegistry returns a Registry whose visits expire after ttl idle.
func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		sessions:    make(map[string]*Composer),
		ttl:         ttl,
		maxSessions: DefaultMaxSessions,
		opts:        reveal.SectionOptions,
		now:         time.Now,
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Open starts a visit. When observe is false, or the registry is full, the
// visit is not tracked and every section is visible right away.
func (r *Registry) Open(observe bool) *Composer {
	now := r.now()
	if !observe {
		return NewComposer("", false, r.opts, now)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) >= r.maxSessions {
		r.log.Warn("page session limit reached, rendering eagerly", zap.Int("sessions", len(r.sessions)))
		return NewComposer("", false, r.opts, now)
	}
	c := NewComposer(uuid.NewString(), true, r.opts, now)
	r.sessions[c.ID] = c
	return c
}

// Get returns the visit with id and marks it as active.
func (r *Registry) Get(id string) (*Composer, bool) {
	r.mu.Lock()
	c, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		c.touch(r.now())
	}
	return c, ok
}

// Reveal reports an intersection for section in visit id. Unknown or
// expired visits report the section as visible.
func (r *Registry) Reveal(id, section string, e reveal.Entry) (bool, error) {
	if _, err := Lookup(section); err != nil {
		return false, err
	}
	c, ok := r.Get(id)
	if !ok {
		return true, nil
	}
	return c.Report(section, e)
}

// Len returns the number of tracked visits.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep tears down visits idle for longer than the ttl, or fully revealed,
// and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Composer
	for id, c := range r.sessions {
		if c.idleSince().Before(cutoff) || c.Pending() == 0 {
			expired = append(expired, c)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, c := range expired {
		c.Close()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Debug("swept page sessions", zap.Int("removed", n), zap.Int("live", r.Len()))
			}
		}
	}
}

// Close tears down every visit.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Composer)
	r.mu.Unlock()

	for _, c := range sessions {
		c.Close()
	}
}
