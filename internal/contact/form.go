package contact

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"
)

// DefaultDelay is how long a simulated submission takes.
const DefaultDelay = 1500 * time.Millisecond

var (
	// ErrSubmitting is returned when a submission is already in flight.
	ErrSubmitting = errors.New("contact: submission in progress")
	// ErrUnmounted is returned once the form has been torn down.
	ErrUnmounted = errors.New("contact: form unmounted")
)

// Form is the live state of one contact form: the draft, per-field errors
// and the submitting flag. It is safe for concurrent use.
type Form struct {
	mu         sync.Mutex
	draft      Draft
	errors     Errors
	submitting bool
	mounted    bool
	timer      *time.Timer
	delay      time.Duration
}

// NewForm returns a mounted, empty form whose submissions take delay.
func NewForm(delay time.Duration) *Form {
	return &Form{
		errors:  Errors{},
		mounted: true,
		delay:   delay,
	}
}

// Change sets a field and clears any error shown for it.
func (f *Form) Change(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Set(field, value)
	delete(f.errors, field)
}

// Fill replaces the whole draft.
func (f *Form) Fill(d Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
	f.errors = Errors{}
}

// State returns copies of the draft and errors and the submitting flag.
func (f *Form) State() (Draft, Errors, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft, maps.Clone(f.errors), f.submitting
}

// Submit validates the draft. When it is valid the simulated delivery is
// scheduled and onSent runs with the sent draft once the delay elapses, after
// the draft has been reset. When it is invalid the errors are returned and
// nothing is scheduled.
func (f *Form) Submit(onSent func(Draft)) (Errors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.mounted {
		return nil, ErrUnmounted
	}
	if f.submitting {
		return nil, ErrSubmitting
	}

	errs := Validate(f.draft)
	f.errors = errs
	if len(errs) > 0 {
		return maps.Clone(errs), nil
	}

	f.submitting = true
	sent := f.draft.Trimmed()
	f.timer = time.AfterFunc(f.delay, func() {
		f.mu.Lock()
		if !f.mounted {
			f.mu.Unlock()
			return
		}
		f.draft = Draft{}
		f.errors = Errors{}
		f.submitting = false
		f.timer = nil
		f.mu.Unlock()

		if onSent != nil {
			onSent(sent)
		}
	})
	return nil, nil
}

// Unmount tears the form down: a pending submission is cancelled and the
// draft is discarded. Later completions never touch the form.
func (f *Form) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.mounted {
		return
	}
	f.mounted = false
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.draft = Draft{}
	f.errors = Errors{}
	f.submitting = false
}

// Send submits the form and waits for the simulated delivery. If ctx ends
// first the form is unmounted and ctx.Err() is returned.
func (f *Form) Send(ctx context.Context) (Draft, Errors, error) {
	done := make(chan Draft, 1)
	errs, err := f.Submit(func(d Draft) { done <- d })
	if err != nil || len(errs) > 0 {
		return Draft{}, errs, err
	}

	select {
	case d := <-done:
		return d, nil, nil
	case <-ctx.Done():
		f.Unmount()
		return Draft{}, nil, ctx.Err()
	}
}
