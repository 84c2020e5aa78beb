// Package typewriter drives the hero's typed-text effect: phrases are typed
// one character at a time, erased, and the next phrase follows.
package typewriter

import (
	"context"
	"errors"
	"time"
)

// ErrNoPhrases is returned when a Typer is built without phrases.
var ErrNoPhrases = errors.New("typewriter: at least one phrase is required")

// State is the current direction of the effect.
type State int

const (
	Typing State = iota
	Deleting
)

func (s State) String() string {
	if s == Deleting {
		return "deleting"
	}
	return "typing"
}

const (
	TypingDelay   = 150 * time.Millisecond
	PauseDelay    = 100 * time.Millisecond
	DeletingDelay = 50 * time.Millisecond
)

// Frame is the text to render and how long to wait before the next step.
type Frame struct {
	Text    string
	State   State
	Phrase  int
	Delay   time.Duration
	Changed bool
}

// Typer is the typing state machine. It is not safe for concurrent use.
type Typer struct {
	phrases [][]rune
	index   int
	length  int
	state   State
	delay   time.Duration

	typing, pause, deleting time.Duration
}

// Option configures a Typer.
type Option func(*Typer)

// WithDelays overrides the typing, pause and deleting delays.
func WithDelays(typing, pause, deleting time.Duration) Option {
	return func(t *Typer) {
		t.typing, t.pause, t.deleting = typing, pause, deleting
	}
}

// New returns a Typer positioned before the first character of phrases[0].
func New(phrases []string, opts ...Option) (*Typer, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	t := &Typer{
		phrases:  make([][]rune, len(phrases)),
		typing:   TypingDelay,
		pause:    PauseDelay,
		deleting: DeletingDelay,
	}
	for i, p := range phrases {
		t.phrases[i] = []rune(p)
	}
	for _, o := range opts {
		o(t)
	}
	t.delay = t.typing
	return t, nil
}

// Text returns the currently rendered text.
func (t *Typer) Text() string {
	return string(t.phrases[t.index][:t.length])
}

// Step advances the machine by one tick.
func (t *Typer) Step() Frame {
	phrase := t.phrases[t.index]
	changed := false

	switch t.state {
	case Typing:
		if t.length < len(phrase) {
			t.length++
			t.delay = t.typing
			changed = true
		} else {
			t.state = Deleting
			t.delay = t.pause
		}
	case Deleting:
		if t.length > 0 {
			t.length--
			t.delay = t.deleting
			changed = true
		} else {
			t.state = Typing
			t.index = (t.index + 1) % len(t.phrases)
		}
	}

	return Frame{
		Text:    t.Text(),
		State:   t.state,
		Phrase:  t.index,
		Delay:   t.delay,
		Changed: changed,
	}
}

// Stream steps t until ctx is done, calling emit for every frame whose text
// changed. It returns ctx.Err() on cancellation or the first emit error.
func Stream(ctx context.Context, t *Typer, emit func(Frame) error) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		f := t.Step()
		if f.Changed {
			if err := emit(f); err != nil {
				return err
			}
		}
		timer.Reset(f.Delay)
	}
}
