package typewriter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func renders(t *Typer, steps int) []string {
	var out []string
	for i := 0; i < steps; i++ {
		if f := t.Step(); f.Changed {
			out = append(out, f.Text)
		}
	}
	return out
}

func TestNewRequiresPhrases(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoPhrases)
}

func TestCycleOverTwoPhrases(t *testing.T) {
	typer, err := New([]string{"A", "BB"})
	require.NoError(t, err)

	// "A": type 1, turn, delete 1, advance. "BB": type 2, turn, delete 2, advance.
	got := renders(typer, 4+6+2)
	assert.Equal(t, []string{"A", "", "B", "BB", "B", "", "A"}, got)
}

func TestCycleContainsPassBoundaries(t *testing.T) {
	typer, err := New([]string{"A", "BB"})
	require.NoError(t, err)

	got := renders(typer, 40)
	want := []string{"A", "", "B", "BB", "", "A"}
	i := 0
	for _, text := range got {
		if i < len(want) && text == want[i] {
			i++
		}
	}
	assert.Equal(t, len(want), i, "sequence %v should contain %v in order", got, want)
}

func TestStateTransitionsAndDelays(t *testing.T) {
	typer, err := New([]string{"ab"})
	require.NoError(t, err)

	f := typer.Step()
	assert.Equal(t, Frame{Text: "a", State: Typing, Delay: TypingDelay, Changed: true}, f)
	typer.Step()

	f = typer.Step()
	assert.Equal(t, Deleting, f.State)
	assert.Equal(t, PauseDelay, f.Delay)
	assert.False(t, f.Changed)

	f = typer.Step()
	assert.Equal(t, "a", f.Text)
	assert.Equal(t, DeletingDelay, f.Delay)
	typer.Step()

	f = typer.Step()
	assert.Equal(t, Typing, f.State)
	assert.Equal(t, 0, f.Phrase, "single phrase wraps to itself")
}

func TestMultibytePhrases(t *testing.T) {
	typer, err := New([]string{"héé"})
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "hé", "héé"}, renders(typer, 3))
}

func TestStreamStopsOnCancel(t *testing.T) {
	typer, err := New([]string{"go"}, WithDelays(time.Millisecond, time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var frames []string
	err = Stream(ctx, typer, func(f Frame) error {
		frames = append(frames, f.Text)
		if len(frames) == 4 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"g", "go", "g", ""}, frames)
}

func TestStreamReturnsEmitError(t *testing.T) {
	typer, err := New([]string{"x"}, WithDelays(time.Millisecond, time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	boom := errors.New("client gone")
	err = Stream(context.Background(), typer, func(Frame) error { return boom })
	assert.ErrorIs(t, err, boom)
}
