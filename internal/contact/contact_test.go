package contact

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestValidateReportsEveryField(t *testing.T) {
	errs := Validate(Draft{Name: "", Email: "bad", Message: ""})

	require.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs[FieldName])
	assert.Equal(t, "Please enter a valid email", errs[FieldEmail])
	assert.Contains(t, errs[FieldEmail], "valid")
	assert.Equal(t, "Message is required", errs[FieldMessage])
}

func TestValidateAcceptsMinimalDraft(t *testing.T) {
	assert.Empty(t, Validate(Draft{Name: "Jo", Email: "a@b.com", Message: "hi"}))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "Email is required"},
		{"   ", "Email is required"},
		{"a@b", "Please enter a valid email"},
		{"a b@c.d", "Please enter a valid email"},
		{"x@y.z", ""},
		{"first.last@sub.example.org", ""},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			errs := Validate(Draft{Name: "n", Email: tt.email, Message: "m"})
			assert.Equal(t, tt.want, errs[FieldEmail])
		})
	}
}

func TestNewValidatorRegistersEmailRule(t *testing.T) {
	var v interface{ Var(any, string) error }
	require.NotPanics(t, func() { v = newValidator() })

	assert.Error(t, v.Var("a@b", "contactemail"))
	assert.NoError(t, v.Var("a@b.co", "contactemail"))
}

func TestValidateTreatsWhitespaceAsBlank(t *testing.T) {
	errs := Validate(Draft{Name: "  ", Email: "a@b.co", Message: "\n\t"})
	assert.Equal(t, Errors{FieldName: "Name is required", FieldMessage: "Message is required"}, errs)
}

func TestChangeClearsFieldError(t *testing.T) {
	f := NewForm(time.Millisecond)
	errs, err := f.Submit(nil)
	require.NoError(t, err)
	require.Len(t, errs, 3)

	f.Change(FieldName, "Jo")
	_, errs, submitting := f.State()
	assert.NotContains(t, errs, FieldName)
	assert.Contains(t, errs, FieldEmail)
	assert.False(t, submitting)
}

func TestSubmitResetsDraftAfterDelay(t *testing.T) {
	f := NewForm(5 * time.Millisecond)
	f.Fill(Draft{Name: " Jo ", Email: "a@b.com", Message: "hi"})

	sent := make(chan Draft, 1)
	errs, err := f.Submit(func(d Draft) { sent <- d })
	require.NoError(t, err)
	require.Empty(t, errs)

	_, _, submitting := f.State()
	assert.True(t, submitting)
	_, err = f.Submit(nil)
	assert.ErrorIs(t, err, ErrSubmitting)

	select {
	case d := <-sent:
		assert.Equal(t, "Jo", d.Name)
	case <-time.After(time.Second):
		t.Fatal("submission never completed")
	}

	draft, _, submitting := f.State()
	assert.Equal(t, Draft{}, draft)
	assert.False(t, submitting)
}

func TestUnmountCancelsPendingSubmission(t *testing.T) {
	f := NewForm(20 * time.Millisecond)
	f.Fill(Draft{Name: "Jo", Email: "a@b.com", Message: "hi"})

	var calls atomic.Int32
	_, err := f.Submit(func(Draft) { calls.Add(1) })
	require.NoError(t, err)

	f.Unmount()
	f.Unmount()
	time.Sleep(40 * time.Millisecond)

	assert.Zero(t, calls.Load())
	_, err = f.Submit(nil)
	assert.ErrorIs(t, err, ErrUnmounted)
}

func TestSendWaitsForDelivery(t *testing.T) {
	f := NewForm(time.Millisecond)
	f.Fill(Draft{Name: "Jo", Email: "a@b.com", Message: "hi"})

	d, errs, err := f.Send(context.Background())
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "a@b.com", d.Email)
}

func TestSendStopsWhenContextEnds(t *testing.T) {
	f := NewForm(time.Hour)
	f.Fill(Draft{Name: "Jo", Email: "a@b.com", Message: "hi"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, _, err := f.Send(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, err = f.Submit(nil)
	assert.ErrorIs(t, err, ErrUnmounted)
}

func TestSendReturnsValidationErrors(t *testing.T) {
	f := NewForm(time.Millisecond)
	_, errs, err := f.Send(context.Background())
	require.NoError(t, err)
	assert.Len(t, errs, 3)
}
