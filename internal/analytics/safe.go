package analytics

import (
	"context"

	"go.uber.org/zap"
)

// Safe wraps a Tracker so errors and panics are logged instead of returned.
type Safe struct {
	next Tracker
	log  *zap.Logger
}

// NewSafe wraps next. A nil next behaves like Nop.
func NewSafe(next Tracker, log *zap.Logger) *Safe {
	if next == nil {
		next = Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Safe{next: next, log: log}
}

func (s *Safe) PageView(ctx context.Context, v PageView) error {
	s.guard("page view", func() error { return s.next.PageView(ctx, v) }, zap.String("path", v.Path))
	return nil
}

func (s *Safe) Event(ctx context.Context, e Event) error {
	s.guard("event", func() error { return s.next.Event(ctx, e) },
		zap.String("action", e.Action), zap.String("label", e.Label))
	return nil
}

func (s *Safe) guard(what string, fn func() error, fields ...zap.Field) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("analytics panic", append(fields, zap.String("call", what), zap.Any("panic", r))...)
		}
	}()
	if err := fn(); err != nil {
		s.log.Warn("analytics call failed", append(fields, zap.String("call", what), zap.Error(err))...)
	}
}
