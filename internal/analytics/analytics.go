// Package analytics is the instrumentation boundary: page views, custom
// events and forwarded web vitals. Failures here are logged and swallowed.
package analytics

import (
	"context"
	"math"
	"time"
)

// PageView is a single page visit.
type PageView struct {
	Path      string
	ClientIP  string
	UserAgent string
	At        time.Time
}

// Event is a custom analytics event.
type Event struct {
	Action   string
	Category string
	Label    string
	Value    *int64
	At       time.Time
}

// Tracker records page views and events.
type Tracker interface {
	PageView(ctx context.Context, v PageView) error
	Event(ctx context.Context, e Event) error
}

// Nop discards everything. It stands in wherever no tracker is configured.
type Nop struct{}

func (Nop) PageView(context.Context, PageView) error { return nil }
func (Nop) Event(context.Context, Event) error       { return nil }

// WebVital is a browser performance metric such as LCP or CLS.
type WebVital struct {
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value"`
}

// Event converts the metric into a "web-vitals" event. CLS is unitless, so
// it is scaled by 1000 before rounding.
func (v WebVital) Event() Event {
	value := v.Value
	if v.Name == "CLS" {
		value *= 1000
	}
	rounded := int64(math.Round(value))
	return Event{
		Action:   "web-vitals",
		Category: "Web Vitals",
		Label:    v.Name,
		Value:    &rounded,
	}
}
