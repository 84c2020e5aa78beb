// Package reveal implements the watch-once primitive used to mount page
// sections and fade in elements when they first approach the viewport.
//
// An Observer delivers raw intersection reports for a target. ObserveOnce
// turns that repeatable signal into a single "entered" event, and Controller
// keeps one visibility flag per section on top of it.
package reveal

import (
	"fmt"
	"strconv"
	"sync"
)

// Target names an observed element. Selector is either "#id" or a tag name
// for singleton elements such as the page footer.
type Target struct {
	ID       string
	Selector string
}

// ByID returns a target resolved by element id.
func ByID(id string) Target {
	return Target{ID: id, Selector: "#" + id}
}

// ByTag returns a target resolved by tag name, keyed by the tag itself.
func ByTag(tag string) Target {
	return Target{ID: tag, Selector: tag}
}

// Options parameterizes when an element counts as entered.
type Options struct {
	// Threshold is the minimum visible fraction of the element.
	Threshold float64
	// RootMargin expands the viewport by this many pixels on every side.
	RootMargin int
}

var (
	// SectionOptions mounts sections shortly before they scroll into view.
	SectionOptions = Options{Threshold: 0.1, RootMargin: 200}
	// FadeInOptions triggers the scroll fade-in animation.
	FadeInOptions = Options{Threshold: 0.1}
)

// Entry is one intersection report for a target.
type Entry struct {
	Target Target
	// Ratio is the visible fraction of the element, 0..1.
	Ratio float64
	// Distance is the gap in pixels between the element and the viewport.
	// Zero or negative means they overlap.
	Distance int
}

// Qualifies reports whether e counts as the element entering the viewport.
func (o Options) Qualifies(e Entry) bool {
	if e.Ratio > 0 && e.Ratio >= o.Threshold {
		return true
	}
	return o.RootMargin > 0 && e.Distance <= o.RootMargin
}

// MarginCSS renders RootMargin in the form the browser's IntersectionObserver
// accepts for its rootMargin option.
func (o Options) MarginCSS() string {
	return strconv.Itoa(o.RootMargin) + "px"
}

// Observer is the intersection observation capability. Implementations
// deliver every report for a target until it is unobserved.
type Observer interface {
	Observe(t Target, fn func(Entry)) error
	Unobserve(t Target)
}

// ObserveOnce watches t and calls onEnter the first time a qualifying entry
// arrives, after which the target is no longer observed. The returned cancel
// releases a pending subscription and is safe to call more than once.
//
// When obs is nil or refuses the target, onEnter runs immediately: a missing
// capability never hides content.
func ObserveOnce(obs Observer, t Target, opts Options, onEnter func(Target)) (cancel func()) {
	if obs == nil {
		onEnter(t)
		return func() {}
	}

	w := &watch{obs: obs, target: t}
	err := obs.Observe(t, func(e Entry) {
		if !opts.Qualifies(e) {
			return
		}
		if w.release() {
			onEnter(t)
		}
	})
	if err != nil {
		w.mu.Lock()
		w.done = true
		w.mu.Unlock()
		onEnter(t)
		return func() {}
	}
	return func() { w.release() }
}

// watch guards a single subscription so it is released exactly once.
type watch struct {
	mu     sync.Mutex
	done   bool
	obs    Observer
	target Target
}

// release unobserves the target. It reports whether this call did the work.
func (w *watch) release() bool {
	w.mu.Lock()
	if w.done {
		w.mu.Unlock()
		return false
	}
	w.done = true
	w.mu.Unlock()
	w.obs.Unobserve(w.target)
	return true
}

func (t Target) String() string {
	return fmt.Sprintf("%s(%s)", t.ID, t.Selector)
}
