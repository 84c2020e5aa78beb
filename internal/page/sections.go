// Package page composes the ordered page sections and owns the per-visit
// lazy-reveal state.
package page

import (
	"errors"
	"strings"

	"github.com/Akshat0071/portfolio/internal/reveal"
)

// ErrUnknownSection is returned for a section name the page does not have.
var ErrUnknownSection = errors.New("page: unknown section")

// Section is one named content block of the page.
type Section struct {
	Name   string
	Target reveal.Target
	// Lazy sections render a placeholder until revealed.
	Lazy bool
}

// Sections lists the page in render order.
var Sections = []Section{
	{Name: "hero", Target: reveal.ByID("home")},
	{Name: "about", Target: reveal.ByID("about"), Lazy: true},
	{Name: "projects", Target: reveal.ByID("projects"), Lazy: true},
	{Name: "skills", Target: reveal.ByID("skills"), Lazy: true},
	{Name: "achievements", Target: reveal.ByID("achievements"), Lazy: true},
	{Name: "contact", Target: reveal.ByID("contact"), Lazy: true},
	{Name: "footer", Target: reveal.ByTag("footer"), Lazy: true},
}

// Lookup returns the section called name.
func Lookup(name string) (Section, error) {
	for _, s := range Sections {
		if s.Name == name {
			return s, nil
		}
	}
	return Section{}, ErrUnknownSection
}

func lazyTargets() []reveal.Target {
	var targets []reveal.Target
	for _, s := range Sections {
		if s.Lazy {
			targets = append(targets, s.Target)
		}
	}
	return targets
}

var crawlerMarkers = []string{
	"bot", "crawler", "spider", "slurp", "facebookexternalhit", "embedly", "preview", "lighthouse",
}

// CanObserve reports whether a client with this user agent is expected to
// report viewport intersections. Crawlers and bare HTTP clients are not, so
// they get every section up front.
func CanObserve(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" || !strings.Contains(ua, "mozilla") {
		return false
	}
	for _, m := range crawlerMarkers {
		if strings.Contains(ua, m) {
			return false
		}
	}
	return true
}
