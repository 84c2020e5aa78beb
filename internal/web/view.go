package web

import (
	"time"

	"github.com/Akshat0071/portfolio/internal/contact"
	"github.com/Akshat0071/portfolio/internal/content"
	"github.com/Akshat0071/portfolio/internal/page"
	"github.com/Akshat0071/portfolio/internal/reveal"
	"github.com/Akshat0071/portfolio/internal/seo"
	"github.com/Akshat0071/portfolio/internal/theme"
)

// view is the data every template renders from.
type view struct {
	Head          seo.Head
	Theme         theme.Mode
	MeasurementID string

	Session string
	Visible map[string]bool
	FadeIn  float64

	Name        string
	Initials    string
	Tagline     string
	HeroIntro   string
	Typed       string
	About       []string
	Education   content.Degree
	FocusAreas  []string
	Projects    []content.Project
	Skills      []content.SkillCategory
	Awards      []content.Achievement
	Email       string
	Phone       string
	Location    string
	WhatsApp    string
	GitHub      string
	Social      []content.Link
	QuickLinks  []content.Link
	FooterBlurb string
	Year        int

	Form contactView
}

type contactView struct {
	Draft  contact.Draft
	Errors contact.Errors
}

// revealEvent is fired on a placeholder by site.js with the measured ratio
// and distance in its detail.
const revealEvent = "reveal"

// placeholder is the lightweight stand-in for a section that is not mounted.
type placeholder struct {
	Name      string
	TargetID  string
	Session   string
	Trigger   string
	Threshold float64
	Margin    string
	Spinner   bool
}

func (s *Server) newView(head seo.Head, mode theme.Mode, c *page.Composer) view {
	v := view{
		Head:          head,
		Theme:         mode,
		MeasurementID: s.cfg.MeasurementID,
		FadeIn:        reveal.FadeInOptions.Threshold,

		Name:        content.Name,
		Initials:    content.Initials,
		Tagline:     content.Tagline,
		HeroIntro:   content.HeroIntro,
		Typed:       content.TypedPhrases[0],
		About:       content.AboutMe,
		Education:   content.Education,
		FocusAreas:  content.FocusAreas,
		Projects:    content.Projects,
		Skills:      content.SkillCategories,
		Awards:      content.Achievements,
		Email:       content.Email,
		Phone:       content.Phone,
		Location:    content.Location,
		WhatsApp:    content.WhatsApp,
		GitHub:      content.GitHub,
		Social:      content.SocialLinks,
		QuickLinks:  content.QuickLinks,
		FooterBlurb: content.FooterBlurb,
		Year:        time.Now().Year(),
	}
	if c != nil {
		v.Session = c.ID
		v.Visible = c.Snapshot()
	}
	return v
}

// Placeholder returns the stand-in for the named section.
func (v view) Placeholder(name string) placeholder {
	s, _ := page.Lookup(name)
	return placeholder{
		Name:      name,
		TargetID:  s.Target.ID,
		Session:   v.Session,
		Trigger:   revealEvent + " once",
		Threshold: reveal.SectionOptions.Threshold,
		Margin:    reveal.SectionOptions.MarginCSS(),
		Spinner:   name != "footer",
	}
}
