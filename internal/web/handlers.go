package web

import (
	"context"
	"errors"
	"html"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Akshat0071/portfolio/internal/analytics"
	"github.com/Akshat0071/portfolio/internal/contact"
	"github.com/Akshat0071/portfolio/internal/content"
	"github.com/Akshat0071/portfolio/internal/page"
	"github.com/Akshat0071/portfolio/internal/reveal"
	"github.com/Akshat0071/portfolio/internal/seo"
	"github.com/Akshat0071/portfolio/internal/sitemap"
	"github.com/Akshat0071/portfolio/internal/theme"
	"github.com/Akshat0071/portfolio/internal/typewriter"
)

// maxTypedStream bounds how long one client keeps the typed-text stream.
const maxTypedStream = 10 * time.Minute

func (s *Server) head(c *gin.Context) (seo.Head, bool) {
	head, err := seo.Resolve(s.site, s.meta)
	if err != nil {
		s.log.Error("resolve head", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return seo.Head{}, false
	}
	return head, true
}

func (s *Server) currentTheme(c *gin.Context) theme.Mode {
	prefersDark := c.GetHeader("Sec-CH-Prefers-Color-Scheme") == "dark"
	return theme.Resolve(c.Request.Context(), cookieStore{c}, prefersDark)
}

// index renders the page. With ?eager=1 every section is mounted up front,
// which is where clients without script support are sent.
func (s *Server) index(c *gin.Context) {
	head, ok := s.head(c)
	if !ok {
		return
	}
	eager := c.Query("eager") == "1"
	observe := s.cfg.LazySections && !eager && page.CanObserve(c.GetHeader("User-Agent"))
	composer := s.sessions.Open(observe)

	c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
	c.HTML(http.StatusOK, "index", s.newView(head, s.currentTheme(c), composer))
}

// section answers a placeholder's intersection request with the mounted
// section, or with a fresh placeholder when the report did not qualify.
func (s *Server) section(c *gin.Context) {
	name := c.Param("name")
	session := c.Query("session")

	visible, err := s.sessions.Reveal(session, name, entryFromQuery(c))
	if errors.Is(err, page.ErrUnknownSection) {
		c.Status(http.StatusNotFound)
		return
	}

	v := s.newView(seo.Head{}, s.currentTheme(c), nil)
	v.Session = session
	if !visible {
		c.HTML(http.StatusOK, "placeholder", v.Placeholder(name))
		return
	}
	c.HTML(http.StatusOK, "section-"+name, v)
}

// entryFromQuery reads the report sent by the browser. A request without
// measurements is treated as a fully visible element.
func entryFromQuery(c *gin.Context) reveal.Entry {
	ratioRaw, hasRatio := c.GetQuery("ratio")
	distRaw, hasDist := c.GetQuery("distance")
	if !hasRatio && !hasDist {
		return reveal.Entry{Ratio: 1}
	}
	var e reveal.Entry
	if r, err := strconv.ParseFloat(ratioRaw, 64); err == nil && r >= 0 && r <= 1 {
		e.Ratio = r
	}
	if d, err := strconv.Atoi(distRaw); err == nil {
		e.Distance = d
	} else {
		e.Distance = math.MaxInt
	}
	return e
}

func (s *Server) typed(c *gin.Context) {
	typer, err := typewriter.New(content.TypedPhrases)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), maxTypedStream)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	err = typewriter.Stream(ctx, typer, func(f typewriter.Frame) error {
		c.SSEvent("frame", html.EscapeString(f.Text))
		c.Writer.Flush()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		s.log.Warn("typed stream ended", zap.Error(err))
	}
}

func (s *Server) submitContact(c *gin.Context) {
	var draft contact.Draft
	if err := c.ShouldBind(&draft); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	form := contact.NewForm(s.cfg.SubmitDelay)
	defer form.Unmount()
	form.Fill(draft)

	_, errs, err := form.Send(c.Request.Context())
	if err != nil {
		// The client went away before the simulated delivery finished.
		return
	}
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "contact-form", contactView{Draft: draft, Errors: errs})
		return
	}

	s.tracker.Event(c.Request.Context(), analytics.Event{Action: "submit", Category: "Contact", Label: "form"})
	c.HTML(http.StatusOK, "contact-success", struct {
		Form  contactView
		Toast toast
	}{
		Form: contactView{},
		Toast: toast{
			Title:       "Message Sent!",
			Description: "Thank you for contacting me. I'll get back to you soon.",
		},
	})
}

type toast struct {
	Title       string
	Description string
}

func (s *Server) toggleTheme(c *gin.Context) {
	mode, t, err := theme.Toggle(c.Request.Context(), cookieStore{c}, s.currentTheme(c))
	if err != nil {
		s.log.Warn("toggle theme", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	s.tracker.Event(c.Request.Context(), analytics.Event{Action: "toggle", Category: "Theme", Label: string(mode)})
	c.HTML(http.StatusOK, "theme-toggle", struct {
		Theme theme.Mode
		Toast toast
	}{mode, toast{Title: t.Title, Description: t.Description}})
}

func (s *Server) vitals(c *gin.Context) {
	var metric analytics.WebVital
	if err := c.ShouldBindJSON(&metric); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if s.cfg.Debug {
		s.log.Debug("web vital", zap.String("name", metric.Name), zap.Float64("value", metric.Value))
	}
	s.tracker.Event(c.Request.Context(), metric.Event())
	c.Status(http.StatusNoContent)
}

func (s *Server) sitemap(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := sitemap.Write(c.Writer, s.cfg.SiteURL, sitemap.Pages, time.Now()); err != nil {
		s.log.Error("write sitemap", zap.Error(err))
	}
}

func (s *Server) notFound(c *gin.Context) {
	head, ok := s.head(c)
	if !ok {
		return
	}
	head.Title = "Page not found | " + content.Name
	c.HTML(http.StatusNotFound, "not-found", s.newView(head, s.currentTheme(c), nil))
}
