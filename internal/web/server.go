// Package web serves the portfolio page over gin: the full page, lazily
// mounted section fragments for htmx, the typed hero line, the contact form
// and the theme toggle.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Akshat0071/portfolio/internal/analytics"
	"github.com/Akshat0071/portfolio/internal/config"
	"github.com/Akshat0071/portfolio/internal/content"
	"github.com/Akshat0071/portfolio/internal/logging"
	"github.com/Akshat0071/portfolio/internal/page"
	"github.com/Akshat0071/portfolio/internal/seo"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP surface of the site.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	sessions *page.Registry
	tracker  analytics.Tracker
	site     seo.Site
	meta     seo.Meta
	engine   *gin.Engine
}

// New wires the routes. tracker may be nil.
func New(cfg config.Config, log *zap.Logger, sessions *page.Registry, tracker analytics.Tracker) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		tracker:  analytics.NewSafe(tracker, log),
		site: seo.Site{
			URL:         cfg.SiteURL,
			Name:        content.Name,
			Author:      content.Name,
			Title:       cfg.AppTitle,
			Description: cfg.AppDescription,
		},
	}
	s.meta = seo.Meta{
		StructuredData: seo.PersonData(cfg.SiteURL, seo.Profile{
			Name:        content.Name,
			JobTitle:    "Full-Stack Developer",
			Employer:    "Freelance",
			Description: content.SiteDescription,
			SameAs:      content.SameAs,
		}),
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := staticFiles()
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.Requests(log), visitorTracking(s.tracker))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.GET("/sections/:name", s.section)
	r.GET("/hero/typed", s.typed)
	r.POST("/contact", s.submitContact)
	r.POST("/theme", s.toggleTheme)
	r.POST("/vitals", s.vitals)
	r.GET("/sitemap.xml", s.sitemap)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.NoRoute(s.notFound)

	s.engine = r
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr), zap.String("site", s.cfg.SiteURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}
