package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akshat0071/portfolio/internal/analytics"
	"github.com/Akshat0071/portfolio/internal/theme"
)

const themeCookieMaxAge = 365 * 24 * 3600

var untrackedPrefixes = []string{"/static/", "/sections/", "/hero/", "/vitals", "/healthz", "/favicon"}

// visitorTracking records page views without blocking the request. Static
// assets, fragments and clients sending DNT are skipped.
func visitorTracking(tracker analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" || untracked(path) {
			c.Next()
			return
		}

		view := analytics.PageView{
			Path:      path,
			ClientIP:  c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			At:        time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracker.PageView(ctx, view)
		}()
		c.Next()
	}
}

func untracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// cookieStore keeps the theme preference in a cookie.
type cookieStore struct {
	c *gin.Context
}

func (s cookieStore) Get(_ context.Context, key string) (string, bool, error) {
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return v, true, nil
}

func (s cookieStore) Set(_ context.Context, key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.c.Request.TLS != nil, true)
	return nil
}

var _ theme.Store = cookieStore{}
