package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://akshatbansal.dev", cfg.SiteURL)
	assert.Equal(t, "Akshat Bansal | Full-Stack Developer & Cloud Computing Enthusiast", cfg.AppTitle)
	assert.True(t, cfg.LazySections)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay)
	assert.Empty(t, cfg.MeasurementID)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SITE_URL", "https://example.dev/")
	t.Setenv("LAZY_SECTIONS", "false")
	t.Setenv("APP_TITLE", "Custom")
	t.Setenv("GA_MEASUREMENT_ID", "G-TEST")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://example.dev", cfg.SiteURL)
	assert.False(t, cfg.LazySections)
	assert.Equal(t, "Custom", cfg.AppTitle)
	assert.Equal(t, "G-TEST", cfg.MeasurementID)
}

func TestLoadError(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse env:"))
}

func TestValidateRejectsNonPositiveRetention(t *testing.T) {
	for _, v := range []string{"0s", "-1h"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("VISITOR_RETENTION", v)
			_, err := Load()
			assert.ErrorContains(t, err, "visitor retention must be positive")
		})
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("SITE_URL", "akshatbansal.dev")
	_, err := Load()
	assert.ErrorContains(t, err, "must be absolute")
}
