package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapCommand(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.dev/")
	out := filepath.Join(t.TempDir(), "dist", "sitemap.xml")

	rootCmd.SetArgs([]string{"sitemap", "-o", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://example.dev/#projects</loc>")
}

func TestStatsCommandOnEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "visits.db")

	rootCmd.SetArgs([]string{"stats", "--db", db})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(db)
	assert.NoError(t, err)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("SITE_URL", "example.dev")

	rootCmd.SetArgs([]string{"sitemap", "-o", filepath.Join(t.TempDir(), "s.xml")})
	assert.Error(t, rootCmd.Execute())
}
