package sitemap

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "https://example.dev", Pages, fixedNow))

	var got urlset
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))

	assert.Contains(t, buf.String(), `<urlset xmlns="`+namespace+`">`)
	require.Len(t, got.URLs, len(Pages))
	assert.Equal(t, url{
		Loc:        "https://example.dev/",
		LastMod:    "2026-10-16T09:30:00.000Z",
		ChangeFreq: "daily",
		Priority:   "1.0",
	}, got.URLs[0])
	assert.Equal(t, "https://example.dev/#skills", got.URLs[3].Loc)
	assert.Equal(t, "monthly", got.URLs[3].ChangeFreq)
	assert.Equal(t, "0.7", got.URLs[3].Priority)
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "sitemap.xml")
	require.NoError(t, WriteFile(path, "https://example.dev", Pages[:1], fixedNow))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://example.dev/</loc>")
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))
}
