package seo

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = Site{
	URL:         "https://example.dev",
	Name:        "Example",
	Author:      "Example Author",
	Title:       "Site Title",
	Description: "Site description",
}

func TestStructuredDataAddsContext(t *testing.T) {
	out, err := StructuredData(map[string]any{"@type": "Person", "name": "X"})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     "X",
	}, doc)
}

func TestStructuredDataOverridesContextAndKeepsInput(t *testing.T) {
	in := map[string]any{"@context": "http://other", "name": "X"}
	out, err := StructuredData(in)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"@context":"https://schema.org"`)
	assert.Equal(t, "http://other", in["@context"], "input must not be mutated")
}

func TestStructuredDataEscapesScriptClose(t *testing.T) {
	out, err := StructuredData(map[string]any{"description": "</script><b>"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "</script>")
}

func TestStructuredDataRejectsUnencodable(t *testing.T) {
	_, err := StructuredData(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	h, err := Resolve(testSite, Meta{})
	require.NoError(t, err)

	assert.Equal(t, "Site Title", h.Title)
	assert.Equal(t, "https://example.dev", h.Canonical)

	for key, want := range map[string]string{
		"description":     "Site description",
		"og:type":         "website",
		"og:image":        "https://example.dev/akshat.jpg",
		"twitter:card":    "summary_large_image",
		"twitter:site":    "@AkshatBansal",
		"twitter:creator": "@AkshatBansal",
		"og:url":          "https://example.dev",
		"og:site_name":    "Example",
	} {
		got, ok := h.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	assert.Empty(t, h.Scripts)
}

func TestResolveOverrides(t *testing.T) {
	h, err := Resolve(testSite, Meta{
		Title:          "Projects",
		CanonicalURL:   "projects",
		OGImage:        "https://cdn.example/og.png",
		TwitterCard:    "summary",
		StructuredData: map[string]any{"@type": "WebPage"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.dev/projects", h.Canonical)
	img, _ := h.Lookup("twitter:image")
	assert.Equal(t, "https://cdn.example/og.png", img)
	alt, _ := h.Lookup("twitter:image:alt")
	assert.Equal(t, "Projects", alt)
	require.Len(t, h.Scripts, 1)
	assert.True(t, strings.Contains(string(h.Scripts[0]), `"@type":"WebPage"`))
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "https://a.dev", CanonicalURL("https://a.dev", ""))
	assert.Equal(t, "https://a.dev/x", CanonicalURL("https://a.dev", "/x"))
	assert.Equal(t, "https://a.dev/x", CanonicalURL("https://a.dev", "x"))
}

func TestPersonData(t *testing.T) {
	data := PersonData("https://a.dev", Profile{
		Name:     "A",
		JobTitle: "Dev",
		Employer: "Freelance",
		SameAs:   []string{"https://github.com/a"},
	})
	assert.Equal(t, "Person", data["@type"])
	assert.Equal(t, map[string]any{"@type": "Organization", "name": "Freelance"}, data["worksFor"])
}
