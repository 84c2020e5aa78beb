// Package sitemap writes the site's sitemap.xml.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is a sitemap changefreq value.
type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

// Page is one sitemap entry relative to the site root.
type Page struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   float64
}

// Pages lists the page anchors published in the sitemap.
var Pages = []Page{
	{Path: "/", ChangeFreq: Daily, Priority: 1.0},
	{Path: "/#about", ChangeFreq: Weekly, Priority: 0.8},
	{Path: "/#projects", ChangeFreq: Weekly, Priority: 0.8},
	{Path: "/#skills", ChangeFreq: Monthly, Priority: 0.7},
	{Path: "/#achievements", ChangeFreq: Monthly, Priority: 0.7},
	{Path: "/#contact", ChangeFreq: Monthly, Priority: 0.7},
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Write encodes pages for baseURL with lastmod set to now.
func Write(w io.Writer, baseURL string, pages []Page, now time.Time) error {
	set := urlset{XMLNS: namespace}
	lastmod := now.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	for _, p := range pages {
		set.URLs = append(set.URLs, url{
			Loc:        baseURL + p.Path,
			LastMod:    lastmod,
			ChangeFreq: string(p.ChangeFreq),
			Priority:   strconv.FormatFloat(p.Priority, 'f', 1, 64),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the sitemap to path, creating parent directories.
func WriteFile(path, baseURL string, pages []Page, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sitemap dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sitemap: %w", err)
	}
	if err := Write(f, baseURL, pages, now); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
