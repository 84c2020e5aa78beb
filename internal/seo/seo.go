// Package seo builds the document head: title, meta and link tags, and the
// schema.org structured-data blocks.
package seo

import (
	"strings"
)

// Site carries the configured values every head is derived from.
type Site struct {
	URL         string
	Name        string
	Author      string
	Title       string
	Description string
}

// Meta is the per-page head configuration. Every field is optional.
type Meta struct {
	Title          string
	Description    string
	CanonicalURL   string
	OGType         string
	OGImage        string
	TwitterCard    string
	TwitterSite    string
	TwitterCreator string
	StructuredData map[string]any
}

// Defaults applied to empty Meta fields.
const (
	DefaultOGType          = "website"
	DefaultOGImage         = "/akshat.jpg"
	DefaultTwitterCard     = "summary_large_image"
	DefaultTwitterHandle   = "@AkshatBansal"
	DefaultThemeColor      = "#2563eb"
	ogImageWidth           = "1200"
	ogImageHeight          = "630"
	defaultLocale          = "en_US"
	defaultRobotsDirective = "index, follow"
)

// Tag is one element of the head. Kind is "meta" or "link"; Attr names the
// key attribute ("name", "property" or "rel").
type Tag struct {
	Kind  string
	Attr  string
	Key   string
	Value string
	Type  string
}

// Head is a fully resolved document head.
type Head struct {
	Title     string
	Canonical string
	Tags      []Tag
	// Scripts holds serialized JSON-LD documents.
	Scripts [][]byte
}

// Resolve fills defaults from site and returns the head for meta.
func Resolve(site Site, meta Meta) (Head, error) {
	title := firstNonEmpty(meta.Title, site.Title)
	description := firstNonEmpty(meta.Description, site.Description)
	ogType := firstNonEmpty(meta.OGType, DefaultOGType)
	card := firstNonEmpty(meta.TwitterCard, DefaultTwitterCard)
	twitterSite := firstNonEmpty(meta.TwitterSite, DefaultTwitterHandle)
	creator := firstNonEmpty(meta.TwitterCreator, DefaultTwitterHandle)

	canonical := CanonicalURL(site.URL, meta.CanonicalURL)
	image := AbsoluteURL(site.URL, firstNonEmpty(meta.OGImage, DefaultOGImage))

	h := Head{Title: title, Canonical: canonical}
	h.Tags = []Tag{
		named("title", title),
		named("description", description),
		named("viewport", "width=device-width, initial-scale=1.0"),
		named("author", site.Author),
		named("robots", defaultRobotsDirective),
		named("theme-color", DefaultThemeColor),

		link("canonical", canonical, ""),
		property("og:url", canonical),
		property("twitter:url", canonical),

		property("og:type", ogType),
		property("og:title", title),
		property("og:description", description),
		property("og:image", image),
		property("og:image:width", ogImageWidth),
		property("og:image:height", ogImageHeight),
		property("og:site_name", site.Name),
		property("og:locale", defaultLocale),

		property("twitter:card", card),
		property("twitter:title", title),
		property("twitter:description", description),
		property("twitter:image", image),
		named("twitter:site", twitterSite),
		named("twitter:creator", creator),
		named("twitter:image:alt", title),

		link("icon", "/favicon.ico", "image/png"),
		link("apple-touch-icon", "/apple-touch-icon.png", ""),
	}

	if meta.StructuredData != nil {
		doc, err := StructuredData(meta.StructuredData)
		if err != nil {
			return Head{}, err
		}
		h.Scripts = append(h.Scripts, doc)
	}
	return h, nil
}

// Lookup returns the value of the first tag with the given key.
func (h Head) Lookup(key string) (string, bool) {
	for _, t := range h.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// CanonicalURL joins path onto base with exactly one slash. An empty path
// yields base.
func CanonicalURL(base, path string) string {
	if path == "" {
		return base
	}
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}

// AbsoluteURL leaves http(s) URLs alone and prefixes anything else with base.
func AbsoluteURL(base, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return base + ref
}

func named(key, value string) Tag { return Tag{Kind: "meta", Attr: "name", Key: key, Value: value} }
func property(key, value string) Tag {
	return Tag{Kind: "meta", Attr: "property", Key: key, Value: value}
}
func link(rel, href, typ string) Tag {
	return Tag{Kind: "link", Attr: "rel", Key: rel, Value: href, Type: typ}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
