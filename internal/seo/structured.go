package seo

import (
	"fmt"
	"maps"

	json "github.com/goccy/go-json"
)

// SchemaContext is the fixed @context of every structured-data block.
const SchemaContext = "https://schema.org"

// StructuredData serializes data as a JSON-LD document. The @context key is
// always set to SchemaContext; every other key is kept as given. The output
// escapes <, > and & so it is safe inside a script element.
func StructuredData(data map[string]any) ([]byte, error) {
	doc := make(map[string]any, len(data)+1)
	maps.Copy(doc, data)
	doc["@context"] = SchemaContext

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal structured data: %w", err)
	}
	return out, nil
}

// Profile describes the person the site is about.
type Profile struct {
	Name        string
	JobTitle    string
	Employer    string
	Description string
	SameAs      []string
}

// PersonData returns the schema.org Person block for p.
func PersonData(siteURL string, p Profile) map[string]any {
	return map[string]any{
		"@type":    "Person",
		"name":     p.Name,
		"url":      siteURL,
		"sameAs":   p.SameAs,
		"jobTitle": p.JobTitle,
		"worksFor": map[string]any{
			"@type": "Organization",
			"name":  p.Employer,
		},
		"description": p.Description,
	}
}
