// Package license models software licenses and maps free-text license
// names to canonical reference URLs.
//
// License names show up in wildly inconsistent forms across POM files,
// Syft output, and registry APIs ("Apache-2.0", "The Apache Software
// License, Version 2.0", ...). This package resolves them to a single
// authoritative URL using an exact lookup table plus ordered substring
// heuristics.
package license

import "strings"

// License is a software license with a name and an optional canonical URL.
//
// Once a URL is set the value is treated as immutable; callers replace
// whole License values rather than mutating fields.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// New creates a License, filling in the canonical URL for name when one
// is known. The URL stays empty if no mapping exists.
func New(name string) License {
	url, _ := CanonicalURL(name)
	return License{Name: name, URL: url}
}

// NewWithURL creates a License with an explicit URL. If url is empty it
// falls back to the canonical mapping, like [New].
func NewWithURL(name, url string) License {
	if url == "" {
		return New(name)
	}
	return License{Name: name, URL: url}
}

// Names returns the license names in order, preserving duplicates.
func Names(licenses []License) []string {
	names := make([]string, len(licenses))
	for i, lic := range licenses {
		names[i] = lic.Name
	}
	return names
}

// normalize lowercases a raw license name, trims whitespace, and strips
// surrounding quotes.
func normalize(name string) string {
	return strings.Trim(strings.TrimSpace(strings.ToLower(name)), `"`)
}
