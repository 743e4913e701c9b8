package license

import (
	"fmt"
	"strings"
	"testing"
)

func TestCanonicalURL_ExactTable(t *testing.T) {
	for name, want := range canonicalURLs {
		t.Run(name, func(t *testing.T) {
			got, ok := CanonicalURL(name)
			if !ok {
				t.Fatalf("CanonicalURL(%q) returned no match", name)
			}
			if got != want {
				t.Errorf("CanonicalURL(%q) = %q, want %q", name, got, want)
			}
		})
	}
}

func TestCanonicalURL_NormalizesInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uppercase", "APACHE-2.0", urlApache2},
		{"mixed case", "MIT License", urlMIT},
		{"surrounding quotes", `"apache-2.0"`, urlApache2},
		{"whitespace", "  bsd license  ", urlBSD3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalURL(tt.input)
			if !ok {
				t.Fatalf("CanonicalURL(%q) returned no match", tt.input)
			}
			if got != tt.want {
				t.Errorf("CanonicalURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalURL_ApacheHeuristic(t *testing.T) {
	// Any name containing "apache" and "2.0" resolves to the Apache-2.0
	// URL, even when it is absent from the exact table.
	inputs := []string{
		"Apache Software Foundation License 2.0",
		"2.0, apache style",
		"APACHE PUBLIC 2.0",
		"some apache thing v2.0",
	}
	for _, input := range inputs {
		got, ok := CanonicalURL(input)
		if !ok || got != urlApache2 {
			t.Errorf("CanonicalURL(%q) = %q, %v; want %q, true", input, got, ok, urlApache2)
		}
	}
}

func TestCanonicalURL_Heuristics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MIT-style", urlMIT},
		{"Modified BSD", urlBSD3},
		{"Eclipse Distribution License 2.0", urlEPL2},
		{"Eclipse Public License v1.0 only", urlEPL1},
		{"GNU Lesser GPL", urlLGPL3},
		{"Lesser General Public", urlLGPL3},
		{"GPLv3", urlGPL3},
		{"GPL v2 only", urlGPL2},
		{"Mozilla Public 2.0", urlMPL2},
		{"MPL", urlMPL11},
		{"Alfresco Enterprise", urlAlfresco},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalURL(tt.input)
			if !ok {
				t.Fatalf("CanonicalURL(%q) returned no match", tt.input)
			}
			if got != tt.want {
				t.Errorf("CanonicalURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalURL_NoMatch(t *testing.T) {
	if url, ok := CanonicalURL("proprietary mystery license"); ok {
		t.Errorf("expected no match, got %q", url)
	}
}

func TestCanonicalURLContext_Diagnostic(t *testing.T) {
	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	// Unmapped name with context: diagnostic emitted.
	if _, ok := CanonicalURLContext("mystery license", "Maven POM", logf); ok {
		t.Fatal("expected no match")
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "mystery license") {
		t.Errorf("expected one diagnostic naming the license, got %v", logged)
	}

	// Unmapped name without context: silent.
	logged = nil
	CanonicalURLContext("mystery license", "", logf)
	if len(logged) != 0 {
		t.Errorf("expected silence without context, got %v", logged)
	}

	// Mapped name: no diagnostic.
	logged = nil
	if _, ok := CanonicalURLContext("mit", "Maven POM", logf); !ok {
		t.Fatal("expected match for mit")
	}
	if len(logged) != 0 {
		t.Errorf("expected no diagnostic on match, got %v", logged)
	}
}

func TestNew(t *testing.T) {
	lic := New("Apache-2.0")
	if lic.Name != "Apache-2.0" {
		t.Errorf("Name = %q, want Apache-2.0", lic.Name)
	}
	if lic.URL != urlApache2 {
		t.Errorf("URL = %q, want %q", lic.URL, urlApache2)
	}

	unknown := New("mystery license")
	if unknown.URL != "" {
		t.Errorf("unknown license URL = %q, want empty", unknown.URL)
	}
}

func TestNewWithURL(t *testing.T) {
	lic := NewWithURL("Apache-2.0", "https://example.com/custom")
	if lic.URL != "https://example.com/custom" {
		t.Errorf("explicit URL not kept: %q", lic.URL)
	}

	fallback := NewWithURL("mit", "")
	if fallback.URL != urlMIT {
		t.Errorf("empty URL should fall back to canonical, got %q", fallback.URL)
	}
}
