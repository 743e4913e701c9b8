package sbom

import (
	"context"
	"testing"

	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

// stubResolver resolves coordinates from a fixed map, counting calls.
type stubResolver struct {
	licenses map[string][]license.License
	calls    int
}

func (s *stubResolver) ResolveLicenses(_ context.Context, groupID, artifactID, version string, _ int) []license.License {
	s.calls++
	return s.licenses[groupID+":"+artifactID+":"+version]
}

func newTestEnricher(resolver CoordinateResolver) *Enricher {
	e := NewEnricher(resolver)
	e.Delay = 0
	return e
}

func TestEnrich_ResolvesFromRegistry(t *testing.T) {
	resolver := &stubResolver{licenses: map[string][]license.License{
		"com.example:mylib:1.0.0": {license.New("MIT")},
	}}

	packages := []Package{{
		Name:    "mylib",
		Version: "1.0.0",
		Purl:    "pkg:maven/com.example/mylib@1.0.0",
		Source:  SourceOriginal,
	}}

	newTestEnricher(resolver).Enrich(context.Background(), packages)

	if len(packages[0].Licenses) != 1 || packages[0].Licenses[0].Name != "MIT" {
		t.Fatalf("licenses = %v, want MIT", packages[0].Licenses)
	}
	if packages[0].Source != SourceEnriched {
		t.Errorf("source = %q, want %q", packages[0].Source, SourceEnriched)
	}
}

func TestEnrich_SkipsLicensedPackages(t *testing.T) {
	resolver := &stubResolver{}
	original := []license.License{license.New("Apache-2.0")}

	packages := []Package{{
		Name:     "mylib",
		Version:  "1.0.0",
		Purl:     "pkg:maven/com.example/mylib@1.0.0",
		Licenses: original,
		Source:   SourceOriginal,
	}}

	newTestEnricher(resolver).Enrich(context.Background(), packages)

	if resolver.calls != 0 {
		t.Errorf("licensed package triggered %d resolver calls, want 0", resolver.calls)
	}
	if packages[0].Source != SourceOriginal {
		t.Errorf("source = %q, want %q", packages[0].Source, SourceOriginal)
	}
}

func TestEnrich_FallsBackToHeuristics(t *testing.T) {
	resolver := &stubResolver{}

	packages := []Package{{
		Name:    "tomcat-embed-core",
		Version: "10.1.0",
		Purl:    "pkg:maven/org.apache.tomcat.embed/tomcat-embed-core@10.1.0",
		Source:  SourceOriginal,
	}}

	newTestEnricher(resolver).Enrich(context.Background(), packages)

	if resolver.calls != 1 {
		t.Errorf("resolver calls = %d, want 1", resolver.calls)
	}
	if len(packages[0].Licenses) != 1 || packages[0].Licenses[0].Name != "Apache-2.0" {
		t.Fatalf("licenses = %v, want Apache-2.0 from heuristics", packages[0].Licenses)
	}
	if packages[0].Source != SourceEnriched {
		t.Errorf("source = %q, want %q", packages[0].Source, SourceEnriched)
	}
}

func TestEnrich_UnresolvableStaysEmpty(t *testing.T) {
	packages := []Package{{
		Name:    "mylib",
		Version: "1.0.0",
		Purl:    "pkg:maven/com.example/mylib@1.0.0",
		Source:  SourceOriginal,
	}}

	newTestEnricher(&stubResolver{}).Enrich(context.Background(), packages)

	if packages[0].HasLicenses() {
		t.Errorf("unresolvable package should stay empty, got %v", packages[0].Licenses)
	}
	if packages[0].Source != SourceOriginal {
		t.Errorf("source = %q, want %q", packages[0].Source, SourceOriginal)
	}
}

func TestEnrich_NonMavenPurlSkipsRegistry(t *testing.T) {
	resolver := &stubResolver{}

	packages := []Package{{
		Name:    "left-pad",
		Version: "1.3.0",
		Purl:    "pkg:npm/left-pad@1.3.0",
		Source:  SourceOriginal,
	}}

	newTestEnricher(resolver).Enrich(context.Background(), packages)

	if resolver.calls != 0 {
		t.Errorf("non-Maven purl triggered %d resolver calls, want 0", resolver.calls)
	}
}

func TestMavenCoordinates(t *testing.T) {
	tests := []struct {
		name         string
		purl         string
		wantGroup    string
		wantArtifact string
		wantVersion  string
		wantOK       bool
	}{
		{
			name:         "maven purl",
			purl:         "pkg:maven/org.apache.commons/commons-lang3@3.12.0",
			wantGroup:    "org.apache.commons",
			wantArtifact: "commons-lang3",
			wantVersion:  "3.12.0",
			wantOK:       true,
		},
		{name: "npm purl", purl: "pkg:npm/left-pad@1.3.0", wantOK: false},
		{name: "missing version", purl: "pkg:maven/org.example/mylib", wantOK: false},
		{name: "missing group", purl: "pkg:maven/mylib@1.0.0", wantOK: false},
		{name: "not a purl", purl: "org.example:mylib:1.0.0", wantOK: false},
		{name: "empty", purl: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, artifact, version, ok := mavenCoordinates(tt.purl)
			if ok != tt.wantOK {
				t.Fatalf("mavenCoordinates(%q) ok = %v, want %v", tt.purl, ok, tt.wantOK)
			}
			if group != tt.wantGroup || artifact != tt.wantArtifact || version != tt.wantVersion {
				t.Errorf("mavenCoordinates(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.purl, group, artifact, version, tt.wantGroup, tt.wantArtifact, tt.wantVersion)
			}
		})
	}
}

// TestPipeline_EndToEnd runs parse, enrich, and dedupe over three
// synthetic manifest lines: one with direct license text, one resolved
// through the registry stub, one caught by the heuristics.
func TestPipeline_EndToEnd(t *testing.T) {
	manifest := "commons-lang3:3.12.0:pkg:maven/org.apache.commons/commons-lang3@3.12.0 - Apache-2.0\n" +
		"mylib:1.0.0:pkg:maven/com.example/mylib@1.0.0 - \n" +
		"jakarta.activation-api:2.1.0:pkg:maven/jakarta.activation/jakarta.activation-api@2.1.0 - "

	resolver := &stubResolver{licenses: map[string][]license.License{
		"com.example:mylib:1.0.0": {license.New("MIT")},
	}}

	p := &Parser{}
	packages := Deduplicate(newTestEnricher(resolver).Enrich(context.Background(), p.Parse(manifest)))

	if len(packages) != 3 {
		t.Fatalf("got %d packages, want 3", len(packages))
	}

	want := []struct {
		licenseName string
		source      LicenseSource
	}{
		{"Apache-2.0", SourceOriginal},
		{"MIT", SourceEnriched},
		{"EPL-2.0", SourceEnriched},
	}

	for i, w := range want {
		pkg := packages[i]
		if len(pkg.Licenses) != 1 {
			t.Fatalf("package %s has %d licenses, want 1", pkg.Name, len(pkg.Licenses))
		}
		if pkg.Licenses[0].Name != w.licenseName {
			t.Errorf("package %s license = %q, want %q", pkg.Name, pkg.Licenses[0].Name, w.licenseName)
		}
		if pkg.Source != w.source {
			t.Errorf("package %s source = %q, want %q", pkg.Name, pkg.Source, w.source)
		}
	}
}
