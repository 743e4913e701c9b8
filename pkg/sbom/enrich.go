package sbom

import (
	"context"
	"strings"
	"time"

	"github.com/anchore/packageurl-go"

	"github.com/aborroy/alfresco-sbom-generator/pkg/integrations/maven"
	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

// DefaultLookupDelay is the pause between consecutive external lookups,
// keeping the registry and the source-hosting API happy.
const DefaultLookupDelay = 500 * time.Millisecond

// CoordinateResolver resolves licenses for a Maven coordinate triple,
// following parent POM chains up to maxDepth hops. *maven.Client is the
// production implementation.
type CoordinateResolver interface {
	ResolveLicenses(ctx context.Context, groupID, artifactID, version string, maxDepth int) []license.License
}

// Enricher fills in licenses for packages the scanner reported without
// any. For each such package it tries the coordinate registry first
// (when the purl names a Maven coordinate) and falls back to the name
// heuristics. Packages that already carry licenses are never touched.
type Enricher struct {
	Resolver CoordinateResolver
	MaxDepth int
	Delay    time.Duration

	// Logf receives progress and diagnostics. Optional.
	Logf func(format string, args ...any)
}

// NewEnricher creates an Enricher with the default parent-chain depth
// and lookup delay.
func NewEnricher(resolver CoordinateResolver) *Enricher {
	return &Enricher{
		Resolver: resolver,
		MaxDepth: maven.MaxParentDepth,
		Delay:    DefaultLookupDelay,
	}
}

// Enrich mutates packages in place and returns the same slice for
// chaining. The delay is observed between consecutive lookups, not
// before the first one. A cancelled context stops enrichment early and
// returns the packages processed so far.
func (e *Enricher) Enrich(ctx context.Context, packages []Package) []Package {
	var missing []*Package
	for i := range packages {
		if !packages[i].HasLicenses() {
			missing = append(missing, &packages[i])
		}
	}

	if len(missing) == 0 {
		e.logf("all packages already have license information")
		return packages
	}
	e.logf("enriching %d packages from external sources", len(missing))

	for i, pkg := range missing {
		if i > 0 {
			if err := sleep(ctx, e.Delay); err != nil {
				return packages
			}
		}
		e.logf("[%3d/%d] %s:%s", i+1, len(missing), pkg.Name, pkg.Version)

		licenses := e.lookup(ctx, pkg)
		if len(licenses) == 0 {
			e.logf("    no license information found")
			continue
		}
		pkg.Licenses = licenses
		pkg.Source = SourceEnriched
		e.logf("    found: %s", strings.Join(license.Names(licenses), ", "))
	}

	return packages
}

func (e *Enricher) lookup(ctx context.Context, pkg *Package) []license.License {
	if group, artifact, version, ok := mavenCoordinates(pkg.Purl); ok && e.Resolver != nil {
		if licenses := e.Resolver.ResolveLicenses(ctx, group, artifact, version, e.MaxDepth); len(licenses) > 0 {
			return licenses
		}
	}
	return InferLicenses(pkg, e.Logf)
}

// mavenCoordinates extracts (group, artifact, version) from a Maven
// purl. Parse failures and non-Maven purls report ok=false, which the
// caller treats as "registry not applicable", not an error.
func mavenCoordinates(purl string) (group, artifact, version string, ok bool) {
	p, err := packageurl.FromString(purl)
	if err != nil || p.Type != packageurl.TypeMaven {
		return "", "", "", false
	}
	if p.Namespace == "" || p.Name == "" || p.Version == "" {
		return "", "", "", false
	}
	return p.Namespace, p.Name, p.Version, true
}

func (e *Enricher) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// sleep blocks for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
