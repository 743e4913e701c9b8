package sbom

import "github.com/aborroy/alfresco-sbom-generator/pkg/license"

// LicenseSource records where a package's license data came from.
type LicenseSource string

const (
	// SourceOriginal marks licenses reported by the scanner itself.
	SourceOriginal LicenseSource = "Original"

	// SourceEnriched marks licenses filled in after the scan through
	// registry lookups or name heuristics.
	SourceEnriched LicenseSource = "Enriched"
)

// Package is one software package discovered in a container image.
//
// Identity is (name, version): two entries sharing that key are treated
// as the same package even when their purls differ, and are merged by
// [Deduplicate]. Enrichment replaces Licenses wholesale and flips Source
// to SourceEnriched, but only for packages that started empty.
type Package struct {
	Name     string
	Version  string
	Purl     string
	Licenses []license.License
	Source   LicenseSource
}

// PackageKey is the (name, version) identity of a package.
type PackageKey struct {
	Name    string
	Version string
}

// HasLicenses reports whether at least one license is recorded.
func (p *Package) HasLicenses() bool {
	return len(p.Licenses) > 0
}

// Key returns the package's (name, version) identity.
func (p *Package) Key() PackageKey {
	return PackageKey{Name: p.Name, Version: p.Version}
}
