package sbom

import (
	"regexp"
	"strings"

	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

var (
	// linePattern matches the scanner's template output shape:
	// "name:version:purl - license text". The purl field ends at the
	// " - " separator, the license text may be empty.
	linePattern = regexp.MustCompile(`^(.+?):(.+?):(.*?) - ?(.*)$`)

	// urlPattern strips embedded http/https tokens from license text.
	urlPattern = regexp.MustCompile(`https?://\S+`)

	// versionWord detects fragments that start a "Version X.Y" phrase,
	// which must not be split off from the preceding license name.
	versionWord = regexp.MustCompile(`^[Vv]ersion\b`)
)

// alfrescoFallbackLicense substitutes for alfresco- prefixed packages
// whose license text the scanner reports empty. Alfresco community
// artifacts omit license metadata from their manifests but are
// LGPL-3.0-or-later across the board.
const alfrescoFallbackLicense = "GNU Lesser General Public License v3.0 or later"

// Parser reads scanner template output into Package values.
type Parser struct {
	// Logf receives diagnostics about skipped lines. Optional.
	Logf func(format string, args ...any)
}

// Parse splits manifest into lines and parses each into a Package.
// Blank lines are ignored; lines that don't match the expected shape
// are logged with their line number and skipped.
func (p *Parser) Parse(manifest string) []Package {
	var packages []Package

	for i, line := range strings.Split(manifest, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			p.logf("could not parse line %d: %s", i+1, line)
			continue
		}

		name := strings.TrimSpace(m[1])
		version := strings.TrimSpace(m[2])
		purl := strings.TrimSpace(m[3])
		licenseText := strings.TrimSpace(m[4])

		if strings.HasPrefix(name, "alfresco-") && (licenseText == "" || licenseText == "-") {
			licenseText = alfrescoFallbackLicense
		}

		packages = append(packages, Package{
			Name:     name,
			Version:  version,
			Purl:     purl,
			Licenses: ParseLicenseText(licenseText),
			Source:   SourceOriginal,
		})
	}

	return packages
}

func (p *Parser) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// ParseLicenseText parses the license field of one manifest line into
// structured licenses. Empty or placeholder-dash text yields nil.
//
// The text is split on commas except where the comma precedes a
// "Version" word, so "Eclipse Public License, Version 2.0" stays one
// fragment. Each fragment has embedded URLs stripped and is truncated
// at the first semicolon; non-empty remainders become licenses with
// canonical URLs filled in where known.
func ParseLicenseText(text string) []license.License {
	if text == "" || text == "-" {
		return nil
	}

	var licenses []license.License
	for _, part := range splitLicenseText(text) {
		name := strings.TrimSpace(strings.SplitN(urlPattern.ReplaceAllString(part, ""), ";", 2)[0])
		if name != "" {
			licenses = append(licenses, license.New(name))
		}
	}
	return licenses
}

// splitLicenseText splits on commas, rejoining fragments that begin
// with a "Version" word onto the preceding fragment.
func splitLicenseText(text string) []string {
	fragments := strings.Split(text, ",")
	parts := fragments[:1]
	for _, frag := range fragments[1:] {
		if versionWord.MatchString(strings.TrimLeft(frag, " \t")) {
			parts[len(parts)-1] += "," + frag
		} else {
			parts = append(parts, frag)
		}
	}
	return parts
}
