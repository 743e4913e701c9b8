package sbom

import (
	"strings"

	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

// heuristicRule maps a structural package-name pattern to a known
// license. Rules and their conditions are evaluated in declaration
// order; the first condition to match anywhere in the table wins.
type heuristicRule struct {
	name       string
	license    license.License
	conditions []func(*Package) bool
}

// catalinaArtifacts are Tomcat-internal artifacts whose names carry no
// recognizable vendor prefix.
var catalinaArtifacts = map[string]bool{
	"catalina":             true,
	"jasper":               true,
	"catalina-ha":          true,
	"catalina-tribes":      true,
	"catalina-ssi":         true,
	"catalina-storeconfig": true,
}

var heuristicRules = []heuristicRule{
	{
		name:    "apache_packages",
		license: license.New("Apache-2.0"),
		conditions: []func(*Package) bool{
			func(p *Package) bool { return strings.Contains(p.Purl, "org.apache") },
			func(p *Package) bool { return hasAnyPrefix(p.Name, "tomcat", "tika-", "commons-") },
			func(p *Package) bool { return catalinaArtifacts[p.Name] },
		},
	},
	{
		name:    "jakarta_packages",
		license: license.New("EPL-2.0"),
		conditions: []func(*Package) bool{
			func(p *Package) bool { return strings.HasPrefix(p.Name, "jakarta") },
		},
	},
	{
		name:    "st4_packages",
		license: license.New("BSD-3-Clause"),
		conditions: []func(*Package) bool{
			func(p *Package) bool { return strings.HasPrefix(p.Name, "st4") || p.Name == "ST4" },
		},
	},
	{
		name:    "acegi_packages",
		license: license.New("Apache-2.0"),
		conditions: []func(*Package) bool{
			func(p *Package) bool { return strings.HasPrefix(p.Name, "acegi") },
		},
	},
}

// InferLicenses applies the heuristic rule table to a package. It is a
// last-resort fallback, called only after registry and source-hosting
// lookups have both come up empty. A match is logged with the rule
// name; no match yields nil silently.
func InferLicenses(pkg *Package, logf func(format string, args ...any)) []license.License {
	for _, rule := range heuristicRules {
		for _, matches := range rule.conditions {
			if matches(pkg) {
				if logf != nil {
					logf("applied heuristic %q to %s", rule.name, pkg.Name)
				}
				return []license.License{rule.license}
			}
		}
	}
	return nil
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
