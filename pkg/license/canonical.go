package license

import "strings"

// Canonical URLs for the licenses the heuristics can resolve to.
const (
	urlApache2  = "https://www.apache.org/licenses/LICENSE-2.0.txt"
	urlMIT      = "https://opensource.org/licenses/MIT"
	urlBSD3     = "https://opensource.org/licenses/BSD-3-Clause"
	urlGPL2     = "https://www.gnu.org/licenses/old-licenses/gpl-2.0.html"
	urlGPL3     = "https://www.gnu.org/licenses/gpl-3.0.html"
	urlLGPL3    = "https://www.gnu.org/licenses/lgpl-3.0.html"
	urlEPL2     = "https://www.eclipse.org/legal/epl-2.0/"
	urlEPL1     = "https://www.eclipse.org/legal/epl-v10.html"
	urlMPL2     = "https://www.mozilla.org/en-US/MPL/2.0/"
	urlMPL11    = "https://www.mozilla.org/en-US/MPL/1.1/"
	urlAlfresco = "https://www.alfresco.com/legal/agreements"
)

// canonicalURLs maps normalized license identifiers to reference URLs.
// Keys cover the SPDX-style short names and the long-form legal names
// that appear verbatim in POM files and Syft output.
var canonicalURLs = map[string]string{
	// Apache
	"apache-2.0":                              urlApache2,
	"apache license, version 2.0":             urlApache2,
	"the apache software license, version 2.0": urlApache2,
	"the apache software license":             urlApache2,
	"apache license":                          urlApache2,

	// MIT
	"mit":         urlMIT,
	"mit license": urlMIT,

	// BSD
	"bsd-3-clause": urlBSD3,
	"bsd license":  urlBSD3,
	"bsd licence":  urlBSD3,

	// GPL
	"gpl-2.0": urlGPL2,
	"gpl-3.0": urlGPL3,
	"gnu general public license v2": "https://www.gnu.org/licenses/old-licenses/gpl-2.0.txt",

	// LGPL
	"lgpl-3.0": urlLGPL3,
	"lgplv3":   urlLGPL3,
	"gnu lesser general public license v3.0 or later": urlLGPL3,

	// Eclipse
	"epl-2.0":                            urlEPL2,
	"eclipse public license - v 2.0":     urlEPL2,
	"eclipse public license, version 1.0": urlEPL1,

	// Mozilla
	"mpl-2.0":                            urlMPL2,
	"mozilla public license version 1.1": urlMPL11,

	// Other common licenses
	"cddl":                 "https://opensource.org/licenses/CDDL-1.0",
	"unicode-3.0":          "https://www.unicode.org/license.txt",
	"bouncy castle licence": "https://www.bouncycastle.org/licence.html",
	"common public license": "https://opensource.org/licenses/CPL-1.0",
	"cup parser generator copyright notice, license, and disclaimer": "http://www2.cs.tum.edu/projects/cup/licence.php",
	"alfresco component license agreement":                           urlAlfresco,
}

// CanonicalURL resolves a free-text license name to its canonical URL.
//
// The name is normalized (lowercased, trimmed, quotes stripped) and
// looked up in the exact table first. On a miss, ordered substring
// heuristics run in fixed priority: Apache 2.0, MIT, BSD, Eclipse,
// LGPL, GPL, Mozilla, Alfresco. The first matching rule wins.
//
// The lookup is pure; callers decide whether a miss is worth logging.
// See [CanonicalURLContext] for the logging wrapper.
func CanonicalURL(name string) (url string, ok bool) {
	normalized := normalize(name)

	if url, ok := canonicalURLs[normalized]; ok {
		return url, true
	}
	return heuristicURL(normalized)
}

// CanonicalURLContext is [CanonicalURL] plus a diagnostic for unmapped
// names. When no mapping exists and context is non-empty, logf is called
// with the name and the context tag (e.g. "Maven POM"). A nil logf or
// empty context keeps the miss silent.
func CanonicalURLContext(name, context string, logf func(format string, args ...any)) (string, bool) {
	url, ok := CanonicalURL(name)
	if !ok && context != "" && logf != nil {
		logf("missing URL mapping for license %q (context: %s)", normalize(name), context)
	}
	return url, ok
}

// heuristicURL applies the ordered substring rules to a normalized name.
// Rule order matters: "lgpl" must be checked before "gpl", and the
// version-sensitive families branch on the version token.
func heuristicURL(name string) (string, bool) {
	switch {
	case strings.Contains(name, "apache") && strings.Contains(name, "2.0"):
		return urlApache2, true
	case strings.HasPrefix(name, "mit"):
		return urlMIT, true
	case strings.Contains(name, "bsd"):
		return urlBSD3, true
	case strings.Contains(name, "eclipse"):
		if strings.Contains(name, "2.0") {
			return urlEPL2, true
		}
		return urlEPL1, true
	case strings.Contains(name, "lgpl") || strings.Contains(name, "lesser"):
		return urlLGPL3, true
	case strings.Contains(name, "gpl"):
		if strings.Contains(name, "3") {
			return urlGPL3, true
		}
		return urlGPL2, true
	case strings.Contains(name, "mozilla") || strings.Contains(name, "mpl"):
		if strings.Contains(name, "2.0") {
			return urlMPL2, true
		}
		return urlMPL11, true
	case strings.Contains(name, "alfresco"):
		return urlAlfresco, true
	}
	return "", false
}
