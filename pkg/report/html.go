// Package report renders the final package list as an HTML document.
//
// Rendering is purely presentational: statistics are computed from the
// packages as given and no license decisions happen here. Templates go
// through safehtml, so license URLs fetched from third parties are
// sanitized before they end up in href attributes.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/safehtml/template"

	"github.com/aborroy/alfresco-sbom-generator/pkg/errors"
	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
	"github.com/aborroy/alfresco-sbom-generator/pkg/sbom"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>SBOM Report - {{.Image}}</title>
</head>
<body>
    <div>
        <h1>Software Bill of Materials (SBOM)</h1>

        <h2>Container Image</h2>
        <div>{{.Image}}</div>

        <h2>Summary Statistics</h2>
        <div>
            <div>Total Packages: {{.Stats.TotalPackages}}</div>
            <div>Packages with Licenses: {{.Stats.WithLicenses}}</div>
            <div>Packages without Licenses: {{.Stats.WithoutLicenses}}</div>
            <div>Unique Licenses: {{.Stats.UniqueLicenses}}</div>
            <div>License Coverage: {{.Stats.CoverageLabel}}</div>
        </div>

        <h2>Package Details</h2>
        <table>
            <thead>
                <tr>
                    <th>Package Name</th>
                    <th>Version</th>
                    <th>Licenses</th>
                </tr>
            </thead>
            <tbody>
{{- range .Rows}}
                <tr>
                    <td>{{.Name}}</td>
                    <td>{{.Version}}</td>
                    <td>{{range $i, $lic := .Licenses}}{{if $i}}, {{end}}{{if $lic.URL}}<a href="{{$lic.URL}}" target="_blank" title="View license">{{$lic.Name}}</a>{{else}}{{$lic.Name}}{{end}}{{else}}No license specified{{end}}{{if .Enriched}} <em>(enriched)</em>{{end}}</td>
                </tr>
{{- end}}
            </tbody>
        </table>

        <div>
            <p>
                Generated on {{.Generated}} using
                <a href="https://github.com/anchore/syft" target="_blank">Syft</a>
            </p>
            <p>
                <em>Enriched with license data from Maven Central, GitHub, and heuristics</em>
            </p>
        </div>
    </div>
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(reportTemplate)))

// Stats summarizes license coverage across the final package list.
type Stats struct {
	TotalPackages   int
	WithLicenses    int
	WithoutLicenses int
	UniqueLicenses  int
	Coverage        float64
}

// CoverageLabel renders Coverage as a percentage with one decimal.
func (s Stats) CoverageLabel() string {
	return fmt.Sprintf("%.1f%%", s.Coverage)
}

// ComputeStats tallies coverage for packages. Coverage is 0 for an
// empty list rather than NaN.
func ComputeStats(packages []sbom.Package) Stats {
	stats := Stats{TotalPackages: len(packages)}

	uniqueNames := make(map[string]bool)
	for i := range packages {
		if packages[i].HasLicenses() {
			stats.WithLicenses++
		}
		for _, lic := range packages[i].Licenses {
			uniqueNames[lic.Name] = true
		}
	}

	stats.WithoutLicenses = stats.TotalPackages - stats.WithLicenses
	stats.UniqueLicenses = len(uniqueNames)
	if stats.TotalPackages > 0 {
		stats.Coverage = float64(stats.WithLicenses) / float64(stats.TotalPackages) * 100
	}
	return stats
}

type reportData struct {
	Image     string
	Stats     Stats
	Rows      []row
	Generated string
}

type row struct {
	Name     string
	Version  string
	Licenses []license.License
	Enriched bool
}

// Write renders the HTML report for imageName to w. Rows are sorted by
// lowercased package name, then version, for readability.
func Write(w io.Writer, imageName string, packages []sbom.Package) error {
	rows := make([]row, len(packages))
	for i := range packages {
		rows[i] = row{
			Name:     packages[i].Name,
			Version:  packages[i].Version,
			Licenses: packages[i].Licenses,
			Enriched: packages[i].Source == sbom.SourceEnriched,
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		ni, nj := strings.ToLower(rows[i].Name), strings.ToLower(rows[j].Name)
		if ni != nj {
			return ni < nj
		}
		return rows[i].Version < rows[j].Version
	})

	data := reportData{
		Image:     imageName,
		Stats:     ComputeStats(packages),
		Rows:      rows,
		Generated: time.Now().Format("2006-01-02 at 15:04:05"),
	}

	if err := reportTmpl.Execute(w, data); err != nil {
		return errors.Wrap(errors.ErrCodeReportFailed, err, "failed to render report")
	}
	return nil
}

// WriteFile renders the report to path, creating or truncating it.
func WriteFile(path, imageName string, packages []sbom.Package) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeReportFailed, err, "failed to create report file %s", path)
	}
	defer f.Close()

	if err := Write(f, imageName, packages); err != nil {
		return err
	}
	return f.Close()
}
