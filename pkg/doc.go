// Package pkg provides the core libraries for the Alfresco SBOM generator.
//
// # Overview
//
// The tool turns a container image into an HTML license report. The pkg
// directory is organized by concern:
//
//   - [syft] - Runs the Syft scanner and captures its template output
//   - [sbom] - Package model, Syft output parsing, license enrichment,
//     heuristics, and deduplication
//   - [license] - License names and canonical URL mapping
//   - [integrations] - HTTP clients for Maven Central and GitHub
//   - [report] - HTML report rendering
//   - [httputil] - File-based HTTP response cache and retry helpers
//   - [errors] - Structured error codes shared by the CLI
//
// # Data Flow
//
//	Container image
//	         ↓
//	    [syft] (scan, template output)
//	         ↓
//	    [sbom] parse → enrich (via [integrations]) → deduplicate
//	         ↓
//	    [report] HTML output
//
// [syft]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/syft
// [sbom]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/sbom
// [license]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/license
// [integrations]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/integrations
// [report]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/report
// [httputil]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/aborroy/alfresco-sbom-generator/pkg/errors
package pkg
