// Package sbom turns raw scanner output into an enriched, deduplicated
// package list.
//
// The pipeline runs in four stages: Parser reads the scanner's template
// output into Package values, Enricher fills in missing licenses via
// registry lookups and name heuristics, Deduplicate merges entries that
// share a (name, version) key, and the result is handed to the report
// renderer. Per-package failures degrade to "no license found" and never
// stop the run.
package sbom
