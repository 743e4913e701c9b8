// Package integrations provides HTTP clients for the external license
// data sources.
//
// # Overview
//
// This package contains low-level API clients used during license
// enrichment. Each source has its own subpackage:
//
//   - [maven]: Maven Central POM metadata (primary source)
//   - [github]: GitHub license-detection API (secondary fallback)
//
// # Client Pattern
//
// Both clients follow a consistent pattern:
//
//	client, err := maven.NewClient(24 * time.Hour)  // Cache TTL
//	licenses := client.ResolveLicenses(ctx, "org.example", "lib", "1.0.0", 4)
//
// Clients handle:
//   - HTTP requests with retry and a fixed 10s timeout
//   - Response caching (file-based, configurable TTL)
//   - API-specific parsing and normalization
//
// All lookup failures are non-fatal: clients degrade to empty results so
// the enrichment pipeline can fall through to the next source.
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by both
// clients, including response caching via [httputil.Cache].
//
// [maven]: github.com/aborroy/alfresco-sbom-generator/pkg/integrations/maven
// [github]: github.com/aborroy/alfresco-sbom-generator/pkg/integrations/github
// [httputil.Cache]: github.com/aborroy/alfresco-sbom-generator/pkg/httputil.Cache
package integrations
