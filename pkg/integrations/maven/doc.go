// Package maven provides a client for resolving license metadata from
// Maven Central POM files.
//
// The client fetches the POM for a (groupId, artifactId, version)
// coordinate, reads its <licenses> block, and, when the POM declares
// none, follows the <parent> chain up to [MaxParentDepth] levels. A POM
// with an <scm> URL but no licenses is handed to an optional repository
// license finder (GitHub) as a secondary fallback.
//
// All lookups degrade to empty results on failure; nothing in this
// package aborts the enrichment pipeline.
package maven
