// Package github provides a client for the GitHub license-detection API.
//
// It is used as a secondary license source when a Maven POM carries an
// <scm> URL but no <licenses> block. Lookups are anonymous unless a
// token is supplied; anonymous requests are heavily rate-limited, which
// is treated like any other lookup failure.
package github
