// Package httputil provides HTTP-adjacent utilities shared by the
// registry integrations: a file-based response cache with TTL and
// namespacing, and retry helpers with exponential backoff.
//
// The cache stores JSON-marshaled values keyed by SHA-256 hashes, so any
// string (URLs, Maven coordinates) is a valid key. Retries only apply to
// errors wrapped in [RetryableError], which clients use to mark transient
// failures such as timeouts and 5xx responses.
package httputil
