package integrations

import (
	"errors"
	"net/http"
	"time"

	"github.com/aborroy/alfresco-sbom-generator/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NewCache creates a file-based cache with the given TTL in the default cache directory.
// See [httputil.NewCache] for details on cache location and behavior.
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}

// NewCacheWithNamespace creates a file-based cache scoped to the given key prefix.
// The prefix keeps Maven and GitHub entries from colliding in the shared directory.
func NewCacheWithNamespace(prefix string, ttl time.Duration) (*httputil.Cache, error) {
	cache, err := NewCache(ttl)
	if err != nil {
		return nil, err
	}
	return cache.Namespace(prefix), nil
}
