package github

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/aborroy/alfresco-sbom-generator/pkg/integrations"
	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

var gitSuffix = regexp.MustCompile(`\.git$`)

// Client queries the GitHub license-detection endpoint for repositories
// referenced from POM <scm> URLs. It is a secondary fallback: any
// failure degrades to an empty result.
type Client struct {
	*integrations.Client
	baseURL string

	// Logf receives diagnostics about failed lookups. Optional.
	Logf func(format string, args ...any)
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests
// (subject to much lower rate limits).
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	cache, err := integrations.NewCacheWithNamespace("github:", cacheTTL)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  integrations.NewClient(cache, headers),
		baseURL: DefaultBaseURL,
	}, nil
}

// SetBaseURL points the client at a different API root, e.g. a GitHub
// Enterprise instance. Trailing slashes are stripped.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// LicenseForRepoURL resolves the detected license of a repository URL.
//
// Only github.com URLs are handled; anything else returns nil
// immediately. The URL's trailing ".git" is stripped and the owner/repo
// path is queried against the repository license endpoint. The SPDX
// identifier from the response is canonicalized for a reference URL,
// falling back to the HTML permalink GitHub returns.
//
// At most one license is returned. Failures (non-200, rate limiting,
// malformed response) are logged and yield nil.
func (c *Client) LicenseForRepoURL(ctx context.Context, repoURL string) []license.License {
	repoPath, ok := repoPathFromURL(repoURL)
	if !ok {
		return nil
	}

	var resp licenseResponse
	key := "license:" + repoPath
	err := c.Cached(ctx, key, false, &resp, func() error {
		return c.Get(ctx, c.baseURL+"/repos/"+repoPath+"/license", &resp)
	})
	if err != nil {
		c.logf("failed to fetch GitHub license for %s: %v", repoURL, err)
		return nil
	}

	spdxID := strings.TrimSpace(resp.License.SPDXID)
	if spdxID == "" {
		return nil
	}

	url, ok := license.CanonicalURL(spdxID)
	if !ok {
		url = resp.HTMLURL
	}
	return []license.License{{Name: spdxID, URL: url}}
}

func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// repoPathFromURL extracts "owner/repo" from a github.com URL.
// Returns ok=false for URLs on other hosts or without a repo path.
func repoPathFromURL(repoURL string) (string, bool) {
	const host = "github.com/"
	idx := strings.Index(repoURL, host)
	if idx < 0 {
		return "", false
	}
	path := gitSuffix.ReplaceAllString(repoURL[idx+len(host):], "")
	path = strings.Trim(path, "/")
	if path == "" || !strings.Contains(path, "/") {
		return "", false
	}
	// Keep only owner/repo, dropping any deeper path segments.
	parts := strings.SplitN(path, "/", 3)
	return parts[0] + "/" + parts[1], true
}

type licenseResponse struct {
	HTMLURL string `json:"html_url"`
	License struct {
		Key    string `json:"key"`
		Name   string `json:"name"`
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}
