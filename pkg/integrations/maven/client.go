package maven

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/aborroy/alfresco-sbom-generator/pkg/integrations"
	"github.com/aborroy/alfresco-sbom-generator/pkg/license"
)

// MaxParentDepth bounds how many parent POM levels are followed when a
// child POM declares no licenses. Malformed or self-referential parent
// chains are a real possibility, so traversal is cut off by counter
// rather than relying on fetch failure.
const MaxParentDepth = 4

// DefaultBaseURL is the Maven Central repository root.
const DefaultBaseURL = "https://repo1.maven.org/maven2"

// RepoLicenseFinder resolves licenses from a source-control URL. It is
// the hook through which the Maven client falls back to GitHub when a
// POM declares an <scm> block but no <licenses>.
type RepoLicenseFinder interface {
	LicenseForRepoURL(ctx context.Context, repoURL string) []license.License
}

// Client fetches POM metadata from Maven Central and resolves license
// information, following parent POM chains when needed.
//
// POM fetches are memoized per (group, artifact, version) triple for the
// lifetime of the client, so packages sharing a parent POM trigger at
// most one network call for it. The client is intended for sequential
// use within a single run; it is not safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
	memo    map[string]*pomProject

	// Repo, when set, is consulted for the <scm> URL of POMs that
	// declare no licenses. Optional.
	Repo RepoLicenseFinder

	// Logf receives diagnostics about failed fetches and unmapped
	// license names. Optional; nil disables logging.
	Logf func(format string, args ...any)
}

// NewClient creates a Maven Central client with the specified cache TTL.
//
// The cacheTTL parameter sets how long raw POM responses are cached on
// disk. A TTL of 0 keeps entries indefinitely; released POMs never change.
//
// Returns an error if the cache directory cannot be created or accessed.
func NewClient(cacheTTL time.Duration) (*Client, error) {
	cache, err := integrations.NewCacheWithNamespace("maven:", cacheTTL)
	if err != nil {
		return nil, err
	}
	return &Client{
		Client:  integrations.NewClient(cache, nil),
		baseURL: DefaultBaseURL,
		memo:    make(map[string]*pomProject),
	}, nil
}

// SetBaseURL points the client at a different repository root, e.g. an
// internal mirror. Trailing slashes are stripped.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// ResolveLicenses looks up license information for a Maven coordinate,
// recursively checking parent POMs when the immediate POM has none.
//
// The search stops at the first POM level that yields licenses ("first
// non-empty wins"); license sets are never merged across levels. A
// maxDepth of 0, a missing POM, or an exhausted parent chain all yield
// an empty result. Pass [MaxParentDepth] unless a tighter bound is needed.
//
// All failures are non-fatal: network errors and malformed POMs degrade
// to an empty result so the caller can fall through to heuristics.
func (c *Client) ResolveLicenses(ctx context.Context, groupID, artifactID, version string, maxDepth int) []license.License {
	if maxDepth == 0 {
		return nil
	}

	pom := c.fetchPOM(ctx, groupID, artifactID, version)
	if pom == nil {
		return nil
	}

	if licenses := c.extractLicenses(ctx, pom); len(licenses) > 0 {
		return licenses
	}

	parent := pom.Parent
	if parent == nil {
		return nil
	}

	parentGroup := strings.TrimSpace(parent.GroupID)
	if parentGroup == "" {
		parentGroup = groupID
	}
	parentArtifact := strings.TrimSpace(parent.ArtifactID)
	parentVersion := strings.TrimSpace(parent.Version)
	if parentArtifact == "" || parentVersion == "" {
		return nil
	}

	return c.ResolveLicenses(ctx, parentGroup, parentArtifact, parentVersion, maxDepth-1)
}

// fetchPOM retrieves and parses a POM, memoizing the result (including
// failures) per exact coordinate triple. Each triple is fetched at most
// once per run.
func (c *Client) fetchPOM(ctx context.Context, groupID, artifactID, version string) *pomProject {
	key := groupID + ":" + artifactID + ":" + version
	if pom, ok := c.memo[key]; ok {
		return pom
	}

	pom, err := c.fetch(ctx, key, groupID, artifactID, version)
	if err != nil {
		c.logf("failed to fetch POM for %s: %v", key, err)
		pom = nil
	}
	c.memo[key] = pom
	return pom
}

func (c *Client) fetch(ctx context.Context, key, groupID, artifactID, version string) (*pomProject, error) {
	groupPath := strings.ReplaceAll(groupID, ".", "/")
	url := fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom",
		c.baseURL, groupPath, artifactID, version, artifactID, version)

	var raw string
	err := c.Cached(ctx, key, false, &raw, func() error {
		data, err := c.GetText(ctx, url)
		if err != nil {
			return err
		}
		raw = data
		return nil
	})
	if err != nil {
		return nil, err
	}

	var pom pomProject
	if err := xml.Unmarshal([]byte(raw), &pom); err != nil {
		return nil, err
	}
	return &pom, nil
}

// extractLicenses reads the <licenses> block of a POM. Entries without a
// URL are canonicalized; when the POM declares no licenses at all but
// carries an <scm> URL, the repository fallback is consulted.
func (c *Client) extractLicenses(ctx context.Context, pom *pomProject) []license.License {
	var licenses []license.License
	for _, entry := range pom.Licenses {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		url := strings.TrimSpace(entry.URL)
		if url == "" {
			url, _ = license.CanonicalURLContext(name, "Maven POM", c.Logf)
		}
		licenses = append(licenses, license.License{Name: name, URL: url})
	}
	if len(licenses) > 0 {
		return licenses
	}

	if scm := strings.TrimSpace(pom.SCMURL); scm != "" && c.Repo != nil {
		return c.Repo.LicenseForRepoURL(ctx, scm)
	}
	return nil
}

func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

type pomProject struct {
	GroupID    string       `xml:"groupId"`
	ArtifactID string       `xml:"artifactId"`
	Version    string       `xml:"version"`
	Licenses   []pomLicense `xml:"licenses>license"`
	SCMURL     string       `xml:"scm>url"`
	Parent     *pomParent   `xml:"parent"`
}

type pomLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}
