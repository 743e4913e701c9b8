package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aborroy/alfresco-sbom-generator/pkg/sbom"
)

// duration wraps time.Duration for TOML decoding ("500ms", "1h", ...).
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Config holds the optional settings read from the TOML config file.
// Every field has a working default; the file only needs to exist when
// something is overridden.
type Config struct {
	// MavenBaseURL overrides the Maven Central repository root, e.g.
	// for an internal mirror.
	MavenBaseURL string `toml:"maven_base_url"`

	// GitHubBaseURL overrides the GitHub API root, e.g. for a GitHub
	// Enterprise instance.
	GitHubBaseURL string `toml:"github_base_url"`

	// GitHubToken authenticates license lookups. Falls back to the
	// GITHUB_TOKEN environment variable.
	GitHubToken string `toml:"github_token"`

	// LookupDelay is the pause between consecutive external lookups.
	LookupDelay duration `toml:"lookup_delay"`

	// CacheTTL controls how long POM and license responses stay cached.
	CacheTTL duration `toml:"cache_ttl"`

	// CoverageThreshold is the license coverage percentage under which
	// a suggestion to add more data sources is printed.
	CoverageThreshold float64 `toml:"coverage_threshold"`

	// Excludes are image paths passed to syft in addition to the
	// built-in excludes.
	Excludes []string `toml:"excludes"`
}

func defaultConfig() Config {
	return Config{
		LookupDelay:       duration{sbom.DefaultLookupDelay},
		CacheTTL:          duration{24 * time.Hour},
		CoverageThreshold: 80,
	}
}

// loadConfig reads the config file at path, or the default location
// when path is empty. A missing file at the default location is fine;
// an explicitly given path must exist. A github_token left unset falls
// back to the GITHUB_TOKEN environment variable.
func loadConfig(path string) (Config, error) {
	cfg, err := readConfig(path)
	if cfg.GitHubToken == "" {
		cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	return cfg, err
}

func readConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.config/sbomgen/config.toml, honoring
// XDG_CONFIG_HOME.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
