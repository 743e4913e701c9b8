package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aborroy/alfresco-sbom-generator/pkg/errors"
	"github.com/aborroy/alfresco-sbom-generator/pkg/integrations/github"
	"github.com/aborroy/alfresco-sbom-generator/pkg/integrations/maven"
	"github.com/aborroy/alfresco-sbom-generator/pkg/report"
	"github.com/aborroy/alfresco-sbom-generator/pkg/sbom"
	"github.com/aborroy/alfresco-sbom-generator/pkg/syft"
)

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	template   string // custom syft template file
	output     string // report output path
	configPath string // config file override
	skipEnrich bool   // skip external license lookups
}

// scanCommand creates the scan command, the main pipeline entry point.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{output: defaultOutputFile}

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Scan a container image and write an SBOM license report",
		Long: `Scan a container image with Syft, enrich missing license information
from Maven Central, GitHub, and package-name heuristics, and write an
HTML report.

Examples:
  sbomgen scan alfresco/alfresco-content-repository:23.1.0
  sbomgen scan ubuntu:latest -o ubuntu_report.html
  sbomgen scan my-app:v1.0 -t custom_template.tmpl --skip-enrich`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "custom syft template file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "report output path")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/sbomgen/config.toml)")
	cmd.Flags().BoolVar(&opts.skipEnrich, "skip-enrich", false, "skip external license lookups")

	return cmd
}

func (c *CLI) runScan(ctx context.Context, image string, opts scanOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	runner := &syft.Runner{
		TemplateFile:  opts.template,
		ExtraExcludes: cfg.Excludes,
		Logf:          c.Logger.Debugf,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s with syft", image))
	spinner.Start()
	output, err := runner.Run(ctx, image)
	if err != nil {
		spinner.StopWithError("Scan failed")
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Scanned %s", image))

	if strings.TrimSpace(output) == "" {
		return errors.New(errors.ErrCodeEmptySBOM,
			"syft produced no output for %s, check the image name and template", image)
	}

	packages, err := c.parsePackages(output)
	if err != nil {
		return err
	}
	printInfo("Found %d packages", len(packages))

	if !opts.skipEnrich {
		enricher, err := c.newEnricher(cfg)
		if err != nil {
			return err
		}
		packages = enricher.Enrich(ctx, packages)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return c.writeReport(image, opts.output, packages, cfg)
}

// parsePackages parses syft template output, failing when nothing
// parseable is found.
func (c *CLI) parsePackages(output string) ([]sbom.Package, error) {
	parser := &sbom.Parser{Logf: c.Logger.Warnf}
	packages := parser.Parse(output)
	if len(packages) == 0 {
		return nil, errors.New(errors.ErrCodeNoPackages,
			"no packages found in syft output, check the template format")
	}
	return packages, nil
}

// newEnricher assembles the enrichment chain: Maven Central with the
// GitHub license API as its SCM fallback, then name heuristics.
func (c *CLI) newEnricher(cfg Config) (*sbom.Enricher, error) {
	gh, err := github.NewClient(cfg.GitHubToken, cfg.CacheTTL.Duration)
	if err != nil {
		return nil, err
	}
	gh.Logf = c.Logger.Debugf
	if cfg.GitHubBaseURL != "" {
		gh.SetBaseURL(cfg.GitHubBaseURL)
	}

	mc, err := maven.NewClient(cfg.CacheTTL.Duration)
	if err != nil {
		return nil, err
	}
	mc.Logf = c.Logger.Debugf
	mc.Repo = gh
	if cfg.MavenBaseURL != "" {
		mc.SetBaseURL(cfg.MavenBaseURL)
	}

	enricher := sbom.NewEnricher(mc)
	enricher.Delay = cfg.LookupDelay.Duration
	enricher.Logf = c.Logger.Infof
	return enricher, nil
}

// writeReport deduplicates, renders the HTML report, and prints the
// coverage summary.
func (c *CLI) writeReport(image, output string, packages []sbom.Package, cfg Config) error {
	before := len(packages)
	packages = sbom.Deduplicate(packages)
	if len(packages) != before {
		printDetail("Deduplicated: %d %s %d packages", before, iconArrow, len(packages))
	}

	if err := report.WriteFile(output, image, packages); err != nil {
		return err
	}

	stats := report.ComputeStats(packages)
	printNewline()
	printSuccess("SBOM analysis complete")
	printCoverage(stats.TotalPackages, stats.WithLicenses, stats.Coverage, cfg.CoverageThreshold)
	printFile(output)

	if stats.Coverage < cfg.CoverageThreshold {
		printWarning("License coverage below %.0f%%, consider adding more heuristics or data sources", cfg.CoverageThreshold)
	}
	printNextStep("Open the report", "xdg-open "+output)
	return nil
}
