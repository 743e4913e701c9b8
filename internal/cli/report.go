package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// reportOpts holds the command-line flags for the report command.
type reportOpts struct {
	output     string
	configPath string
	enrich     bool
}

// reportCommand creates the report command, which renders a report from
// previously saved syft template output without rescanning the image.
func (c *CLI) reportCommand() *cobra.Command {
	opts := reportOpts{output: defaultOutputFile}

	cmd := &cobra.Command{
		Use:   "report <manifest-file> <image-name>",
		Short: "Render an HTML report from saved syft template output",
		Long: `Render an HTML report from syft template output saved earlier, without
rescanning the image. Useful for iterating on report output or for
air-gapped report generation with --enrich disabled.

Examples:
  sbomgen report manifest.txt alfresco/alfresco-content-repository:23.1.0
  sbomgen report manifest.txt my-app:v1.0 --enrich -o report.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "report output path")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/sbomgen/config.toml)")
	cmd.Flags().BoolVar(&opts.enrich, "enrich", false, "resolve missing licenses from external sources")

	return cmd
}

func (c *CLI) runReport(cmd *cobra.Command, manifestPath, image string, opts reportOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	packages, err := c.parsePackages(string(data))
	if err != nil {
		return err
	}
	printInfo("Found %d packages", len(packages))

	if opts.enrich {
		enricher, err := c.newEnricher(cfg)
		if err != nil {
			return err
		}
		packages = enricher.Enrich(cmd.Context(), packages)
		if err := cmd.Context().Err(); err != nil {
			return err
		}
	}

	return c.writeReport(image, opts.output, packages, cfg)
}
