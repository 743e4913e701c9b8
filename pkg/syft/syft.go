// Package syft invokes the Syft scanner and captures its template
// output for downstream parsing.
package syft

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/aborroy/alfresco-sbom-generator/pkg/errors"
)

// DefaultTemplate renders one "name:version:purl - licenses" line per
// artifact, the shape sbom.Parser expects.
const DefaultTemplate = "{{- range .artifacts}}" +
	"{{.name}}:{{.version}}:{{.purl}} - {{range .licenses}}{{.value}}{{end}}\n" +
	"{{- end}}"

// defaultExcludes trims directories that inflate scan time without
// contributing Java artifacts.
var defaultExcludes = []string{"/lib", "/var"}

// Runner executes the syft binary against a container image.
type Runner struct {
	// Binary is the executable to invoke. Defaults to "syft".
	Binary string

	// TemplateFile overrides DefaultTemplate when it names an existing
	// file.
	TemplateFile string

	// ExtraExcludes are appended to the default exclude paths.
	ExtraExcludes []string

	// Logf receives the assembled command line before execution. Optional.
	Logf func(format string, args ...any)
}

// Run scans image and returns the rendered template output.
//
// A missing syft binary maps to ErrCodeScannerNotFound with an install
// hint; a non-zero exit maps to ErrCodeScannerFailed carrying syft's
// stderr. Both are fatal to the pipeline.
func (r *Runner) Run(ctx context.Context, image string) (string, error) {
	if image == "" {
		return "", errors.New(errors.ErrCodeInvalidImage, "image reference is empty")
	}

	args := r.args(image)
	if r.Logf != nil {
		r.Logf("running: %s %s", r.binary(), strings.Join(args, " "))
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			return "", errors.Wrap(errors.ErrCodeScannerNotFound, err,
				"syft not found in PATH, install it from https://github.com/anchore/syft")
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errors.Wrap(errors.ErrCodeScannerFailed, err,
			"syft failed scanning %s: %s", image, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func (r *Runner) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "syft"
}

// args assembles the syft command line. The template file is used only
// when it exists on disk, matching the "optional template" contract.
func (r *Runner) args(image string) []string {
	args := []string{image}
	for _, path := range append(append([]string{}, defaultExcludes...), r.ExtraExcludes...) {
		args = append(args, "--exclude", path)
	}
	args = append(args, "--enrich", "all", "-o", "template")

	if r.TemplateFile != "" && fileExists(r.TemplateFile) {
		return append(args, "-t", r.TemplateFile)
	}
	return append(args, "-t", DefaultTemplate)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
