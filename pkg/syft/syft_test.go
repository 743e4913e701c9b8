package syft

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aborroy/alfresco-sbom-generator/pkg/errors"
)

func TestArgs_Defaults(t *testing.T) {
	r := &Runner{}
	args := r.args("alfresco/alfresco-content-repository:23.1.0")

	want := []string{
		"alfresco/alfresco-content-repository:23.1.0",
		"--exclude", "/lib",
		"--exclude", "/var",
		"--enrich", "all",
		"-o", "template",
		"-t", DefaultTemplate,
	}

	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestArgs_TemplateFile(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "custom.tmpl")
	if err := os.WriteFile(tmpl, []byte("{{.name}}"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &Runner{TemplateFile: tmpl}
	args := r.args("ubuntu:latest")

	if args[len(args)-1] != tmpl {
		t.Errorf("last arg = %q, want template file path %q", args[len(args)-1], tmpl)
	}
}

func TestArgs_MissingTemplateFileFallsBack(t *testing.T) {
	r := &Runner{TemplateFile: filepath.Join(t.TempDir(), "does-not-exist.tmpl")}
	args := r.args("ubuntu:latest")

	if args[len(args)-1] != DefaultTemplate {
		t.Errorf("missing template file should fall back to the default template")
	}
}

func TestArgs_ExtraExcludes(t *testing.T) {
	r := &Runner{ExtraExcludes: []string{"/opt/noise"}}
	args := r.args("ubuntu:latest")

	joined := strings.Join(args, " ")
	for _, path := range []string{"/lib", "/var", "/opt/noise"} {
		if !strings.Contains(joined, "--exclude "+path) {
			t.Errorf("args missing --exclude %s: %v", path, args)
		}
	}
}

func TestRun_EmptyImage(t *testing.T) {
	r := &Runner{}
	_, err := r.Run(context.Background(), "")
	if !errors.Is(err, errors.ErrCodeInvalidImage) {
		t.Errorf("err = %v, want ErrCodeInvalidImage", err)
	}
}

func TestRun_BinaryNotFound(t *testing.T) {
	r := &Runner{Binary: "definitely-not-syft-" + t.Name()}
	_, err := r.Run(context.Background(), "ubuntu:latest")
	if !errors.Is(err, errors.ErrCodeScannerNotFound) {
		t.Errorf("err = %v, want ErrCodeScannerNotFound", err)
	}
}

func TestRun_ScannerFailure(t *testing.T) {
	// "false" exits non-zero without output, standing in for a failed scan.
	r := &Runner{Binary: "false"}
	_, err := r.Run(context.Background(), "ubuntu:latest")
	if !errors.Is(err, errors.ErrCodeScannerFailed) {
		t.Errorf("err = %v, want ErrCodeScannerFailed", err)
	}
}
