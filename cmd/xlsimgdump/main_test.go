package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biffraster/xls2img"
)

func TestRunUsageOnMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("got exit code %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Usage") {
		t.Fatalf("expected usage text on stderr, got %q", stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "does-not-exist.xls")}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("got exit code %d, want 1", code)
	}
}

func TestRunWrongFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.xls")
	if err := os.WriteFile(path, []byte("not a compound document"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, strings.NewReader(""), &stdout, &stderr)
	if code == 0 {
		t.Fatalf("expected non-zero exit code for a malformed file")
	}
	if !strings.Contains(stderr.String(), path) {
		t.Fatalf("expected stderr to mention the failing path, got %q", stderr.String())
	}
}

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		format xls2img.Format
		want   string
	}{
		{xls2img.FormatUnknown, ".bin"},
		{xls2img.FormatPNG, ".png"},
		{xls2img.FormatJPEG, ".jpg"},
	}
	for _, c := range cases {
		if got := extensionFor(c.format); got != c.want {
			t.Errorf("extensionFor(%v) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	if got := baseName("report.xls"); got != "report" {
		t.Fatalf("baseName(report.xls) = %q, want report", got)
	}
	if got := baseName("-"); got != "workbook" {
		t.Fatalf("baseName(-) = %q, want workbook", got)
	}
	if got := baseName("/a/b/c.xls"); got != "c" {
		t.Fatalf("baseName(/a/b/c.xls) = %q, want c", got)
	}
}
