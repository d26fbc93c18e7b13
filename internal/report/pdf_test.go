package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ldwg/diacritica/internal/ucd"
)

func TestRenderPDF(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	result := testResult(t, src)

	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := RenderPDF(path, result, src, PDFOptions{Occurrences: true}); err != nil {
		t.Fatalf("render pdf: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (starts with %q)", data[:min(8, len(data))])
	}
	if len(data) < 1024 {
		t.Fatalf("pdf suspiciously small: %d bytes", len(data))
	}
}

func TestRenderPDFMissingFont(t *testing.T) {
	src, err := ucd.Load()
	if err != nil {
		t.Fatalf("load source: %v", err)
	}
	result := testResult(t, src)

	path := filepath.Join(t.TempDir(), "report.pdf")
	opts := PDFOptions{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}
	if err := RenderPDF(path, result, src, opts); err == nil {
		t.Fatalf("expected error for missing font file")
	}
}
