package repertoire

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePage = `<html><body>
<h1>Root Zone LGR</h1>
<table>
<tr><th>Char</th><th>Name</th></tr>
<tr><td>&#x00E9;</td><td>LATIN SMALL LETTER E WITH ACUTE</td></tr>
<tr><td>&#x1EC7;</td><td>LATIN SMALL LETTER E WITH CIRCUMFLEX AND DOT BELOW</td></tr>
<tr><td>&#x00E9;</td><td>duplicate entry</td></tr>
<tr><td>ab</td><td>ascii-only cell is skipped</td></tr>
<tr><td> &#x00F1; </td><td>whitespace is trimmed</td></tr>
</table>
<table>
<tr><td>a&#x0331;</td><td>sequence cell keeps the mark</td></tr>
</table>
</body></html>`

func TestExtract(t *testing.T) {
	got, err := Extract(strings.NewReader(fixturePage))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []rune{0x00E9, 0x1EC7, 0x00F1, 0x0331}
	if len(got) != len(want) {
		t.Fatalf("extracted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("extracted %v, want %v", got, want)
		}
	}
}

func TestExtractEmptyPage(t *testing.T) {
	if _, err := Extract(strings.NewReader("<html><body><p>nothing</p></body></html>")); err == nil {
		t.Fatalf("expected error for page without candidates")
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lgr.html")
	if err := os.WriteFile(path, []byte(fixturePage), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("extract file: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 candidates, got %v", got)
	}
}

func TestCacheFilename(t *testing.T) {
	name, err := cacheFilename(DefaultSourceURL)
	if err != nil {
		t.Fatalf("cache filename: %v", err)
	}
	if name != "rz-lgr-5-latin-script-26may22-en.html" {
		t.Fatalf("unexpected cache filename %q", name)
	}
}
