package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/ldwg/diacritica/internal/model"
	"github.com/ldwg/diacritica/internal/ucd"
)

const (
	fallbackWidth = 80
	maxTextWidth  = 120
	// FileWidth is the fixed line width used when the report goes to a file
	// instead of a terminal.
	FileWidth = 100
	// Dotted circle carrier keeps lone combining marks from attaching to
	// the surrounding text.
	markCarrier = "◌"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#32CCCC"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	noteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#8C8C8C"))
)

// TextOptions controls the text renderer.
type TextOptions struct {
	Color       bool
	Width       int // 0 means autodetect
	Occurrences bool
}

// RenderText writes the full analysis report as plain text. The character
// database resolves metadata for decomposition elements; the result itself
// is consumed read-only.
func RenderText(w io.Writer, result model.AnalysisResult, src ucd.Source, opts TextOptions) error {
	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}
	if width > maxTextWidth {
		width = maxTextWidth
	}

	lines := []string{
		styled(titleStyle, "ASCII-Unicode Diacritics Analysis Report", opts.Color),
		fmt.Sprintf("Source: %s", result.Source),
		fmt.Sprintf("Unicode version: %s", result.UnicodeVersion),
		fmt.Sprintf("Generated: %s", result.GeneratedAt.Format("2006-01-02 15:04:05")),
		"",
	}
	lines = append(lines, summaryLines(result.Summary, opts.Color)...)
	lines = append(lines, "")

	for _, bucket := range result.Buckets {
		noun := "Diacritic Marks"
		if bucket.DiacriticCount == 1 {
			noun = "Diacritic Mark"
		}
		heading := fmt.Sprintf("Characters with %d %s (%d)", bucket.DiacriticCount, noun, len(bucket.Records))
		lines = append(lines, styled(headingStyle, heading, opts.Color))
		lines = append(lines, bucketTable(bucket, src, width)...)
		lines = append(lines, "")
	}
	if len(result.Buckets) == 0 {
		lines = append(lines, styled(noteStyle, "No qualifying characters were found.", opts.Color), "")
	}

	if opts.Occurrences {
		seqs := OtherOccurrences()
		heading := fmt.Sprintf("Other Occurrences in the Latin RZ LGR (%d)", len(seqs))
		lines = append(lines, styled(headingStyle, heading, opts.Color))
		lines = append(lines, occurrenceTable(seqs, src, width)...)
		lines = append(lines, "")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func styled(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}

func summaryLines(s model.RunSummary, color bool) []string {
	lines := []string{
		styled(headingStyle, "Summary", color),
		fmt.Sprintf("Code points examined: %d", s.Examined),
		fmt.Sprintf("Qualifying: %d", s.Qualifying),
		fmt.Sprintf("Non-qualifying: %d", s.NonQualifying),
	}
	if s.Invalid > 0 {
		lines = append(lines, fmt.Sprintf("Skipped (invalid): %d", s.Invalid))
	}
	if s.Qualifying > 0 {
		lines = append(lines, fmt.Sprintf("Diacritic counts observed: %d-%d", s.MinDiacriticCount, s.MaxDiacriticCount))
	}
	return lines
}

func bucketTable(bucket model.CategoryBucket, src ucd.Source, width int) []string {
	headers := []string{"Char", "Code point", "Base", "Marks", "Details"}
	rows := make([][]string, 0, len(bucket.Records))
	for _, rec := range bucket.Records {
		rows = append(rows, []string{
			string(rec.CodePoint),
			codePointLabel(rec.CodePoint),
			string(rec.Base),
			marksLabel(rec.CombiningMarks),
			DetailLine(src, rec.CanonicalDecomposition),
		})
	}
	return clampRows(formatTable(headers, rows, nil), width)
}

func occurrenceTable(seqs []model.MarkSequence, src ucd.Source, width int) []string {
	headers := []string{"Sequence", "Code points", "Base", "Marks", "Details"}
	rows := make([][]string, 0, len(seqs))
	for _, seq := range seqs {
		labels := make([]string, len(seq.CodePoints))
		for i, cp := range seq.CodePoints {
			labels[i] = codePointLabel(cp)
		}
		rows = append(rows, []string{
			string(seq.CodePoints),
			strings.Join(labels, " "),
			string(seq.Base),
			marksLabel(seq.Marks),
			DetailLine(src, seq.CodePoints),
		})
	}
	return clampRows(formatTable(headers, rows, nil), width)
}

// DetailLine spells out every element of a decomposition with its name and
// code point, e.g. "e (LATIN SMALL LETTER E, U+0065) + ◌́ (COMBINING ACUTE
// ACCENT, U+0301)".
func DetailLine(src ucd.Source, cps []rune) string {
	parts := make([]string, 0, len(cps))
	for _, cp := range cps {
		display := string(cp)
		if ucd.IsCombiningMark(src.Category(cp)) {
			display = markCarrier + string(cp)
		}
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", display, src.Name(cp), codePointLabel(cp)))
	}
	return strings.Join(parts, " + ")
}

func marksLabel(marks []rune) string {
	var b strings.Builder
	for _, m := range marks {
		b.WriteString(markCarrier)
		b.WriteRune(m)
	}
	return b.String()
}

func codePointLabel(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}

func clampRows(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = runewidth.Truncate(line, width, "…")
	}
	return out
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
