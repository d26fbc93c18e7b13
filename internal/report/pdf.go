package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ldwg/diacritica/internal/model"
	"github.com/ldwg/diacritica/internal/ucd"
)

// PDFOptions controls the PDF renderer.
type PDFOptions struct {
	// FontPath points at a TTF with full Latin diacritic coverage. Without
	// it the built-in Helvetica is used and output is limited to its
	// codepage repertoire.
	FontPath     string
	FontBoldPath string
	Occurrences  bool
}

type pdfRenderer struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
}

// RenderPDF writes the analysis report as a paginated PDF document.
func RenderPDF(path string, result model.AnalysisResult, src ucd.Source, opts PDFOptions) error {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetAutoPageBreak(true, 15)

	r := &pdfRenderer{pdf: doc, family: "Helvetica", translate: doc.UnicodeTranslatorFromDescriptor("")}
	if opts.FontPath != "" {
		doc.AddUTF8Font("report", "", opts.FontPath)
		boldPath := opts.FontBoldPath
		if boldPath == "" {
			boldPath = opts.FontPath
		}
		doc.AddUTF8Font("report", "B", boldPath)
		r.family = "report"
		r.translate = func(s string) string { return s }
	}

	doc.AddPage()
	r.title("ASCII-Unicode Diacritics Analysis Report")
	r.line(fmt.Sprintf("Source: %s", result.Source))
	r.line(fmt.Sprintf("Unicode version: %s", result.UnicodeVersion))
	r.line(fmt.Sprintf("Generated: %s", result.GeneratedAt.Format("2006-01-02 15:04:05")))
	doc.Ln(4)

	r.paragraph("This report applies Unicode canonical decomposition (NFD) to the " +
		"Latin script code points of the Root Zone Label Generation Rules and " +
		"identifies characters that decompose to an ASCII base letter plus one " +
		"or more combining diacritical marks (Unicode General Category M). " +
		"Results are grouped by diacritic count, with complete Unicode " +
		"technical data for each character.")
	doc.Ln(4)

	r.heading("Summary")
	for _, line := range summaryLines(result.Summary, false)[1:] {
		r.line(line)
	}
	doc.Ln(4)

	for _, bucket := range result.Buckets {
		noun := "Diacritic Marks"
		if bucket.DiacriticCount == 1 {
			noun = "Diacritic Mark"
		}
		r.heading(fmt.Sprintf("Characters with %d %s (%d)", bucket.DiacriticCount, noun, len(bucket.Records)))
		r.table(
			[]string{"Char", "Code point", "Base", "Marks", "Technical Details"},
			bucketRows(bucket, src),
		)
		doc.Ln(6)
	}
	if len(result.Buckets) == 0 {
		r.line("No qualifying characters were found.")
		doc.Ln(6)
	}

	if opts.Occurrences {
		seqs := OtherOccurrences()
		r.heading(fmt.Sprintf("Other Occurrences in the Latin RZ LGR (%d)", len(seqs)))
		r.table(
			[]string{"Sequence", "Code points", "Base", "Marks", "Technical Details"},
			occurrenceRows(seqs, src),
		)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}

func bucketRows(bucket model.CategoryBucket, src ucd.Source) [][]string {
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
	return rows
}

func occurrenceRows(seqs []model.MarkSequence, src ucd.Source) [][]string {
	rows := make([][]string, 0, len(seqs))
	for _, seq := range seqs {
		labels := ""
		for i, cp := range seq.CodePoints {
			if i > 0 {
				labels += " "
			}
			labels += codePointLabel(cp)
		}
		rows = append(rows, []string{
			string(seq.CodePoints),
			labels,
			string(seq.Base),
			marksLabel(seq.Marks),
			DetailLine(src, seq.CodePoints),
		})
	}
	return rows
}

func (r *pdfRenderer) title(text string) {
	r.pdf.SetFont(r.family, "B", 16)
	r.pdf.CellFormat(0, 10, r.translate(text), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *pdfRenderer) heading(text string) {
	r.pdf.SetFont(r.family, "B", 12)
	r.pdf.CellFormat(0, 8, r.translate(text), "", 1, "L", false, 0, "")
}

func (r *pdfRenderer) line(text string) {
	r.pdf.SetFont(r.family, "", 10)
	r.pdf.CellFormat(0, 6, r.translate(text), "", 1, "L", false, 0, "")
}

func (r *pdfRenderer) paragraph(text string) {
	r.pdf.SetFont(r.family, "", 10)
	r.pdf.MultiCell(0, 5, r.translate(text), "", "L", false)
}

var pdfColWidths = []float64{18, 26, 14, 22, 116}

func (r *pdfRenderer) table(headers []string, rows [][]string) {
	r.pdf.SetFont(r.family, "B", 9)
	r.pdf.SetFillColor(50, 204, 204)
	for i, h := range headers {
		r.pdf.CellFormat(pdfColWidths[i], 7, r.translate(h), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont(r.family, "", 8)
	for rowIdx, row := range rows {
		fill := rowIdx%2 == 1
		r.pdf.SetFillColor(230, 230, 230)
		for i, cell := range row {
			align := "C"
			if i == len(row)-1 {
				align = "L"
			}
			r.pdf.CellFormat(pdfColWidths[i], 6, r.translate(cell), "1", 0, align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
