package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// PDFRenderer writes a one-column A4 report: title, totals line, then the
// shared rows, paginating as needed. The core Helvetica font is limited to
// cp1252, so characters outside it degrade to replacements rather than fail.
type PDFRenderer struct{}

const (
	pdfMargin   = 40.0
	pdfLineGap  = 14.0
	pdfFootroom = 80.0
	pdfMaxLine  = 120
)

// cp1252 maps UTF-8 text onto the encoding the core fonts use.
var cp1252 = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

// Format returns the renderer name.
func (r *PDFRenderer) Format() string { return "pdf" }

// Ext returns the file extension.
func (r *PDFRenderer) Ext() string { return "pdf" }

// Render writes the PDF form of s.
func (r *PDFRenderer) Render(w io.Writer, s model.Summary) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	_, pageH := pdf.GetPageSize()

	pdf.AddPage()
	y := pdfMargin

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfMargin, y, pdfText(fmt.Sprintf("Summary for %s", s.Person)))
	y += 24

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pdfMargin, y, pdfText(fmt.Sprintf("Totals: shared=%s paid=%s remaining=%s",
		s.TotalShared, s.TotalPaid, s.Remaining)))
	y += 24

	pdf.Text(pdfMargin, y, "Shared rows:")
	y += 18

	for _, row := range s.SharedRows {
		line := fmt.Sprintf("%s | %s | %s | amt:%s | share:%s",
			row.Date, row.Category, row.Note, row.Amount, row.Share)
		if runes := []rune(line); len(runes) > pdfMaxLine {
			line = string(runes[:pdfMaxLine])
		}
		pdf.Text(pdfMargin, y, pdfText(line))
		y += pdfLineGap
		if y > pageH-pdfFootroom {
			pdf.AddPage()
			y = pdfMargin
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func pdfText(s string) string {
	out, err := cp1252.String(s)
	if err != nil {
		return s
	}
	return out
}
