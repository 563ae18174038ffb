package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// MarkdownRenderer writes a totals list plus one pipe table per section.
type MarkdownRenderer struct{}

// Format returns the renderer name.
func (r *MarkdownRenderer) Format() string { return "md" }

// Ext returns the file extension.
func (r *MarkdownRenderer) Ext() string { return "md" }

// Render writes the Markdown form of s.
func (r *MarkdownRenderer) Render(w io.Writer, s model.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary for %s\n\n", s.Person)
	b.WriteString("## Totals\n")
	fmt.Fprintf(&b, "- Total shared: %s\n", s.TotalShared)
	fmt.Fprintf(&b, "- Total paid by %s: %s\n", s.Person, s.TotalPaid)
	fmt.Fprintf(&b, "- Remaining: %s\n", s.Remaining)
	if s.Cutoff != nil {
		fmt.Fprintf(&b, "- Cutoff: %s\n", s.CutoffString())
	}

	b.WriteString("\n## Shared rows\n\n")
	b.WriteString("| date | category | note | amount | share | reason |\n")
	b.WriteString("|---|---|---|---:|---:|---|\n")
	for _, row := range s.SharedRows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.Date, mdEscape(row.Category), mdEscape(row.Note), row.Amount, row.Share, row.Reason)
	}

	b.WriteString("\n## Applied payments\n\n")
	writePaymentTable(&b, s.AppliedPayments)

	b.WriteString("\n## Unapplied payments\n\n")
	writePaymentTable(&b, s.UnappliedPayments)

	_, err := io.WriteString(w, b.String())
	return err
}

func writePaymentTable(b *strings.Builder, rows []model.PaymentRow) {
	b.WriteString("| date | category | note | amount |\n")
	b.WriteString("|---|---|---|---:|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			row.Date, mdEscape(row.Category), mdEscape(row.Note), row.Amount)
	}
}

// mdEscape keeps free text from breaking table cells.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
