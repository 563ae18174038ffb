package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// CSVRenderer writes the flat tabular form: one section per category
// separated by blank rows, then a totals block.
type CSVRenderer struct{}

// Format returns the renderer name.
func (r *CSVRenderer) Format() string { return "csv" }

// Ext returns the file extension.
func (r *CSVRenderer) Ext() string { return "csv" }

// Render writes the sectioned CSV form of s.
func (r *CSVRenderer) Render(w io.Writer, s model.Summary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	rows := [][]string{
		{"section", "date", "category", "note", "amount", "share", "reason"},
	}
	for _, row := range s.SharedRows {
		rows = append(rows, []string{"shared", row.Date, row.Category, row.Note, row.Amount.String(), row.Share.String(), string(row.Reason)})
	}
	rows = append(rows, []string{}, []string{"applied_payment", "date", "category", "note", "amount"})
	for _, row := range s.AppliedPayments {
		rows = append(rows, []string{"applied", row.Date, row.Category, row.Note, row.Amount.String()})
	}
	rows = append(rows, []string{}, []string{"unapplied_payment", "date", "category", "note", "amount"})
	for _, row := range s.UnappliedPayments {
		rows = append(rows, []string{"unapplied", row.Date, row.Category, row.Note, row.Amount.String()})
	}
	rows = append(rows,
		[]string{},
		[]string{"total_shared", s.TotalShared.String()},
		[]string{"total_paid_by_person", s.TotalPaid.String()},
		[]string{"remaining", s.Remaining.String()},
	)

	for i, row := range rows {
		if len(row) == 0 {
			// csv.Writer rejects empty records; write the separator directly.
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing section break: %w", err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
