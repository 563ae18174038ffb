package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// XLSXRenderer writes a workbook with one sheet per section plus totals.
// Monetary cells hold decimal strings so nothing is coerced to a float.
type XLSXRenderer struct{}

// Format returns the renderer name.
func (r *XLSXRenderer) Format() string { return "xlsx" }

// Ext returns the file extension.
func (r *XLSXRenderer) Ext() string { return "xlsx" }

// Render writes the workbook form of s.
func (r *XLSXRenderer) Render(w io.Writer, s model.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "shared"); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	shared := [][]interface{}{
		{"date", "category", "note", "amount", "share", "reason"},
	}
	for _, row := range s.SharedRows {
		shared = append(shared, []interface{}{row.Date, row.Category, row.Note, row.Amount.String(), row.Share.String(), string(row.Reason)})
	}
	if err := writeSheet(f, "shared", shared); err != nil {
		return err
	}

	if err := writeSheet(f, "applied_payments", paymentSheet(s.AppliedPayments)); err != nil {
		return err
	}
	if err := writeSheet(f, "unapplied_payments", paymentSheet(s.UnappliedPayments)); err != nil {
		return err
	}

	totals := [][]interface{}{
		{"total_shared", s.TotalShared.String()},
		{"total_paid_by_person", s.TotalPaid.String()},
		{"remaining", s.Remaining.String()},
	}
	if err := writeSheet(f, "totals", totals); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func paymentSheet(rows []model.PaymentRow) [][]interface{} {
	out := [][]interface{}{
		{"date", "category", "note", "amount"},
	}
	for _, row := range rows {
		out = append(out, []interface{}{row.Date, row.Category, row.Note, row.Amount.String()})
	}
	return out
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	// NewSheet returns the existing index when the sheet is already there.
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+1, err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}
