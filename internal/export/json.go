package export

import (
	"encoding/json"
	"io"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// JSONRenderer writes the nested structured form: a totals block plus the
// three itemized lists.
type JSONRenderer struct{}

type jsonTotals struct {
	TotalShared string  `json:"total_shared"`
	TotalPaid   string  `json:"total_paid_by_person"`
	Remaining   string  `json:"remaining"`
	Person      string  `json:"person"`
	Cutoff      *string `json:"cutoff"`
}

type jsonSharedRow struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Note     string `json:"note"`
	Amount   string `json:"amount"`
	Share    string `json:"share"`
	Reason   string `json:"reason"`
}

type jsonPaymentRow struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Note     string `json:"note"`
	Amount   string `json:"amount"`
}

type jsonDocument struct {
	Totals            jsonTotals       `json:"totals"`
	SharedRows        []jsonSharedRow  `json:"shared_rows"`
	AppliedPayments   []jsonPaymentRow `json:"applied_payments"`
	UnappliedPayments []jsonPaymentRow `json:"unapplied_payments"`
}

// Format returns the renderer name.
func (r *JSONRenderer) Format() string { return "json" }

// Ext returns the file extension.
func (r *JSONRenderer) Ext() string { return "json" }

// Render writes the JSON form of s, indented two spaces.
func (r *JSONRenderer) Render(w io.Writer, s model.Summary) error {
	doc := jsonDocument{
		Totals: jsonTotals{
			TotalShared: s.TotalShared.String(),
			TotalPaid:   s.TotalPaid.String(),
			Remaining:   s.Remaining.String(),
			Person:      s.Person,
		},
		SharedRows:        make([]jsonSharedRow, 0, len(s.SharedRows)),
		AppliedPayments:   make([]jsonPaymentRow, 0, len(s.AppliedPayments)),
		UnappliedPayments: make([]jsonPaymentRow, 0, len(s.UnappliedPayments)),
	}
	if s.Cutoff != nil {
		c := s.CutoffString()
		doc.Totals.Cutoff = &c
	}
	for _, row := range s.SharedRows {
		doc.SharedRows = append(doc.SharedRows, jsonSharedRow{
			Date:     row.Date,
			Category: row.Category,
			Note:     row.Note,
			Amount:   row.Amount.String(),
			Share:    row.Share.String(),
			Reason:   string(row.Reason),
		})
	}
	for _, row := range s.AppliedPayments {
		doc.AppliedPayments = append(doc.AppliedPayments, jsonPayment(row))
	}
	for _, row := range s.UnappliedPayments {
		doc.UnappliedPayments = append(doc.UnappliedPayments, jsonPayment(row))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func jsonPayment(row model.PaymentRow) jsonPaymentRow {
	return jsonPaymentRow{
		Date:     row.Date,
		Category: row.Category,
		Note:     row.Note,
		Amount:   row.Amount.String(),
	}
}
