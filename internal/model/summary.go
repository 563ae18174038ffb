package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the result of one reconciliation pass. It is built once per
// invocation and never mutated afterwards.
type Summary struct {
	Person string

	// Cutoff is the resolved settlement boundary (a calendar day).
	// Nil means no cutoff was active and every row counted.
	Cutoff *time.Time

	TotalShared decimal.Decimal // sum of Share over SharedRows
	TotalPaid   decimal.Decimal // sum of Amount over AppliedPayments
	Remaining   decimal.Decimal // TotalShared - TotalPaid; negative = overpaid

	SharedRows        []SharedRow
	AppliedPayments   []PaymentRow
	UnappliedPayments []PaymentRow // payments dated before the cutoff
}

// CutoffString renders the cutoff as YYYY-MM-DD, or "" when absent.
func (s Summary) CutoffString() string {
	if s.Cutoff == nil {
		return ""
	}
	return s.Cutoff.Format("2006-01-02")
}
