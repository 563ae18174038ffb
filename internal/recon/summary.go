package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitdue-dev/splitdue/internal/ledger"
	"github.com/splitdue-dev/splitdue/internal/model"
)

// DefaultSplitRatio is the share of an ambiguous expense charged to the
// person when the note states no amount.
var DefaultSplitRatio = decimal.RequireFromString("0.5")

// Options configures one reconciliation pass.
type Options struct {
	// Person is matched case-insensitively against note and category text.
	// Empty matches nothing and yields an empty summary.
	Person string
	// Start is an explicit YYYY-MM-DD cutoff (inclusive). Wins over PaidOn.
	Start string
	// PaidOn is the most recent settled payment date (YYYY-MM-DD); the
	// cutoff becomes the next day.
	PaidOn string
	// SplitRatio overrides DefaultSplitRatio when set. Zero is a valid
	// ratio, so nil is the only value meaning "not configured".
	SplitRatio *decimal.Decimal
}

func (o Options) ratio() decimal.Decimal {
	if o.SplitRatio == nil {
		return DefaultSplitRatio
	}
	return *o.SplitRatio
}

// Summarize runs the engine over an in-memory record set. It is a pure
// single-pass computation: same records and options, same result.
func Summarize(records []model.TransactionRecord, opts Options) model.Summary {
	payments, sharedCandidates := Classify(records, opts.Person)
	cutoff, hasCutoff := ResolveCutoff(opts.Start, opts.PaidOn, payments)

	s := model.Summary{
		Person:      opts.Person,
		TotalShared: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	if hasCutoff {
		c := cutoff
		s.Cutoff = &c
	}

	// Payments outside the window are kept, not dropped, so callers can show
	// what fell before the cutoff.
	for _, p := range payments {
		row := model.PaymentRow{Date: p.Date, Category: p.Category, Note: p.Note, Amount: p.Amount}
		if included(p.ParsedDate, hasCutoff, cutoff) {
			s.TotalPaid = s.TotalPaid.Add(p.Amount)
			s.AppliedPayments = append(s.AppliedPayments, row)
		} else {
			s.UnappliedPayments = append(s.UnappliedPayments, row)
		}
	}

	// Shared rows outside the window are dropped entirely; there is no
	// "unapplied shared" list. Share resolution only runs for rows that
	// survive the filter.
	ratio := opts.ratio()
	for _, rec := range sharedCandidates {
		if !included(rec.ParsedDate, hasCutoff, cutoff) {
			continue
		}
		share, reason := ResolveShare(rec.Note, rec.Amount, ratio)
		s.TotalShared = s.TotalShared.Add(share)
		s.SharedRows = append(s.SharedRows, model.SharedRow{
			Date:     rec.Date,
			Category: rec.Category,
			Note:     rec.Note,
			Amount:   rec.Amount,
			Share:    share,
			Reason:   reason,
		})
	}

	s.Remaining = s.TotalShared.Sub(s.TotalPaid)
	return s
}

// SummarizeFile loads a wallet CSV export and runs Summarize over it.
func SummarizeFile(path string, opts Options) (model.Summary, error) {
	records, err := ledger.ReadFile(path)
	if err != nil {
		return model.Summary{}, err
	}
	return Summarize(records, opts), nil
}

// included applies the cutoff filter: no cutoff admits everything; with a
// cutoff active, only rows dated on or after it count and undated rows
// never do.
func included(d *time.Time, hasCutoff bool, cutoff time.Time) bool {
	if !hasCutoff {
		return true
	}
	if d == nil {
		return false
	}
	return onOrAfter(*d, cutoff)
}
