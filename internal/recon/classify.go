// Package recon computes how much a named counterparty owes by reconciling a
// wallet export: classify rows, resolve each shared row's share, resolve a
// settlement cutoff, and net payments against shares.
package recon

import (
	"strings"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// containsPerson reports whether person occurs in text, case-insensitively.
// An empty person or empty text never matches.
func containsPerson(text, person string) bool {
	if text == "" || person == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(person))
}

// Classify splits records into payment candidates (money in, person named in
// the note) and shared-expense candidates (money out, person named in the
// category or note). Source order is preserved. Zero-amount rows belong to
// neither. Rows with unparsable dates still classify; dates only matter to
// the cutoff filter.
func Classify(records []model.TransactionRecord, person string) (payments, shared []model.TransactionRecord) {
	for _, rec := range records {
		if rec.Amount.IsPositive() && containsPerson(rec.Note, person) {
			payments = append(payments, rec)
		}
		if rec.Amount.IsNegative() && (containsPerson(rec.Category, person) || containsPerson(rec.Note, person)) {
			shared = append(shared, rec)
		}
	}
	return payments, shared
}
