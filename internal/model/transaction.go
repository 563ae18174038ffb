package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one parsed row of a wallet CSV export.
type TransactionRecord struct {
	Date       string     // raw Date cell, kept verbatim for display
	ParsedDate *time.Time // nil when the cell is not a recognizable date
	Category   string
	Note       string
	Amount     decimal.Decimal // negative = expense, positive = incoming payment
}

// ShareReason records how a shared row's share was derived.
type ShareReason string

const (
	ReasonExplicitInNote ShareReason = "explicit_in_note"
	ReasonSplitRatio     ShareReason = "split_ratio"
)

// SharedRow is a shared-expense row counting toward the open balance.
type SharedRow struct {
	Date     string
	Category string
	Note     string
	Amount   decimal.Decimal // original negative transaction amount
	Share    decimal.Decimal // whole-unit amount owed, never negative
	Reason   ShareReason
}

// PaymentRow is a payment made by the person.
type PaymentRow struct {
	Date     string
	Category string
	Note     string
	Amount   decimal.Decimal
}
