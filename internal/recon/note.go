package recon

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitdue-dev/splitdue/internal/model"
)

var (
	// "40k" / "1.5K": digits with at most one grouping separator and up to
	// three trailing digits, then a thousands suffix at a word boundary.
	thousandsSuffixPattern = regexp.MustCompile(`([0-9]+(?:[.,][0-9]{0,3})?)\s*[kK]\b`)
	// "40.000" / "1,234,567" grouped literal, or a bare integer.
	plainNumberPattern = regexp.MustCompile(`([0-9]{1,3}(?:[.,][0-9]{3})+|[0-9]+)\b`)

	noteLineSplit  = regexp.MustCompile(`[\r\n]+`)
	separatorStrip = strings.NewReplacer(".", "", ",", "")
	thousand       = decimal.NewFromInt(1000)
)

// noteMatcher tries to pull an amount out of one note line.
type noteMatcher func(line string) (decimal.Decimal, bool)

// noteMatchers run in priority order and the first success wins. The order is
// a contract: a thousands suffix beats a grouped number, so "40k" wins over
// "40.000" when both appear on the same line.
var noteMatchers = []noteMatcher{matchThousandsSuffix, matchPlainNumber}

func matchThousandsSuffix(line string) (decimal.Decimal, bool) {
	m := thousandsSuffixPattern.FindStringSubmatch(line)
	if m == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(separatorStrip.Replace(m[1]))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Mul(thousand), true
}

func matchPlainNumber(line string) (decimal.Decimal, bool) {
	m := plainNumberPattern.FindStringSubmatch(line)
	if m == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(separatorStrip.Replace(m[1]))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ExtractNoteAmount scans a note line by line for an explicitly stated
// amount. Lines are split on CR/LF runs, trimmed, and NBSPs normalized to
// plain spaces. The first line with a match decides; ok is false when no
// line carries a recognizable number. A token that fails to parse counts as
// no match, never an error.
func ExtractNoteAmount(note string) (decimal.Decimal, bool) {
	if note == "" {
		return decimal.Decimal{}, false
	}
	for _, line := range noteLineSplit.Split(note, -1) {
		line = strings.TrimSpace(strings.ReplaceAll(line, " ", " "))
		if line == "" {
			continue
		}
		for _, match := range noteMatchers {
			if v, ok := match(line); ok {
				return v, true
			}
		}
	}
	return decimal.Decimal{}, false
}

// ResolveShare derives the share owed for one shared-expense candidate. A
// strictly positive explicit amount in the note wins; otherwise ratio is
// applied to the absolute amount. Shares are whole currency units; the
// fallback rounds half to even.
func ResolveShare(note string, amount, ratio decimal.Decimal) (decimal.Decimal, model.ShareReason) {
	if explicit, ok := ExtractNoteAmount(note); ok && explicit.IsPositive() {
		return explicit.RoundBank(0), model.ReasonExplicitInNote
	}
	return amount.Abs().Mul(ratio).RoundBank(0), model.ReasonSplitRatio
}
