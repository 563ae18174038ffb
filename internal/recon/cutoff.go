package recon

import (
	"time"

	"github.com/splitdue-dev/splitdue/internal/model"
)

const dayFormat = "2006-01-02"

// ResolveCutoff picks the settlement boundary date. Precedence:
//
//  1. start (YYYY-MM-DD, inclusive), when it parses;
//  2. paidOn (YYYY-MM-DD, the most recent settled payment) plus one day;
//  3. the latest dated payment candidate plus one day.
//
// A provided value that fails to parse falls through to the next rule.
// ok is false when nothing yields a date, meaning no filtering applies.
// Only payment dates feed auto-detection: the cutoff means "settled through
// the last payment", so shared-expense dates are deliberately ignored.
func ResolveCutoff(start, paidOn string, payments []model.TransactionRecord) (time.Time, bool) {
	if start != "" {
		if t, err := time.Parse(dayFormat, start); err == nil {
			return t, true
		}
	}
	if paidOn != "" {
		if t, err := time.Parse(dayFormat, paidOn); err == nil {
			return t.AddDate(0, 0, 1), true
		}
	}

	var last time.Time
	found := false
	for _, p := range payments {
		if p.ParsedDate == nil {
			continue
		}
		if !found || p.ParsedDate.After(last) {
			last = *p.ParsedDate
			found = true
		}
	}
	if !found {
		return time.Time{}, false
	}
	return dayOf(last).AddDate(0, 0, 1), true
}

// dayOf truncates a timestamp to its calendar day. The zone is normalized to
// UTC so that day comparisons are structural, not instant-based: a row dated
// 2024-01-20T23:00:00+07:00 is a January 20 row no matter the cutoff's zone.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// onOrAfter compares calendar days, ignoring time of day.
func onOrAfter(t, cutoff time.Time) bool {
	return !dayOf(t).Before(dayOf(cutoff))
}
