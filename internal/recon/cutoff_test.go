package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitdue-dev/splitdue/internal/model"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolveCutoffStartWins(t *testing.T) {
	cutoff, ok := ResolveCutoff("2024-03-01", "2024-02-15", nil)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 3, 1)), "start is inclusive and beats paid-on")
}

func TestResolveCutoffPaidOnPlusOne(t *testing.T) {
	cutoff, ok := ResolveCutoff("", "2024-02-15", nil)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 2, 16)))
}

func TestResolveCutoffAutoDetect(t *testing.T) {
	payments := []model.TransactionRecord{
		{Date: "2024-01-10", ParsedDate: datePtr(2024, 1, 10)},
		{Date: "2024-01-20", ParsedDate: datePtr(2024, 1, 20)},
		{Date: "2024-01-15", ParsedDate: datePtr(2024, 1, 15)},
	}

	cutoff, ok := ResolveCutoff("", "", payments)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 1, 21)), "latest payment plus one day")
}

func TestResolveCutoffAutoDetectSkipsUndated(t *testing.T) {
	payments := []model.TransactionRecord{
		{Date: "???"},
		{Date: "2024-01-10", ParsedDate: datePtr(2024, 1, 10)},
	}

	cutoff, ok := ResolveCutoff("", "", payments)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 1, 11)))
}

func TestResolveCutoffAbsent(t *testing.T) {
	_, ok := ResolveCutoff("", "", []model.TransactionRecord{{Date: "???"}})
	assert.False(t, ok, "no explicit dates and no dated payments means no cutoff")

	_, ok = ResolveCutoff("", "", nil)
	assert.False(t, ok)
}

func TestResolveCutoffUnparsableFallsThrough(t *testing.T) {
	// A bad start date falls through to paid-on, a bad paid-on to auto-detect.
	cutoff, ok := ResolveCutoff("03/01/2024", "2024-02-15", nil)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 2, 16)))

	payments := []model.TransactionRecord{
		{Date: "2024-01-20", ParsedDate: datePtr(2024, 1, 20)},
	}
	cutoff, ok = ResolveCutoff("bad", "also bad", payments)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(day(2024, 1, 21)))
}

func TestOnOrAfterIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC)
	assert.True(t, onOrAfter(late, day(2024, 1, 20)))
	assert.False(t, onOrAfter(late, day(2024, 1, 21)))
}

func TestOnOrAfterIgnoresZone(t *testing.T) {
	// 2024-01-20 23:00 at +07:00 is still a January 20 row, even though the
	// instant is January 20 16:00 UTC.
	zoned := time.Date(2024, 1, 20, 23, 0, 0, 0, time.FixedZone("", 7*3600))
	assert.False(t, onOrAfter(zoned, day(2024, 1, 21)))
	assert.True(t, onOrAfter(zoned, day(2024, 1, 20)))
}
