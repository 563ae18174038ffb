package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// Wallet export column headers. Columns are located by name so exports with
// extra or reordered columns still parse.
const (
	colDate     = "Date"
	colCategory = "Category name"
	colNote     = "Note"
	colAmount   = "Amount"
)

var amountFallback = regexp.MustCompile(`-?[0-9]+`)

// dateLayouts are tried in order against the Date cell.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Read parses a wallet CSV export into TransactionRecords. A UTF-8 BOM on the
// header is tolerated. Bad cells never fail a row: a non-numeric amount
// degrades to its first embedded signed integer (else zero) and an
// unrecognizable date leaves ParsedDate nil.
func Read(r io.Reader) ([]model.TransactionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading wallet CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]model.TransactionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		dateStr := cell(row, colDate)
		rec := model.TransactionRecord{
			Date:     dateStr,
			Category: cell(row, colCategory),
			Note:     cell(row, colNote),
			Amount:   ParseAmount(cell(row, colAmount)),
		}
		if t, ok := ParseDate(dateStr); ok {
			rec.ParsedDate = &t
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile reads a wallet CSV export from disk. A missing or unreadable file
// is an error; there is no empty-result fallback.
func ReadFile(path string) ([]model.TransactionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// ParseAmount reads a signed decimal cell. Empty cells are zero. For
// non-numeric text the first embedded signed integer substring is used,
// else zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	if m := amountFallback.FindString(s); m != "" {
		if d, err := decimal.NewFromString(m); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// ParseDate reads an ISO-8601-like date cell. Some exports append a zone
// offset the layouts reject; the suffix is stripped and the cell retried.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if i := strings.IndexByte(s, '+'); i > 0 {
		return ParseDate(s[:i])
	}
	return time.Time{}, false
}
