package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitdue-dev/splitdue/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// sampleSummary is the fixture the renderer tests share.
func sampleSummary() model.Summary {
	cutoff := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	return model.Summary{
		Person:      "Quân",
		Cutoff:      &cutoff,
		TotalShared: dec("90000"),
		TotalPaid:   dec("30000"),
		Remaining:   dec("60000"),
		SharedRows: []model.SharedRow{
			{Date: "2024-01-21", Category: "Ăn uống", Note: "Quân trả 40k", Amount: dec("-100000"), Share: dec("40000"), Reason: model.ReasonExplicitInNote},
			{Date: "2024-01-22", Category: "Quân", Note: "cafe | bánh", Amount: dec("-100000"), Share: dec("50000"), Reason: model.ReasonSplitRatio},
		},
		AppliedPayments: []model.PaymentRow{
			{Date: "2024-01-25", Category: "Loan", Note: "Quân chuyển", Amount: dec("30000")},
		},
		UnappliedPayments: []model.PaymentRow{
			{Date: "2024-01-10", Category: "Loan", Note: "Quân trả cũ", Amount: dec("200000")},
		},
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, format := range []string{"csv", "json", "md", "xlsx", "pdf"} {
		assert.NotNil(t, r.Get(format), "missing renderer %s", format)
	}
	assert.Nil(t, r.Get("docx"))
	assert.Len(t, r.Formats(), 5)
}

func TestRegistryCaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("CSV"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVRenderer{})
	assert.Panics(t, func() { r.Register(&CSVRenderer{}) })
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "export-2024.Quân.summary.json", FileName("export-2024", "Quân", "json"))
}
