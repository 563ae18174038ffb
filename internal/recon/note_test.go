package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitdue-dev/splitdue/internal/model"
)

func TestExtractNoteAmount(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
		ok   bool
	}{
		{"k suffix", "Quân trả 40k", "40000", true},
		{"uppercase K", "tạm ứng 25K", "25000", true},
		{"k with grouping separator", "trả 1.5k", "15000", true},
		{"k with comma separator", "trả 1,234k", "1234000", true},
		{"grouped number", "Quân trả 40.000", "40000", true},
		{"comma grouped number", "1,234,567 tiền nhà", "1234567", true},
		{"bare integer", "chuyển 500000", "500000", true},
		{"no number", "Quân ăn chung", "", false},
		{"empty note", "", "", false},
		{"nbsp normalized", "trả 40 k", "40000", true},
		{"k beats grouped number on one line", "40k hay 50.000", "40000", true},
		{"first line wins", "50.000\ncòn lại 40k", "50000", true},
		{"blank lines skipped", "\n\n  \n60k", "60000", true},
		{"word boundary required after k", "karaoke 2 người", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNoteAmount(tt.note)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveShareExplicit(t *testing.T) {
	share, reason := ResolveShare("Quân trả 40k", dec("-100000"), DefaultSplitRatio)
	assert.True(t, share.Equal(dec("40000")), "share: %s", share)
	assert.Equal(t, model.ReasonExplicitInNote, reason)
}

func TestResolveShareFallback(t *testing.T) {
	share, reason := ResolveShare("Quân ăn chung", dec("-100000"), DefaultSplitRatio)
	assert.True(t, share.Equal(dec("50000")), "share: %s", share)
	assert.Equal(t, model.ReasonSplitRatio, reason)
}

func TestResolveShareBankersRounding(t *testing.T) {
	// Half-unit results round half to even.
	tests := []struct {
		amount string
		want   string
	}{
		{"-3", "2"},  // 1.5 -> 2
		{"-5", "2"},  // 2.5 -> 2
		{"-7", "4"},  // 3.5 -> 4
		{"-9", "4"},  // 4.5 -> 4
	}
	for _, tt := range tests {
		share, reason := ResolveShare("không có số", dec(tt.amount), DefaultSplitRatio)
		assert.Equal(t, model.ReasonSplitRatio, reason)
		assert.True(t, share.Equal(dec(tt.want)), "amount %s: got %s, want %s", tt.amount, share, tt.want)
	}
}

func TestResolveShareCustomRatio(t *testing.T) {
	share, reason := ResolveShare("ăn chung ba người", dec("-90000"), dec("0.25"))
	assert.True(t, share.Equal(dec("22500")), "share: %s", share)
	assert.Equal(t, model.ReasonSplitRatio, reason)
}

func TestResolveShareZeroExplicitFallsBack(t *testing.T) {
	// "0k" extracts as zero, which is not strictly positive.
	share, reason := ResolveShare("0k", dec("-100000"), DefaultSplitRatio)
	assert.True(t, share.Equal(dec("50000")), "share: %s", share)
	assert.Equal(t, model.ReasonSplitRatio, reason)
}
