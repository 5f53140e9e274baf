package numword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saravanan/rentify-api/pkg/money"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		rupees float64
		want   string
	}{
		{"zero", 0, "Zero Rupees"},
		{"single digit", 7, "Seven Rupees"},
		{"teen", 15, "Fifteen Rupees"},
		{"tens with unit", 42, "Forty Two Rupees"},
		{"round hundred", 100, "One Hundred Rupees"},
		{"hundred with remainder", 560, "Five Hundred Sixty Rupees"},
		{"round thousand", 1000, "One Thousand Rupees"},
		{"thousand with hundreds", 1500, "One Thousand Five Hundred Rupees"},
		{"tens of thousands", 25600, "Twenty Five Thousand Six Hundred Rupees"},
		{"round lakh", 100000, "One Lakh Rupees"},
		{"lakh with remainder", 150000, "One Lakh Fifty Thousand Rupees"},
		{"many lakhs", 2575000, "Twenty Five Lakh Seventy Five Thousand Rupees"},
		{"with paise", 1250.50, "One Thousand Two Hundred Fifty Rupees and Fifty Paise"},
		{"only paise", 0.75, "Zero Rupees and Seventy Five Paise"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(money.FromRupees(tt.rupees)))
		})
	}
}
