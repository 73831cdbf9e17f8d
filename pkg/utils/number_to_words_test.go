package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{225, "Two Hundred Twenty Five"},
		{1000, "One Thousand"},
		{12345, "Twelve Thousand Three Hundred Forty Five"},
		{100000, "One Lakh"},
		{2500000, "Twenty Five Lakh"},
		{10000000, "One Crore"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, NumberToWords(tc.in), "input %d", tc.in)
	}
}

func TestAmountInWords(t *testing.T) {
	require.Equal(t, "Zero Rupees Only", AmountInWords(0))
	require.Equal(t, "Two Hundred Twenty Five Rupees Only", AmountInWords(225))
	require.Equal(t, "Ninety Nine Rupees and Fifty Paise Only", AmountInWords(99.50))
	require.Equal(t, "Fifty Paise Only", AmountInWords(0.50))
}
