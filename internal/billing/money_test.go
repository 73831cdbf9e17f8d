package billing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.34", 12.34, false},
		{"12,34", 12.34, false},
		{" 100 ", 100.00, false},
		{"0", 0, false},
		{"12.346", 12.35, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12.3.4", 0, true},
		{"-5", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParsePercent(t *testing.T) {
	got, err := ParsePercent("10%")
	require.NoError(t, err)
	require.Equal(t, 10.00, got)

	got, err = ParsePercent("0")
	require.NoError(t, err)
	require.Equal(t, 0.00, got)

	_, err = ParsePercent("101")
	require.ErrorIs(t, err, ErrInvalidDiscount)
	_, err = ParsePercent("x")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 0.01, Round2(0.006))
	require.Equal(t, 2.68, Round2(2.676))
	require.Equal(t, 250.00, Round2(100*2+50*1))
}
