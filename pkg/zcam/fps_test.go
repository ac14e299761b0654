package zcam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFPS(t *testing.T) {
	tests := []struct {
		token string
		value float64
		ok    bool
	}{
		{"24", 24, true},
		{"29.97", 29.97, true},
		{" 59.94 ", 59.94, true},
		{"Off", 0, false},
		{"OFF", 0, false},
		{"off", 0, false},
		{"", 0, false},
		{"auto", 0, false},
		{"NaN", 0, false},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			value, ok := ParseFPS(test.token)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.value, value)
		})
	}
}

func TestFormatFPS(t *testing.T) {
	require.Equal(t, "24", FormatFPS(24.0))
	require.Equal(t, "30", FormatFPS(29.9999))
	require.Equal(t, "29.97", FormatFPS(29.97000001))
	require.Equal(t, "29.97", FormatFPS(29.97))
	require.Equal(t, "23.976", FormatFPS(23.976))
	require.Equal(t, "119.88", FormatFPS(119.88))
	require.Equal(t, "12.5", FormatFPS(12.5))
	require.Equal(t, "59.9401", FormatFPS(59.9401))
	require.Equal(t, "14.9985", FormatFPS(14.9985))
}

func TestFormatFPSRoundTrip(t *testing.T) {
	for _, token := range []string{"1", "12.5", "23.976", "23.98", "24", "25", "29.97", "47.95", "59.94", "59.9401", "14.9985", "119.88", "240"} {
		value, ok := ParseFPS(token)
		require.True(t, ok)

		again, ok := ParseFPS(FormatFPS(value))
		require.True(t, ok)
		require.Equal(t, value, again, token)
	}
}

func TestSortFPS(t *testing.T) {
	require.Equal(t, []string{"1", "23.98", "24", "29.97", "60"}, SortFPS([]string{"60", "29.97", "Off", "24", "1", "23.98"}))
	require.Equal(t, []string{}, SortFPS(nil))
}

func TestMergeFPS(t *testing.T) {
	fps := []string{"23.98", "24", "25", "29.97", "1", "15"}
	vfr := []string{"Off", "24", "48", "50", "29.970", "120"}

	merged := MergeFPS(fps, vfr)
	require.Equal(t, []string{"23.98", "24", "25", "29.97", "48", "50", "120"}, merged)
	require.Equal(t, merged, MergeFPS(vfr, fps))

	require.Equal(t, []string{}, MergeFPS(nil, []string{"Off", "12"}))

	// near-equal values are one rate after formatting
	require.Equal(t, []string{"29.97"}, MergeFPS([]string{"29.97", "29.9700001"}, nil))
	require.Equal(t, []string{"29.97", "59.94", "59.9401"}, MergeFPS([]string{"59.9401", "29.97"}, []string{"59.94"}))
}
