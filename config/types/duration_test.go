package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tcs := []struct {
		input       string
		expected    time.Duration
		expectedErr bool
	}{
		{input: "10s", expected: 10 * time.Second},
		{input: "1h15m", expected: time.Hour + 15*time.Minute},
		{input: "300ms", expected: 300 * time.Millisecond},
		{input: "ten", expectedErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tc.input))
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, d.Duration)

			text, err := d.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tc.expected.String(), string(text))
		})
	}
}
