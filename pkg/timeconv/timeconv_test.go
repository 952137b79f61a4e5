package timeconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/proffy-go/proffy-api/pkg/errors"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"12:00", 720},
		{"23:59", 1439},
		{"9:30", 570},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestToMinutesRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"24:00", "12:60", "abc", "", "1:2:3", "-1:30", "10:-5", "10:", ":30", "10.30"} {
		_, err := ToMinutes(raw)
		require.Error(t, err, raw)
		assert.True(t, appErrors.Is(err, appErrors.ErrInvalidTime.Code), raw)
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			raw := fmt.Sprintf("%02d:%02d", hour, minute)
			total, err := ToMinutes(raw)
			require.NoError(t, err)
			back, err := FromMinutes(total)
			require.NoError(t, err)
			assert.Equal(t, raw, back)
		}
	}
}

func TestFromMinutesOutOfRange(t *testing.T) {
	for _, total := range []int{-1, MinutesPerDay, 999999} {
		_, err := FromMinutes(total)
		require.Error(t, err, total)
	}
}
