package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextMidnight(t *testing.T) {
	t.Parallel()
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"evening", time.Date(2026, 2, 2, 21, 30, 0, 0, seoul), time.Date(2026, 2, 3, 0, 0, 0, 0, seoul)},
		{"exactly midnight", time.Date(2026, 2, 3, 0, 0, 0, 0, seoul), time.Date(2026, 2, 4, 0, 0, 0, 0, seoul)},
		{"month end", time.Date(2026, 1, 31, 12, 0, 0, 0, seoul), time.Date(2026, 2, 1, 0, 0, 0, 0, seoul)},
		{"year end", time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.want.Equal(NextMidnight(tt.now)), "got %s", NextMidnight(tt.now))
		})
	}
}

func TestNextMidnightAcrossDST(t *testing.T) {
	t.Parallel()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is 23 hours long in New York.
	now := time.Date(2026, 3, 8, 1, 0, 0, 0, ny)
	next := NextMidnight(now)
	require.Equal(t, 9, next.Day())
	require.Equal(t, 0, next.Hour())
	require.Equal(t, 22*time.Hour, next.Sub(now))
}
