package strava

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{1767, "29:27"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{6543, "1:49:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatPace(t *testing.T) {
	assert.Equal(t, "N/A", FormatPace(1800, 0))
	assert.Equal(t, "9:00 min/mi", FormatPace(2700, 5))
	assert.Equal(t, "8:24 min/mi", FormatPace(504, 1))
	assert.Equal(t, "10:30 min/mi", FormatPace(1890, 3))
}

func TestNormalizeActivities_FiltersNonRuns(t *testing.T) {
	raw := []apiActivity{
		{ID: 1, Name: "Morning Run", Type: "Run", Distance: 8046.7, MovingTime: 2700},
		{ID: 2, Name: "Commute", Type: "Ride", Distance: 12000, MovingTime: 1800},
		{ID: 3, Name: "Trail", Type: "Run", SportType: "TrailRun", Distance: 5000, MovingTime: 1900},
		{ID: 4, Name: "Treadmill", Type: "VirtualRun", Distance: 3218.68, MovingTime: 1200},
		{ID: 5, Name: "Walk", Type: "Walk", Distance: 3000, MovingTime: 2400},
	}

	out := normalizeActivities(raw)

	require.Len(t, out, 3)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
	assert.Equal(t, int64(4), out[2].ID)
}

func TestNormalize(t *testing.T) {
	avg, peak := 152.3, 171.0
	a := normalize(apiActivity{
		ID:                 99,
		Name:               "Tempo",
		Type:               "Run",
		Distance:           8046.7, // 5.0 mi
		MovingTime:         2710,
		ElapsedTime:        2790,
		TotalElevationGain: 30.5,
		StartDate:          "2026-01-10T13:00:00Z",
		AverageHeartrate:   &avg,
		MaxHeartrate:       &peak,
	})

	assert.Equal(t, int64(99), a.ID)
	assert.Equal(t, "Tempo", a.Name)
	assert.Equal(t, 5.0, a.Distance)
	assert.Equal(t, "45:10", a.Duration)
	assert.Equal(t, "9:02 min/mi", a.Pace)
	assert.Equal(t, 2710, a.MovingTime)
	assert.Equal(t, 2790, a.ElapsedTime)
	assert.Equal(t, 100, a.TotalElevationGain) // 30.5 m = 100.07 ft
	assert.Equal(t, "2026-01-10T13:00:00Z", a.StartDate)
	require.NotNil(t, a.AverageHeartrate)
	assert.Equal(t, avg, *a.AverageHeartrate)
	require.NotNil(t, a.MaxHeartrate)
	assert.Equal(t, peak, *a.MaxHeartrate)
}

func TestNormalize_ZeroDistance(t *testing.T) {
	a := normalize(apiActivity{ID: 1, Type: "Run", MovingTime: 600})

	assert.Equal(t, 0.0, a.Distance)
	assert.Equal(t, "N/A", a.Pace)
	assert.Equal(t, "10:00", a.Duration)
	assert.Nil(t, a.AverageHeartrate)
}
