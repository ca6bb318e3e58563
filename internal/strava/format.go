package strava

import (
	"alcyxob/training-tracker/internal/domain"
	"fmt"
	"math"
)

const (
	metersPerMile = 1609.34
	feetPerMeter  = 3.28084
)

var runTypes = map[string]bool{
	"Run":        true,
	"TrailRun":   true,
	"VirtualRun": true,
}

// apiActivity is the subset of the provider's activity summary we consume.
type apiActivity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	SportType          string   `json:"sport_type"`
	Distance           float64  `json:"distance"` // Meters
	MovingTime         int      `json:"moving_time"`
	ElapsedTime        int      `json:"elapsed_time"`
	TotalElevationGain float64  `json:"total_elevation_gain"` // Meters
	StartDate          string   `json:"start_date"`
	AverageHeartrate   *float64 `json:"average_heartrate"`
	MaxHeartrate       *float64 `json:"max_heartrate"`
}

func (a apiActivity) isRun() bool {
	return runTypes[a.Type] || runTypes[a.SportType]
}

func normalizeActivities(raw []apiActivity) []domain.Activity {
	out := make([]domain.Activity, 0, len(raw))
	for _, a := range raw {
		if !a.isRun() {
			continue
		}
		out = append(out, normalize(a))
	}
	return out
}

func normalize(a apiActivity) domain.Activity {
	miles := a.Distance / metersPerMile
	return domain.Activity{
		ID:                 a.ID,
		Name:               a.Name,
		Distance:           math.Round(miles*100) / 100,
		Duration:           FormatDuration(a.MovingTime),
		Pace:               FormatPace(a.MovingTime, miles),
		MovingTime:         a.MovingTime,
		ElapsedTime:        a.ElapsedTime,
		TotalElevationGain: int(math.Round(a.TotalElevationGain * feetPerMeter)),
		StartDate:          a.StartDate,
		AverageHeartrate:   a.AverageHeartrate,
		MaxHeartrate:       a.MaxHeartrate,
	}
}

// FormatPace renders minutes per mile as "M:SS min/mi", or "N/A" without a distance.
func FormatPace(movingSeconds int, miles float64) string {
	if miles <= 0 {
		return "N/A"
	}
	secPerMile := float64(movingSeconds) / miles
	return fmt.Sprintf("%d:%02d min/mi", int(secPerMile/60), int(math.Mod(secPerMile, 60)))
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
