package domain

// Activity is one run pulled from the activity provider, normalized to imperial units.
type Activity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Distance           float64  `json:"distance"`             // Miles
	Duration           string   `json:"duration"`             // H:MM:SS or M:SS of moving time
	Pace               string   `json:"pace"`                 // "M:SS min/mi" or "N/A"
	MovingTime         int      `json:"moving_time"`          // Seconds
	ElapsedTime        int      `json:"elapsed_time"`         // Seconds
	TotalElevationGain int      `json:"total_elevation_gain"` // Feet
	StartDate          string   `json:"start_date"`
	AverageHeartrate   *float64 `json:"average_heartrate,omitempty"`
	MaxHeartrate       *float64 `json:"max_heartrate,omitempty"`
}

// ActivityList is the result of a per-date activity lookup. An empty list is a valid result.
type ActivityList struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
}
