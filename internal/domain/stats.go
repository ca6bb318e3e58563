package domain

// Stats is the aggregate progress summary over the plan and stored records.
type Stats struct {
	TotalWorkouts        int       `json:"total_workouts"`
	CompletedWorkouts    int       `json:"completed_workouts"`
	CompletionPercentage float64   `json:"completion_percentage"`
	TotalPlannedMiles    float64   `json:"total_planned_miles"`
	CompletedMiles       float64   `json:"completed_miles"`
	WeeklyActualMiles    []float64 `json:"weekly_actual_miles"` // Index i holds week i+1
}
