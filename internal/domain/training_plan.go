// internal/domain/training_plan.go
package domain

// DayType classifies a slot within its week: an ordinal ("DAY 1", "DAY 2", ...) or one of the sentinels.
type DayType string

const (
	DayTypeRace DayType = "RACE"
	DayTypeRest DayType = "REST"
)

// TrainingPlan is the static race plan served by the catalog.
type TrainingPlan struct {
	RaceName string     `json:"race_name"`
	RaceDate string     `json:"race_date"` // YYYY-MM-DD
	Goal     string     `json:"goal"`
	Weeks    []PlanWeek `json:"weeks"`
}

// PlanWeek is one week of the plan. Week numbers are 1-based and ordered.
type PlanWeek struct {
	WeekNum    int           `json:"week_num"`
	Dates      string        `json:"dates"`       // Date-range label, e.g. "Dec 1-7"
	TotalMiles float64       `json:"total_miles"` // Planned weekly volume
	NumRuns    int           `json:"num_runs"`
	Phase      string        `json:"phase"` // e.g. "BASE BUILDING", "TAPER"
	Workouts   []WorkoutSlot `json:"workouts"`
}

// WorkoutSlot is one planned day. Miles == 0 denotes a rest day.
type WorkoutSlot struct {
	Day     string  `json:"day"`     // Day label, used verbatim in record keys
	Workout string  `json:"workout"` // Free-text description
	DayType DayType `json:"day_type"`
	Miles   float64 `json:"miles"`
}

// IsRest reports whether the slot plans no running.
func (s WorkoutSlot) IsRest() bool {
	return s.Miles <= 0
}

// SlotView merges a planned slot with its stored record.
type SlotView struct {
	WorkoutSlot
	Week             int            `json:"week"`
	Key              string         `json:"key"`
	Record           *WorkoutRecord `json:"record,omitempty"` // nil when nothing is stored
	EffectiveWorkout string         `json:"effective_workout"`
	EffectiveMiles   float64        `json:"effective_miles"`
	EffectiveDayType DayType        `json:"effective_day_type"`
}

// WeekView is a plan week with every slot merged.
type WeekView struct {
	WeekNum    int        `json:"week_num"`
	Dates      string     `json:"dates"`
	TotalMiles float64    `json:"total_miles"`
	NumRuns    int        `json:"num_runs"`
	Phase      string     `json:"phase"`
	Workouts   []SlotView `json:"workouts"`
}
