package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WorkoutRecord is the persisted, mutable user data for one plan slot.
// Every field is optional; modification fields only carry meaning while IsModified is set.
type WorkoutRecord struct {
	// --- Completion ---
	Completed   bool   `bson:"completed" json:"completed"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	ActualMiles string `bson:"actual_miles,omitempty" json:"actual_miles,omitempty"` // Kept as text to tolerate partial input
	ActualPace  string `bson:"actual_pace,omitempty" json:"actual_pace,omitempty"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	DateLogged  string `bson:"date_logged,omitempty" json:"date_logged,omitempty"` // ISO-8601 text

	// --- Modification ---
	IsModified         bool     `bson:"is_modified" json:"is_modified"`
	OriginalWorkout    string   `bson:"original_workout,omitempty" json:"original_workout,omitempty"`
	OriginalMiles      *float64 `bson:"original_miles,omitempty" json:"original_miles,omitempty"`
	ModifiedWorkout    string   `bson:"modified_workout,omitempty" json:"modified_workout,omitempty"`
	ModifiedMiles      *float64 `bson:"modified_miles,omitempty" json:"modified_miles,omitempty"`
	ModifiedType       DayType  `bson:"modified_type,omitempty" json:"modified_type,omitempty"`
	ModificationReason string   `bson:"modification_reason,omitempty" json:"modification_reason,omitempty"`
	ModifiedDate       string   `bson:"modified_date,omitempty" json:"modified_date,omitempty"`

	// Enrichment is the normalized activity blob attached on log, stored opaquely.
	Enrichment map[string]any `bson:"strava_data,omitempty" json:"strava_data,omitempty"`
}

// RecordKey derives the storage key for a slot. The day label is used verbatim.
func RecordKey(week int, day string) string {
	return fmt.Sprintf("w%d_d%s", week, day)
}

// WeekFromKey extracts the leading week number from a record key.
// ok is false when the key does not start with "w" followed by at least one digit.
func WeekFromKey(key string) (week int, ok bool) {
	rest, found := strings.CutPrefix(key, "w")
	if !found {
		return 0, false
	}
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	week, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return week, true
}

// ParseMiles converts a text distance into a number. Blank or malformed input yields ok == false,
// never an error: a bad distance means "no distance recorded".
func ParseMiles(s string) (miles float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	miles, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return 0, false
	}
	return miles, true
}

// IsEmptyLog reports whether log input carries nothing worth persisting:
// not completed, no notes, and no nonzero distance.
func IsEmptyLog(completed bool, notes, actualMiles string) bool {
	if completed || strings.TrimSpace(notes) != "" {
		return false
	}
	miles, ok := ParseMiles(actualMiles)
	return !ok || miles == 0
}

// ClearModification drops every modification field and leaves completion data alone.
func (r *WorkoutRecord) ClearModification() {
	r.IsModified = false
	r.OriginalWorkout = ""
	r.OriginalMiles = nil
	r.ModifiedWorkout = ""
	r.ModifiedMiles = nil
	r.ModifiedType = ""
	r.ModificationReason = ""
	r.ModifiedDate = ""
}
