package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// milesText accepts a distance as a JSON string or number and keeps it as text.
// Forms post strings, scripted clients tend to post numbers.
type milesText string

func (m *milesText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = milesText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("distance must be a string or number: %w", err)
	}
	*m = milesText(n.String())
	return nil
}

// optionalMiles is a planned distance that may be absent, a number, or a numeric string.
// Unparsable text decodes as absent rather than failing the request.
type optionalMiles struct {
	Value *float64
}

func (o *optionalMiles) UnmarshalJSON(b []byte) error {
	var text milesText
	if err := text.UnmarshalJSON(b); err != nil {
		return err
	}
	s := strings.TrimSpace(string(text))
	if s == "" {
		o.Value = nil
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		o.Value = nil
		return nil
	}
	o.Value = &v
	return nil
}

// SlotRequest identifies one plan slot.
type SlotRequest struct {
	Week int    `json:"week" binding:"required,min=1"`
	Day  string `json:"day" binding:"required"`
}

// LogWorkoutRequest is the body of POST /workouts/log.
type LogWorkoutRequest struct {
	Week        int            `json:"week" binding:"required,min=1"`
	Day         string         `json:"day" binding:"required"`
	Completed   bool           `json:"completed"`
	Notes       string         `json:"notes"`
	ActualMiles milesText      `json:"actual_miles"`
	ActualPace  string         `json:"actual_pace"`
	Duration    string         `json:"duration"`
	StravaData  map[string]any `json:"strava_data"`
}

// EditWorkoutRequest is the body of POST /workouts/edit.
type EditWorkoutRequest struct {
	Week               int           `json:"week" binding:"required,min=1"`
	Day                string        `json:"day" binding:"required"`
	OriginalWorkout    string        `json:"original_workout"`
	OriginalMiles      optionalMiles `json:"original_miles"`
	ModifiedWorkout    string        `json:"modified_workout"`
	ModifiedMiles      optionalMiles `json:"modified_miles"`
	ModifiedType       string        `json:"modified_type"`
	ModificationReason string        `json:"modification_reason"`
}
