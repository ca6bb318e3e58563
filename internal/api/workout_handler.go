package api

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/metrics"
	"alcyxob/training-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the log/edit/revert endpoints and the raw record listing.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	metrics        *metrics.Manager // optional
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, m *metrics.Manager) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, metrics: m}
}

// LogWorkout godoc
// @Summary Log completion data for a plan slot
// @Description Saves completion, distance, pace and notes. An entirely empty log clears the slot.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body LogWorkoutRequest true "Completion data"
// @Success 200 {object} gin.H "status is saved or cleared, data is the stored record or null"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /workouts/log [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	res, err := h.workoutService.LogWorkout(c.Request.Context(), service.LogWorkoutInput{
		Week:        req.Week,
		Day:         req.Day,
		Completed:   req.Completed,
		Notes:       req.Notes,
		ActualMiles: string(req.ActualMiles),
		ActualPace:  req.ActualPace,
		Duration:    req.Duration,
		Enrichment:  req.StravaData,
	})
	if res != nil && h.metrics != nil {
		h.metrics.CounterWorkoutLogs.WithLabelValues(string(res.Outcome)).Inc()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  res.Outcome,
		"data":    res.Record,
	})
}

// EditWorkout godoc
// @Summary Modify the planned workout of a slot
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body EditWorkoutRequest true "Modification"
// @Success 200 {object} gin.H "data is the stored record"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /workouts/edit [post]
func (h *WorkoutHandler) EditWorkout(c *gin.Context) {
	var req EditWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.workoutService.EditWorkout(c.Request.Context(), service.EditWorkoutInput{
		Week:               req.Week,
		Day:                req.Day,
		OriginalWorkout:    req.OriginalWorkout,
		OriginalMiles:      req.OriginalMiles.Value,
		ModifiedWorkout:    req.ModifiedWorkout,
		ModifiedMiles:      req.ModifiedMiles.Value,
		ModifiedType:       domain.DayType(req.ModifiedType),
		ModificationReason: req.ModificationReason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CounterWorkoutEdits.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// RevertWorkout godoc
// @Summary Drop the modification of a slot
// @Tags Workouts
// @Accept json
// @Produce json
// @Param slot body SlotRequest true "Slot"
// @Success 200 {object} gin.H "data is the stored record"
// @Failure 404 {object} gin.H "No record for the slot"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /workouts/revert [post]
func (h *WorkoutHandler) RevertWorkout(c *gin.Context) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.workoutService.RevertWorkout(c.Request.Context(), req.Week, req.Day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// GetWorkouts godoc
// @Summary List every stored workout record keyed by slot
// @Tags Workouts
// @Produce json
// @Success 200 {object} map[string]domain.WorkoutRecord
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /workouts [get]
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	records, err := h.workoutService.GetAllRecords(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ResetWorkouts godoc
// @Summary Delete every stored workout record
// @Tags Workouts
// @Produce json
// @Success 200 {object} gin.H "removed is the number of deleted records"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /workouts [delete]
func (h *WorkoutHandler) ResetWorkouts(c *gin.Context) {
	n, err := h.workoutService.ResetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": n})
}
