package api

import (
	"alcyxob/training-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the static plan, the merged plan view and the statistics.
type PlanHandler struct {
	catalog        service.PlanCatalog
	workoutService service.WorkoutService
	statsService   service.StatsService
}

func NewPlanHandler(catalog service.PlanCatalog, workoutService service.WorkoutService, statsService service.StatsService) *PlanHandler {
	return &PlanHandler{
		catalog:        catalog,
		workoutService: workoutService,
		statsService:   statsService,
	}
}

// GetPlan godoc
// @Summary Get the full training plan
// @Tags Plan
// @Produce json
// @Success 200 {object} domain.TrainingPlan
// @Router /plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Plan())
}

// GetPlanView godoc
// @Summary Get every plan slot merged with its stored record
// @Tags Plan
// @Produce json
// @Success 200 {array} domain.WeekView
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /plan/view [get]
func (h *PlanHandler) GetPlanView(c *gin.Context) {
	views, err := h.workoutService.GetPlanView(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetStats godoc
// @Summary Get training statistics
// @Tags Plan
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /stats [get]
func (h *PlanHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.ComputeStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
