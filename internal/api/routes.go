package api

import (
	"alcyxob/training-tracker/internal/metrics"
	"alcyxob/training-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the handlers depend on.
type Services struct {
	Catalog  service.PlanCatalog
	Workouts service.WorkoutService
	Stats    service.StatsService
	Backups  service.BackupService
	Strava   StravaClient // nil when the integration is not configured
}

// NewRouter creates a gin engine with the common middleware chain. m may be nil.
func NewRouter(m *metrics.Manager) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware(), AccessLogMiddleware(), RecoveryMiddleware(m))
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}
	return router
}

// SetupRoutes registers every endpoint. gatherer may be nil to leave /metrics out.
func SetupRoutes(router *gin.Engine, svc Services, m *metrics.Manager, gatherer prometheus.Gatherer) {
	workoutHandler := NewWorkoutHandler(svc.Workouts, m)
	planHandler := NewPlanHandler(svc.Catalog, svc.Workouts, svc.Stats)
	stravaHandler := NewStravaHandler(svc.Strava)
	backupHandler := NewBackupHandler(svc.Backups, m)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/plan", planHandler.GetPlan)
		apiV1.GET("/plan/view", planHandler.GetPlanView)
		apiV1.GET("/stats", planHandler.GetStats)

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.DELETE("", workoutHandler.ResetWorkouts)
			workoutGroup.POST("/log", workoutHandler.LogWorkout)
			workoutGroup.POST("/edit", workoutHandler.EditWorkout)
			workoutGroup.POST("/revert", workoutHandler.RevertWorkout)
		}

		stravaGroup := apiV1.Group("/strava")
		{
			stravaGroup.GET("/status", stravaHandler.Status)
			stravaGroup.GET("/connect", stravaHandler.Connect)
			stravaGroup.GET("/callback", stravaHandler.Callback)
			stravaGroup.POST("/disconnect", stravaHandler.Disconnect)
			stravaGroup.GET("/activities", stravaHandler.Activities)
		}

		apiV1.POST("/backups", backupHandler.CreateBackup)
	}

	// Paths used by the existing single-page frontend.
	legacy := router.Group("/api")
	{
		legacy.POST("/log_workout", workoutHandler.LogWorkout)
		legacy.POST("/edit_workout", workoutHandler.EditWorkout)
		legacy.POST("/revert_workout", workoutHandler.RevertWorkout)
		legacy.GET("/get_stats", planHandler.GetStats)
		legacy.GET("/get_plan", planHandler.GetPlan)
	}
}
