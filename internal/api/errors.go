package api

import (
	"alcyxob/training-tracker/internal/service"
	"alcyxob/training-tracker/internal/strava"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps service and adapter errors onto status codes and the common error body.
func respondError(c *gin.Context, err error) {
	var upstream *strava.UpstreamError
	switch {
	case errors.Is(err, service.ErrInvalidSlot):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, service.ErrStoreFailure):
		log.Errorf("[%s] store failure: %s", c.GetString(ContextRequestIDKey), err)
		abortWithError(c, http.StatusServiceUnavailable, "Workout storage is unavailable, please try again")
	case errors.Is(err, service.ErrBackupsDisabled), errors.Is(err, strava.ErrDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrBackupFailed):
		log.Errorf("[%s] backup failed: %s", c.GetString(ContextRequestIDKey), err)
		abortWithError(c, http.StatusBadGateway, "Backup upload failed")
	case errors.Is(err, strava.ErrNotConnected):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success":     false,
			"error":       err.Error(),
			"reauthorize": true,
		})
	case errors.Is(err, strava.ErrInvalidState):
		abortWithError(c, http.StatusBadRequest, "Invalid or expired authorization state")
	case errors.As(err, &upstream):
		status := http.StatusBadGateway
		if upstream.Timeout {
			status = http.StatusGatewayTimeout
		}
		log.Warnf("[%s] %s", c.GetString(ContextRequestIDKey), upstream)
		c.AbortWithStatusJSON(status, gin.H{
			"success":   false,
			"error":     upstream.Error(),
			"retryable": upstream.Retryable(),
		})
	default:
		log.Errorf("[%s] unexpected error: %s", c.GetString(ContextRequestIDKey), err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
