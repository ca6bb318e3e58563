package api

import (
	"alcyxob/training-tracker/internal/metrics"
	"alcyxob/training-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backupService service.BackupService
	metrics       *metrics.Manager // optional
}

func NewBackupHandler(backupService service.BackupService, m *metrics.Manager) *BackupHandler {
	return &BackupHandler{backupService: backupService, metrics: m}
}

// CreateBackup godoc
// @Summary Export all workout records to object storage
// @Tags Backups
// @Produce json
// @Success 201 {object} domain.Backup
// @Failure 503 {object} gin.H "Backups not configured or store unavailable"
// @Router /backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	backup, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		h.count("failed")
		respondError(c, err)
		return
	}
	h.count("ok")
	c.JSON(http.StatusCreated, backup)
}

func (h *BackupHandler) count(result string) {
	if h.metrics != nil {
		h.metrics.CounterBackups.WithLabelValues(result).Inc()
	}
}
