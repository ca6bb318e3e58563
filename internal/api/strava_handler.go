package api

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/strava"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StravaClient is the part of strava.Client the handlers use.
type StravaClient interface {
	AuthorizeURL() (string, error)
	Connect(ctx context.Context, code, state string) (*domain.OAuthToken, error)
	Status(ctx context.Context) (*strava.ConnectionStatus, error)
	Disconnect(ctx context.Context) error
	ActivitiesForDate(ctx context.Context, date time.Time) (*domain.ActivityList, error)
}

// StravaHandler serves the connection flow and the per-date activity lookup.
type StravaHandler struct {
	client StravaClient // nil when the integration is not configured
}

func NewStravaHandler(client StravaClient) *StravaHandler {
	return &StravaHandler{client: client}
}

// Status godoc
// @Summary Report whether an activity account is connected
// @Tags Strava
// @Produce json
// @Success 200 {object} strava.ConnectionStatus
// @Router /strava/status [get]
func (h *StravaHandler) Status(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusOK, gin.H{"connected": false, "enabled": false})
		return
	}
	status, err := h.client.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Connect godoc
// @Summary Redirect to the provider consent page
// @Tags Strava
// @Success 302
// @Router /strava/connect [get]
func (h *StravaHandler) Connect(c *gin.Context) {
	if h.client == nil {
		respondError(c, strava.ErrDisabled)
		return
	}
	url, err := h.client.AuthorizeURL()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// Callback godoc
// @Summary Complete the authorization-code flow
// @Tags Strava
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state"
// @Success 200 {object} gin.H "athlete is the connected identity"
// @Failure 400 {object} gin.H "Missing code, denied access or invalid state"
// @Failure 502 {object} gin.H "Token endpoint failure"
// @Router /strava/callback [get]
func (h *StravaHandler) Callback(c *gin.Context) {
	if h.client == nil {
		respondError(c, strava.ErrDisabled)
		return
	}
	if denied := c.Query("error"); denied != "" {
		abortWithError(c, http.StatusBadRequest, "Authorization was not granted: "+denied)
		return
	}
	code := c.Query("code")
	if code == "" {
		abortWithError(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := h.client.Connect(c.Request.Context(), code, c.Query("state"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "athlete": token.Athlete})
}

// Disconnect godoc
// @Summary Forget the stored token
// @Tags Strava
// @Produce json
// @Success 200 {object} gin.H
// @Router /strava/disconnect [post]
func (h *StravaHandler) Disconnect(c *gin.Context) {
	if h.client == nil {
		respondError(c, strava.ErrDisabled)
		return
	}
	if err := h.client.Disconnect(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Activities godoc
// @Summary List normalized runs for a date
// @Tags Strava
// @Produce json
// @Param date query string true "Date as YYYY-MM-DD"
// @Success 200 {object} domain.ActivityList
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 401 {object} gin.H "Not connected, reauthorize is true"
// @Failure 502 {object} gin.H "Provider failure"
// @Failure 504 {object} gin.H "Provider timeout, retryable is true"
// @Router /strava/activities [get]
func (h *StravaHandler) Activities(c *gin.Context) {
	if h.client == nil {
		respondError(c, strava.ErrDisabled)
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	list, err := h.client.ActivitiesForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
