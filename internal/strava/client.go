package strava

import (
	"alcyxob/training-tracker/internal/config"
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/metrics"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// ConnectionStatus is what the UI needs to render the connect/disconnect control.
type ConnectionStatus struct {
	Connected bool            `json:"connected"`
	Athlete   *domain.Athlete `json:"athlete,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

// Client owns the OAuth token lifecycle and the activity lookups for one connected athlete.
type Client struct {
	oauth      *oauth2.Config
	scope      string
	apiURL     string
	httpClient *http.Client
	tokens     repository.TokenRepository
	state      *StateSigner
	cache      *freecache.Cache // nil disables caching
	cacheTTL   time.Duration
	metrics    *metrics.Manager // optional
	now        func() time.Time
}

func NewClient(cfg config.StravaConfig, tokens repository.TokenRepository, state *StateSigner, m *metrics.Manager) *Client {
	c := &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		// Strava expects comma separated scopes, oauth2 would join them with spaces.
		scope:      strings.Join(cfg.Scopes, ","),
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		state:      state,
		cacheTTL:   cfg.CacheTTL,
		metrics:    m,
		now:        time.Now,
	}
	if cfg.CacheSizeMB > 0 && cfg.CacheTTL > 0 {
		c.cache = freecache.NewCache(cfg.CacheSizeMB * 1024 * 1024)
	}
	return c
}

// ValidToken returns a usable access token, refreshing it first when the stored one is
// at or past its expiry. It returns ok == false when not connected or when the refresh fails.
func (c *Client) ValidToken(ctx context.Context) (string, bool) {
	stored, err := c.tokens.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Errorf("strava: load token: %s", err)
		}
		return "", false
	}
	if !stored.Expired(c.now()) {
		return stored.AccessToken, true
	}

	refreshed, err := c.refresh(ctx, stored)
	if err != nil {
		log.Warnf("strava: token refresh failed: %s", err)
		c.countRefresh("failed")
		return "", false
	}
	c.countRefresh("ok")
	log.Infof("strava: token refreshed, expires at %s", refreshed.ExpiresAt.Format(time.RFC3339))
	return refreshed.AccessToken, true
}

// refresh performs exactly one refresh-token grant and persists the result. A persistence
// failure is logged and the fresh token is still returned.
func (c *Client) refresh(ctx context.Context, stored *domain.OAuthToken) (*domain.OAuthToken, error) {
	src := c.oauth.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: stored.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, upstreamFromOAuth("token refresh", err)
	}

	next := c.fromOAuthToken(tok)
	next.Athlete = stored.Athlete
	if next.RefreshToken == "" {
		next.RefreshToken = stored.RefreshToken
	}
	if err := c.tokens.SaveToken(ctx, next); err != nil {
		// The provider rotates refresh tokens: the stored one is likely revoked now.
		log.Errorf("strava: refreshed token not persisted, rotated refresh token lost: %s", err)
		c.countRefresh("unpersisted")
	}
	return next, nil
}

// AuthorizeURL builds the provider consent URL with a freshly signed state.
func (c *Client) AuthorizeURL() (string, error) {
	state, err := c.state.Sign()
	if err != nil {
		return "", err
	}
	return c.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("scope", c.scope),
		oauth2.SetAuthURLParam("approval_prompt", "auto"),
	), nil
}

// Connect completes the authorization-code flow and stores the issued token and athlete.
func (c *Client) Connect(ctx context.Context, code, state string) (*domain.OAuthToken, error) {
	if err := c.state.Verify(state); err != nil {
		return nil, err
	}
	tok, err := c.oauth.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, upstreamFromOAuth("code exchange", err)
	}

	stored := c.fromOAuthToken(tok)
	stored.Athlete = athleteFromExtra(tok.Extra("athlete"))
	if err := c.tokens.SaveToken(ctx, stored); err != nil {
		return nil, err
	}
	c.purgeCache()

	if stored.Athlete != nil {
		log.Infof("strava: connected athlete %d", stored.Athlete.ID)
	}
	return stored, nil
}

func (c *Client) Status(ctx context.Context) (*ConnectionStatus, error) {
	stored, err := c.tokens.GetToken(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &ConnectionStatus{Connected: false}, nil
	}
	if err != nil {
		return nil, err
	}
	expiresAt := stored.ExpiresAt
	return &ConnectionStatus{
		Connected: true,
		Athlete:   stored.Athlete,
		ExpiresAt: &expiresAt,
	}, nil
}

// Disconnect forgets the stored token. Disconnecting twice is not an error.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.tokens.DeleteToken(ctx); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	c.purgeCache()
	log.Infoln("strava: disconnected")
	return nil
}

func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// fromOAuthToken prefers the provider's absolute expires_at over the computed expiry.
func (c *Client) fromOAuthToken(tok *oauth2.Token) *domain.OAuthToken {
	expiresAt := tok.Expiry
	if v, ok := tok.Extra("expires_at").(float64); ok && v > 0 {
		expiresAt = time.Unix(int64(v), 0)
	}
	return &domain.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expiresAt.UTC(),
		UpdatedAt:    c.now().UTC(),
	}
}

func athleteFromExtra(v interface{}) *domain.Athlete {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	a := &domain.Athlete{}
	if id, ok := m["id"].(float64); ok {
		a.ID = int64(id)
	}
	a.Username, _ = m["username"].(string)
	a.FirstName, _ = m["firstname"].(string)
	a.LastName, _ = m["lastname"].(string)
	return a
}

func upstreamFromOAuth(op string, err error) *UpstreamError {
	ue := upstreamError(op, err)
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		ue.StatusCode = rErr.Response.StatusCode
	}
	return ue
}

func (c *Client) purgeCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *Client) countRefresh(result string) {
	if c.metrics != nil {
		c.metrics.CounterTokenRefreshes.WithLabelValues(result).Inc()
	}
}
