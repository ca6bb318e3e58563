package domain

import "time"

// Athlete is the provider-side identity attached to a connected OAuth token.
type Athlete struct {
	ID        int64  `bson:"id" json:"id"`
	Username  string `bson:"username,omitempty" json:"username,omitempty"`
	FirstName string `bson:"firstname,omitempty" json:"firstname,omitempty"`
	LastName  string `bson:"lastname,omitempty" json:"lastname,omitempty"`
}

// OAuthToken is the single stored token record for the activity provider.
type OAuthToken struct {
	AccessToken  string    `bson:"access_token" json:"access_token"`
	RefreshToken string    `bson:"refresh_token" json:"refresh_token"`
	ExpiresAt    time.Time `bson:"expires_at" json:"expires_at"` // Absolute expiry
	Athlete      *Athlete  `bson:"athlete,omitempty" json:"athlete,omitempty"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Expired reports whether the access token must be refreshed before use.
func (t *OAuthToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
