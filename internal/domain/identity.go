package domain

import "time"

// Identity is the claim carried by an access token. The email is the only
// trust anchor; there are no roles.
type Identity struct {
	Email string
}

// Token is an issued access token with its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
