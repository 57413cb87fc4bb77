package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 365 * 24 * time.Hour

var (
	// ErrMissingSecret is returned when no signing key is configured.
	ErrMissingSecret = errors.New("access token secret not configured")
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed token, wrong algorithm or expiry.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenVerifier decodes an access token into the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Claims describes JWT payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 access tokens. There is no revocation;
// expiry is the only way a token stops being valid.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec. An empty secret is a configuration error.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the identity, expiring ttl from now.
func (tc *TokenCodec) Issue(identity domain.Identity) (domain.Token, error) {
	issuedAt := tc.now()
	expiresAt := issuedAt.Add(tc.ttl)
	claims := &Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
	if err != nil {
		return domain.Token{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify validates the token and returns its identity. All failures wrap
// ErrInvalidToken so callers cannot tell expiry from tampering.
func (tc *TokenCodec) Verify(token string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return tc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tc.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{Email: claims.Email}, nil
}
