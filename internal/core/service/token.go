package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenClaims are the identity claims carried by a signed token. Minted at
// login or registration, verified statelessly, never persisted.
type TokenClaims struct {
	RoleID string `json:"role_id,omitempty"`
	// PasswordChangedAt is the account's last password change in unix
	// seconds at issue time; zero when the password was never changed.
	PasswordChangedAt int64 `json:"password_changed_at,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies compact HS256 tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Generate mints a token for the user. Expiry is always set: a token
// without exp does not verify.
func (s *TokenService) Generate(user *domain.User) (string, error) {
	now := s.now()
	claims := TokenClaims{
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if user.PasswordChangedAt != nil {
		claims.PasswordChangedAt = user.PasswordChangedAt.Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks structure, signature, and expiry, mapping failures onto the
// domain taxonomy. Signature comparison inside the jwt library is
// constant-time (HMAC recompute + hmac.Equal).
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, domain.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case err != nil || !parsed.Valid:
		return nil, domain.ErrInvalidToken
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// IsStale reports whether a token issued at issuedAt predates the account's
// last password change. Both sides are compared in whole seconds; a change
// in the same second as issuance does not invalidate the token.
func IsStale(passwordChangedAt *time.Time, issuedAt time.Time) bool {
	if passwordChangedAt == nil {
		return false
	}
	return passwordChangedAt.Unix() > issuedAt.Unix()
}
