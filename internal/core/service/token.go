package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the payload embedded in every issued token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
//
// Tokens are HMAC-SHA256 signed JWTs. Verification is purely
// cryptographic, there is no server-side session state and no
// revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenServiceConfig holds configuration for TokenService.
type TokenServiceConfig struct {
	// Secret is the HMAC signing key. Required.
	Secret []byte

	// TTL is the token validity window (default: 24h).
	TTL time.Duration

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(config *TokenServiceConfig) (*TokenService, error) {
	if config == nil || len(config.Secret) == 0 {
		return nil, errors.New("token service: signing secret is required")
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &TokenService{
		secret: config.Secret,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue creates a signed token for the user, valid for the configured TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	issuedAt := s.now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrInternal.WithCause(err)
	}

	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
//
// An expired token returns ErrTokenExpired; any other failure (bad
// signature, wrong algorithm, garbage input) returns ErrTokenMalformed.
// Both carry the same client-facing message.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired.WithCause(err)
		}
		return nil, domain.ErrTokenMalformed.WithCause(err)
	}

	return claims, nil
}

// TTL returns the configured token validity window.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
