package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is injected at construction; NewTokenService refuses an empty secret
// so the process can never silently issue tokens with an undefined key.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// sessionClaims is the JWT payload: the account ID travels as the subject.
type sessionClaims struct {
	jwt.RegisteredClaims
}

var ErrEmptySecret = errors.New("token service: signing secret must not be empty")

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token carrying accountID as subject, expiring
// ttl from now.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning the subject account ID.
// Failure modes map onto the domain token error taxonomy:
//
//	empty token      → ErrTokenMissing
//	past expiry      → ErrTokenExpired
//	anything else    → ErrTokenInvalid (bad signature, malformed, wrong alg)
func (s *TokenService) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrTokenMissing
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
