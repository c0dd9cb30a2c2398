package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed lifetime of an identity token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the JWT payload. The subject is read from user_id, then id,
// then sub, so tokens minted by the previous portal backend keep verifying.
type tokenClaims struct {
	UserID   string `json:"user_id"`
	LegacyID string `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 identity tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for userID that expires ttl from now.
func (s *JWTService) Issue(userID string) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and then the expiry. It returns
// domain.ErrTokenExpired for a genuine but stale token and
// domain.ErrInvalidToken for anything else.
func (s *JWTService) Verify(token string) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	for _, id := range []string{claims.UserID, claims.LegacyID, claims.Subject} {
		if id != "" {
			return id, nil
		}
	}
	return "", domain.ErrInvalidToken
}
