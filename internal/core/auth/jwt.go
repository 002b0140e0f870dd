package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"terravolt-cms/internal/domain"
)

// DefaultSecret is the fallback signing key used when no secret is
// configured. Known-insecure; deployments must set jwt.secret.
const DefaultSecret = "terravolt-dev-secret"

const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	UID   string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func New(secret, issuer string, ttl time.Duration) *JWTer {
	if secret == "" {
		secret = DefaultSecret
	}
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &JWTer{Secret: []byte(secret), Issuer: issuer, TTL: ttl}
}

func (j *JWTer) Issue(id, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:   id,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Verify collapses every failure mode (malformed, expired, bad
// signature, wrong alg) into domain.ErrInvalidToken. Callers must not
// branch on the reason.
func (j *JWTer) Verify(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrInvalidToken
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, domain.ErrInvalidToken
	}
	return c, nil
}
