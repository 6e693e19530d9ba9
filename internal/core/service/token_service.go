package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// tokenClaims is the JWT payload: registered subject/expiry plus the
// caller's role, so downstream authorization needs no store lookup.
// The trade-off is that a role change only takes effect once the old
// token expires.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access and refresh tokens. Each
// class uses its own HS256 secret, bounding the blast radius of a
// leaked secret and guaranteeing a refresh token is never accepted
// where an access token is expected.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (m *TokenManager) IssueAccessToken(user *domain.User) (string, error) {
	return m.sign(user, m.accessSecret, m.accessTTL)
}

func (m *TokenManager) IssueRefreshToken(user *domain.User) (string, error) {
	return m.sign(user, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) VerifyAccess(token string) (*ports.TokenClaims, error) {
	return verifyToken(token, m.accessSecret)
}

func (m *TokenManager) VerifyRefresh(token string) (*ports.TokenClaims, error) {
	return verifyToken(token, m.refreshSecret)
}

func (m *TokenManager) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verifyToken(token string, secret []byte) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}
