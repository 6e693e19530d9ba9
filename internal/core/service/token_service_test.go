package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/domainpanel/backend/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:   "507f1f77bcf86cd799439011",
		Role: domain.RoleAdmin,
	}
}

func TestTokenManager_AccessRoundtrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)

	token, err := m.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	claims, err := m.VerifyAccess(token)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if claims.Subject != "507f1f77bcf86cd799439011" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenManager_RefreshRoundtrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)

	token, err := m.IssueRefreshToken(testUser())
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}
	if _, err := m.VerifyRefresh(token); err != nil {
		t.Fatalf("verify refresh token: %v", err)
	}
}

func TestTokenManager_ClassSeparation(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)

	access, err := m.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	refresh, err := m.IssueRefreshToken(testUser())
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	if _, err := m.VerifyAccess(refresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected refresh token rejected as access, got %v", err)
	}
	if _, err := m.VerifyRefresh(access); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected access token rejected as refresh, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)
	other := NewTokenManager("different", "secrets", 0, 0)

	token, err := m.IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	if _, err := other.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected token signed with another secret to fail, got %v", err)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)

	claims := jwt.RegisteredClaims{
		Subject:   "507f1f77bcf86cd799439011",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}
}

func TestTokenManager_RejectsUnsignedToken(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 0, 0)

	claims := jwt.RegisteredClaims{Subject: "507f1f77bcf86cd799439011"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := m.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected alg=none token rejected, got %v", err)
	}
}
