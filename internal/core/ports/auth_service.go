package ports

import (
	"context"

	"github.com/domainpanel/backend/internal/core/domain"
)

// AuthService implements password login and refresh-token exchange.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
