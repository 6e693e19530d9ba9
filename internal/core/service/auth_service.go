package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

// UserCache caches user records by id for the refresh flow. The cache
// is advisory: any failure falls back to the repository. A Get miss is
// (nil, nil).
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// AuthService implements login and refresh-token exchange.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	cache  UserCache
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, cache UserCache, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, cache: cache, log: log}
}

// Login verifies the credentials and returns a fresh token pair plus
// the user. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return nil, nil, domain.Validationf("email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login successful")
	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The
// subject must still exist; a deleted user's refresh token is dead.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.Validationf("refreshToken is required")
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user := s.cachedUser(ctx, claims.Subject)
	if user == nil {
		user, err = s.repo.FindByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrInvalidToken
			}
			return nil, err
		}
		if s.cache != nil {
			if cacheErr := s.cache.Set(ctx, user); cacheErr != nil {
				s.log.Warn().Err(cacheErr).Str("user_id", user.ID).Msg("failed to cache user")
			}
		}
	}

	return s.issuePair(user)
}

// cachedUser reads through the cache; any cache error is logged and
// treated as a miss.
func (s *AuthService) cachedUser(ctx context.Context, id string) *domain.User {
	if s.cache == nil {
		return nil
	}
	user, err := s.cache.Get(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed, falling back to store")
		return nil
	}
	return user
}

func (s *AuthService) issuePair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
