package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

const (
	bcryptCost     = 12
	minPasswordLen = 6

	defaultPageLimit = 10
	maxPageLimit     = 100
)

// UserService implements the admin directory use cases.
type UserService struct {
	repo  ports.UserRepository
	cache UserCache
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache UserCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

// CreateUser validates, normalizes and persists a new account. The
// duplicate check runs twice: proactively here, and again at the store
// via the unique email index, which is the authoritative outcome when
// two creates race.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	name := domain.NormalizeName(input.Name)
	email := domain.NormalizeEmail(input.Email)

	if name == "" || email == "" || input.Password == "" {
		return nil, domain.Validationf("name, email and password are required")
	}
	if len(input.Password) < minPasswordLen {
		return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.ClampRole(input.Role),
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// UpdateUser applies a partial update restricted to the allow-listed
// fields. A supplied password is re-validated and hashed before it
// reaches the store; plaintext is never persisted.
func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.IsValidID(id) {
		return nil, domain.Validationf("invalid user id")
	}

	var update ports.UserUpdate

	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		if name == "" {
			return nil, domain.Validationf("name cannot be empty")
		}
		update.Name = &name
	}

	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		if email == "" {
			return nil, domain.Validationf("email cannot be empty")
		}
		inUse, err := s.repo.EmailInUse(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, domain.ErrEmailTaken
		}
		update.Email = &email
	}

	if input.Password != nil {
		if len(*input.Password) < minPasswordLen {
			return nil, domain.Validationf("password must be at least %d characters", minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if input.Role != nil {
		role := domain.ClampRole(*input.Role)
		update.Role = &role
	}

	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, domain.Validationf("status must be active or inactive")
		}
		update.Status = input.Status
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// ListUsers returns one directory page newest-first with pagination
// metadata. Limit is clamped to [1,100]; totalPages never drops below 1.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	role := ""
	if input.Role == domain.RoleAdmin || input.Role == domain.RoleUser {
		role = input.Role
	}

	users, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		Search: strings.TrimSpace(input.Search),
		Role:   role,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// DeleteUser removes the account and returns the removed record.
// Domain records owned by the user are left in place.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	if !domain.IsValidID(id) {
		return nil, domain.Validationf("invalid user id")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return deleted, nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to invalidate user cache")
	}
}
