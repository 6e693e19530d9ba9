package ports

import (
	"context"

	"github.com/domainpanel/backend/internal/core/domain"
)

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput holds the allow-listed fields of a partial update.
// Nil means the field was not supplied.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Status   *string
}

// ListUsersInput carries the directory listing parameters.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

// ListUsersResult is one page of the directory plus pagination metadata.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the admin directory use cases.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
