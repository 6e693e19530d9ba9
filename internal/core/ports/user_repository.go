package ports

import (
	"context"

	"github.com/domainpanel/backend/internal/core/domain"
)

// ListUsersFilter carries the query parameters for a directory listing.
type ListUsersFilter struct {
	Search string // case-insensitive substring match on name OR email
	Role   string // optional: "admin" or "user"
	Page   int    // 1-based
	Limit  int    // rows per page (capped at 100 by the service)
}

// UserUpdate holds the allow-listed mutable fields. A nil field is left
// untouched. Only a hash ever reaches PasswordHash; plaintext passwords
// never cross this boundary.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
}

// UserRepository defines persistence for the credential store. Email
// uniqueness is enforced by the store itself; Create and Update return
// domain.ErrEmailTaken on a constraint violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// EmailInUse reports whether a user other than excludeID holds email.
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// List returns a page of users newest-first and the total match count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// Delete removes the user and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
