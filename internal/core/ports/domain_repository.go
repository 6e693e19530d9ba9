package ports

import (
	"context"

	"github.com/domainpanel/backend/internal/core/domain"
)

// DomainRepository defines persistence for per-user domain records.
// The (user, domain name) pair is unique at the store level; Create
// returns domain.ErrDomainTaken on a constraint violation.
type DomainRepository interface {
	Create(ctx context.Context, rec *domain.DomainRecord) (*domain.DomainRecord, error)
	// FindByOwner returns all records owned by userID, newest-first.
	FindByOwner(ctx context.Context, userID string) ([]*domain.DomainRecord, error)
	ExistsForOwner(ctx context.Context, userID, domainName string) (bool, error)
	// UpdateStatus is scoped by both record id and owner so a caller can
	// never touch another user's record.
	UpdateStatus(ctx context.Context, id, userID, status string) (*domain.DomainRecord, error)
}
