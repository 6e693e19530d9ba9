package ports

import (
	"context"

	"github.com/domainpanel/backend/internal/core/domain"
)

// DomainService defines the self-service portfolio use cases. Every
// operation is scoped to the authenticated caller.
type DomainService interface {
	ListOwned(ctx context.Context, userID string) ([]*domain.DomainRecord, error)
	Add(ctx context.Context, userID, rawName string) (*domain.DomainRecord, error)
	SetStatus(ctx context.Context, userID, id, status string) (*domain.DomainRecord, error)
}
