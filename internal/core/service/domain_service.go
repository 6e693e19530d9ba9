package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

// DomainService implements the self-service portfolio. Every operation
// is scoped to the authenticated owner.
type DomainService struct {
	repo ports.DomainRepository
	log  zerolog.Logger
}

func NewDomainService(repo ports.DomainRepository, log zerolog.Logger) *DomainService {
	return &DomainService{repo: repo, log: log}
}

// ListOwned returns the caller's domains, newest-first.
func (s *DomainService) ListOwned(ctx context.Context, userID string) ([]*domain.DomainRecord, error) {
	return s.repo.FindByOwner(ctx, userID)
}

// Add normalizes and validates the supplied name, then registers it for
// the caller. The pre-check gives a friendly conflict on the common
// path; the store's unique (owner, name) index is the authoritative
// guard when two adds race.
func (s *DomainService) Add(ctx context.Context, userID, rawName string) (*domain.DomainRecord, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, domain.Validationf("domainName is required")
	}

	name := domain.NormalizeDomainName(rawName)
	if !domain.ValidDomainName(name) {
		return nil, domain.Validationf("invalid domain format (example: example.com)")
	}

	exists, err := s.repo.ExistsForOwner(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDomainTaken
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.DomainRecord{
		DomainName: name,
		UserID:     userID,
		Status:     domain.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("domain", name).Msg("domain registered")
	return created, nil
}

// SetStatus flips a record between active and inactive. The update is
// keyed by both record id and owner, so an id belonging to someone else
// reads as not found.
func (s *DomainService) SetStatus(ctx context.Context, userID, id, status string) (*domain.DomainRecord, error) {
	if !domain.IsValidID(id) {
		return nil, domain.Validationf("invalid domain id")
	}
	if !domain.ValidStatus(status) {
		return nil, domain.Validationf("status must be active or inactive")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, userID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("domain_id", id).Str("status", status).Msg("domain status updated")
	return updated, nil
}
