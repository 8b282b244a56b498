package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

// LinkService implements CRUD over directory links. All mutations are
// admin-gated at the transport layer; the service trusts its caller.
type LinkService struct {
	repo   ports.LinkRepository
	logger zerolog.Logger
}

func NewLinkService(repo ports.LinkRepository, logger zerolog.Logger) *LinkService {
	return &LinkService{repo: repo, logger: logger}
}

// List returns every link in the directory. No filtering, no pagination.
func (s *LinkService) List(ctx context.Context) ([]domain.Link, error) {
	return s.repo.List(ctx)
}

// Create persists a new link and returns it with its assigned identity.
func (s *LinkService) Create(ctx context.Context, input ports.LinkInput) (*domain.Link, error) {
	link := &domain.Link{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Icon:        input.Icon,
		Group:       input.Group,
	}

	created, err := s.repo.Create(ctx, link)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create link")
		return nil, err
	}

	s.logger.Info().Int64("link_id", created.ID).Str("name", created.Name).Msg("link created")
	return created, nil
}

// Update full-replaces every mutable field of the link with the given id.
func (s *LinkService) Update(ctx context.Context, id int64, input ports.LinkInput) (*domain.Link, error) {
	link := &domain.Link{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Icon:        input.Icon,
		Group:       input.Group,
	}

	updated, err := s.repo.Update(ctx, link)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("link_id", id).Msg("link updated")
	return updated, nil
}

// Delete removes the link permanently.
func (s *LinkService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("link_id", id).Msg("link deleted")
	return nil
}
