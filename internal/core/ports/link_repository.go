package ports

import (
	"context"

	"github.com/navihub/navihub/internal/core/domain"
)

// LinkRepository defines persistence operations for directory links.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindByID(ctx context.Context, id int64) (*domain.Link, error)
	List(ctx context.Context) ([]domain.Link, error)
	// Update overwrites every mutable column of the row identified by link.ID.
	Update(ctx context.Context, link *domain.Link) (*domain.Link, error)
	Delete(ctx context.Context, id int64) error
}
