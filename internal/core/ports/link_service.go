package ports

import (
	"context"

	"github.com/navihub/navihub/internal/core/domain"
)

// LinkInput carries all mutable link fields. Updates are full replacements:
// every field is written, none is merged with the stored row.
type LinkInput struct {
	Name        string
	Description string
	URL         string
	Icon        string
	Group       string
}

// LinkService defines use-case operations for directory links.
type LinkService interface {
	List(ctx context.Context) ([]domain.Link, error)
	Create(ctx context.Context, input LinkInput) (*domain.Link, error)
	Update(ctx context.Context, id int64, input LinkInput) (*domain.Link, error)
	Delete(ctx context.Context, id int64) error
}
