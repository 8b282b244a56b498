package ports

import (
	"context"

	"github.com/navihub/navihub/internal/core/domain"
)

// UserInput carries all mutable account fields. Password is mandatory on
// both create and update; updates always re-hash it.
type UserInput struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

// UserService defines use-case operations for account administration.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	// Delete removes the account with the given id. callerID is the identity
	// of the admin issuing the request; deleting one's own account fails
	// with ErrSelfDeletion.
	Delete(ctx context.Context, callerID, id int64) error
}
