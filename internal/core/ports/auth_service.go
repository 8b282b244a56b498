package ports

import (
	"context"

	"github.com/navihub/navihub/internal/core/domain"
)

// PasswordHasher produces one-way salted password hashes. The user service
// depends on this narrow slice of AuthService so it never sees token logic.
type PasswordHasher interface {
	HashPassword(plaintext string) (string, error)
}

// AuthService defines credential verification and token lifecycle operations.
type AuthService interface {
	PasswordHasher

	// Login verifies the credentials and returns a signed bearer token
	// together with the authenticated user. Unknown usernames and wrong
	// passwords are indistinguishable: both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// CurrentUser resolves a bearer token to the live user record. A token
	// whose subject no longer exists (account deleted mid-session) fails
	// with ErrInvalidCredentials, same as a bad signature or expiry.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
