package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

// Default credentials for the bootstrap admin account. Created once on first
// start; operators are expected to change the password immediately.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin"
)

// UserService implements account administration. All operations are
// admin-gated at the transport layer.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns every account. Password hashes stay internal: the domain type
// never serializes them.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create hashes the supplied password and persists a new account. Username
// and email must both be unused.
func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	if err := s.checkUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      input.IsAdmin,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Bool("is_admin", created.IsAdmin).Msg("user created")
	return created, nil
}

// Update overwrites username, email, password hash and admin flag. The
// password is mandatory and re-hashed on every update. Uniqueness is only
// re-checked for values that actually changed, so a user can keep their own
// username and email.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != existing.Username {
		if err := s.checkUsernameFree(ctx, input.Username); err != nil {
			return nil, err
		}
	}
	if input.Email != existing.Email {
		if err := s.checkEmailFree(ctx, input.Email); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.repo.Update(ctx, &domain.User{
		ID:           id,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      input.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

// Delete removes the account permanently. Admins cannot delete the account
// they are currently authenticated as; that check precedes the existence
// lookup.
func (s *UserService) Delete(ctx context.Context, callerID, id int64) error {
	if id == callerID {
		return domain.ErrSelfDeletion
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no user named
// "admin" exists. Idempotent check-then-create, run once before the server
// starts accepting connections.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.repo.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check for default admin: %w", err)
	}

	hash, err := s.hasher.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("default admin account created")
	return nil
}

func (s *UserService) checkUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

func (s *UserService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}
