package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// ErrValidation marks rejected user-management input
var ErrValidation = errors.New("validation failed")

// UserService is the user-management collaborator: the only writer of
// user records. The session/RBAC core reads users, never mutates them.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new user service
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns users, optionally scoped to one country
func (s *UserService) List(ctx context.Context, country *domain.Country) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return users, nil
	}
	return domain.ForCountry(*country, users), nil
}

// Create registers a new user with a validated role and country
func (s *UserService) Create(ctx context.Context, name, email, role, country string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	parsedCountry, err := domain.ParseCountry(country)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user := domain.NewUser(name, email, parsedRole, parsedCountry)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStatus activates or deactivates an account
func (s *UserService) SetStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetRole reassigns a user's job function
func (s *UserService) SetRole(ctx context.Context, id, role string) (*domain.User, error) {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = parsedRole
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
