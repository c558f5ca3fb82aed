package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role represents a user's job function, determining which dashboard
// sections are reachable
type Role string

const (
	RoleAdmin           Role = "Admin"
	RoleRegionalManager Role = "Regional Manager"
	RoleOperator        Role = "Operator"
	RoleTechnician      Role = "Technician"
	RoleAnalyst         Role = "Analyst"
)

// Roles returns the closed set of roles
func Roles() []Role {
	return []Role{RoleAdmin, RoleRegionalManager, RoleOperator, RoleTechnician, RoleAnalyst}
}

// ParseRole validates a raw role value against the closed enumeration
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleRegionalManager, RoleOperator, RoleTechnician, RoleAnalyst:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// UserStatus represents account state
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents an operator of the fleet dashboard.
// Email is the login key and is unique across the fleet.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Country      Country    `json:"country"`
	Status       UserStatus `json:"status"`
	LastLogin    time.Time  `json:"last_login"`
}

// NewUser creates a new user record
func NewUser(name, email string, role Role, country Country) *User {
	return &User{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Role:    role,
		Country: country,
		Status:  UserStatusActive,
	}
}

// CountryCode returns the user's home country
func (u *User) CountryCode() Country {
	return u.Country
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
