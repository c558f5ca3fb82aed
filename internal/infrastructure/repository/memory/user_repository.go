package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// UserRepository implements domain.UserRepository over an in-memory map
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

// NewUserRepository creates a user repository seeded with the given records
func NewUserRepository(seed []*domain.User) *UserRepository {
	r := &UserRepository{users: make(map[string]*domain.User, len(seed))}
	for _, u := range seed {
		copied := *u
		r.users[u.ID] = &copied
		r.order = append(r.order, u.ID)
	}
	return r
}

// Create inserts a new user; duplicate ids or emails are rejected
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("email %s already registered", user.Email)
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	r.order = append(r.order, user.ID)
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	copied := *u
	return &copied, nil
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// List returns all users in insertion order
func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Update replaces an existing user record
func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %s not found", id)
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
