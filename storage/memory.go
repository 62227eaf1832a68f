// Package storage provides UserRepository adapters: an in-memory store
// for tests and local development, and a JSON-file store for durable
// persistence across restarts.
package storage

import (
	"context"
	"sync"

	"github.com/km-arc/go-cleanarch/domain"
)

// MemoryUserRepository keeps users in a map. It is safe for concurrent
// use and enforces email uniqueness like the durable adapters.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byEmail map[string]string       // email -> id
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryUserRepository) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email.String()]; taken {
		return &domain.UserAlreadyExistsError{Email: user.Email.String()}
	}
	stored := *user
	r.users[user.ID] = &stored
	r.byEmail[user.Email.String()] = user.ID
	return nil
}

func (r *MemoryUserRepository) ByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, &domain.UserNotFoundError{Identifier: id, IdentifierType: "id"}
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) ByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email.String()]
	r.mu.RUnlock()
	if !ok {
		return nil, &domain.UserNotFoundError{Identifier: email.String(), IdentifierType: "email"}
	}
	return r.ByID(ctx, id)
}

func (r *MemoryUserRepository) All(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return &domain.UserNotFoundError{Identifier: user.ID, IdentifierType: "id"}
	}
	if existing.Email.String() != user.Email.String() {
		delete(r.byEmail, existing.Email.String())
		r.byEmail[user.Email.String()] = user.ID
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return false, nil
	}
	delete(r.users, id)
	delete(r.byEmail, user.Email.String())
	return true, nil
}

func (r *MemoryUserRepository) ExistsWithEmail(_ context.Context, email domain.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email.String()]
	return ok, nil
}
