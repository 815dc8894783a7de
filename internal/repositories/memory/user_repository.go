package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
)

// UserRepository is an in-memory portsrepo.UserRepositoryFacade.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]domain.User
	byEmail map[string]string
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok || u.DeletedAt != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
	}
	return &u, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	u := r.users[id]
	if u.DeletedAt != nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &u, nil
}

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, taken := r.byEmail[key]; taken {
		return apperrors.NewConflictError(fmt.Sprintf("user with email '%s' already exists", user.Email))
	}
	r.users[user.UserID] = user
	r.byEmail[key] = user.UserID
	return nil
}
