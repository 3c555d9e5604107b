package repositories

import (
	"context"
	"sync"

	"reactivities/internal/models/domain_models"
)

type AccountRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*domain_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain_models.Account, error)
	Insert(ctx context.Context, account *domain_models.Account) error
}

func NewAccountRepository() AccountRepositoryInterface {
	return &AccountRepository{
		data: make(map[string]*domain_models.Account),
	}
}

// AccountRepository keys accounts by username; emails are scanned, which is
// fine at dev-server scale.
type AccountRepository struct {
	mu   sync.RWMutex
	data map[string]*domain_models.Account
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain_models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.data {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain_models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.data[username]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *account
	r.data[account.Username] = &copied
	return nil
}
