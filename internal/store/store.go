// Package store holds the persistence interfaces the services depend on and
// their gorm implementations.
package store

import (
	"context"
	"errors"

	"finance_system/internal/domain"

	"gorm.io/gorm"
)

// UserStore persists credentials.
type UserStore interface {
	// FindByUsername returns domain.ErrNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrConflict when the username is taken.
	Create(ctx context.Context, user *domain.User) error
}

// TransactionFilter narrows a listing. Zero values mean "no restriction".
type TransactionFilter struct {
	Type domain.TransactionType
	From *domain.Date // inclusive
	To   *domain.Date // inclusive
}

// TransactionStore persists ledger entries. Every method is scoped to userID;
// rows owned by someone else behave exactly like missing rows.
type TransactionStore interface {
	Create(ctx context.Context, t *domain.Transaction) error
	List(ctx context.Context, userID uint, filter TransactionFilter) ([]domain.Transaction, error)
	Get(ctx context.Context, userID, id uint) (*domain.Transaction, error)
	// Update loads the row, hands it to apply and saves the result in one
	// database transaction. An error from apply aborts without writing.
	Update(ctx context.Context, userID, id uint, apply func(*domain.Transaction) error) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id uint) error
}

// translate maps gorm errors onto domain errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return err
	}
}
