package store

import (
	"context"
	"fmt"

	"finance_system/internal/domain"

	"gorm.io/gorm"
)

// GormTransactionStore is the gorm-backed TransactionStore.
type GormTransactionStore struct {
	db *gorm.DB
}

func NewGormTransactionStore(db *gorm.DB) *GormTransactionStore {
	return &GormTransactionStore{db: db}
}

func (s *GormTransactionStore) Create(ctx context.Context, t *domain.Transaction) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// List orders by date descending; same-day rows fall back to newest id first.
func (s *GormTransactionStore) List(ctx context.Context, userID uint, filter TransactionFilter) ([]domain.Transaction, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}
	transactions := []domain.Transaction{}
	if err := q.Order("date desc").Order("id desc").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *GormTransactionStore) Get(ctx context.Context, userID, id uint) (*domain.Transaction, error) {
	return s.find(s.db.WithContext(ctx), userID, id)
}

func (s *GormTransactionStore) Update(ctx context.Context, userID, id uint, apply func(*domain.Transaction) error) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := s.find(tx, userID, id)
		if err != nil {
			return err
		}
		if err := apply(t); err != nil {
			return err
		}
		if err := tx.Save(t).Error; err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *GormTransactionStore) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Transaction{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (s *GormTransactionStore) find(db *gorm.DB, userID, id uint) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}
