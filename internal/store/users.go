package store

import (
	"context"
	"fmt"

	"finance_system/internal/domain"

	"gorm.io/gorm"
)

// GormUserStore is the gorm-backed UserStore.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err = translate(err); err == domain.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) Create(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if count > 0 {
			return domain.ErrConflict
		}
		if err := tx.Create(user).Error; err != nil {
			if err = translate(err); err == domain.ErrConflict {
				return err
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}
