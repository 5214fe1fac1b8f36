package store

import (
	"context"
	"errors"
	"testing"

	"finance_system/internal/domain"
	"finance_system/internal/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seed(t *testing.T, s *GormTransactionStore, userID uint, desc, amount string, typ domain.TransactionType, date string) *domain.Transaction {
	t.Helper()
	tx := &domain.Transaction{
		UserID:      userID,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Type:        typ,
		Date:        mustDate(t, date),
	}
	require.NoError(t, s.Create(context.Background(), tx))
	return tx
}

func TestTransactionStoreCreateAndGet(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	created := seed(t, s, 1, "Salary", "1000.50", domain.Income, "2024-01-15")

	got, err := s.Get(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Salary", got.Description)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1000.50")))
	assert.Equal(t, domain.Income, got.Type)
	assert.Equal(t, "2024-01-15", got.Date.String())
}

func TestTransactionStoreOwnership(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	ctx := context.Background()
	theirs := seed(t, s, 1, "Salary", "10", domain.Income, "2024-01-15")

	_, err := s.Get(ctx, 2, theirs.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Update(ctx, 2, theirs.ID, func(*domain.Transaction) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, 2, theirs.ID), domain.ErrNotFound)

	list, err := s.List(ctx, 2, TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.Get(ctx, 1, theirs.ID)
	assert.NoError(t, err)
}

func TestTransactionStoreListOrder(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	a := seed(t, s, 1, "a", "1", domain.Income, "2024-01-01")
	b := seed(t, s, 1, "b", "1", domain.Expense, "2024-03-01")
	c := seed(t, s, 1, "c", "1", domain.Income, "2024-02-01")
	d := seed(t, s, 1, "d", "1", domain.Expense, "2024-03-01")

	list, err := s.List(context.Background(), 1, TransactionFilter{})
	require.NoError(t, err)

	var ids []uint
	for _, tx := range list {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []uint{d.ID, b.ID, c.ID, a.ID}, ids)
}

func TestTransactionStoreListFilter(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	seed(t, s, 1, "jan", "1", domain.Income, "2024-01-10")
	feb := seed(t, s, 1, "feb", "1", domain.Expense, "2024-02-10")
	seed(t, s, 1, "mar", "1", domain.Income, "2024-03-10")

	from, to := mustDate(t, "2024-02-01"), mustDate(t, "2024-03-10")

	incomes, err := s.List(context.Background(), 1, TransactionFilter{Type: domain.Income})
	require.NoError(t, err)
	assert.Len(t, incomes, 2)

	period, err := s.List(context.Background(), 1, TransactionFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, period, 2)

	both, err := s.List(context.Background(), 1, TransactionFilter{Type: domain.Expense, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, feb.ID, both[0].ID)
}

func TestTransactionStoreUpdate(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	ctx := context.Background()
	tx := seed(t, s, 1, "Rent", "400", domain.Expense, "2024-01-01")

	updated, err := s.Update(ctx, 1, tx.ID, func(t *domain.Transaction) error {
		t.Description = "Rent (Jan)"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Rent (Jan)", updated.Description)

	got, err := s.Get(ctx, 1, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent (Jan)", got.Description)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(400)))
}

func TestTransactionStoreUpdateAbortsOnApplyError(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	ctx := context.Background()
	tx := seed(t, s, 1, "Rent", "400", domain.Expense, "2024-01-01")
	boom := errors.New("boom")

	_, err := s.Update(ctx, 1, tx.ID, func(t *domain.Transaction) error {
		t.Description = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, 1, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent", got.Description)
}

func TestTransactionStoreDelete(t *testing.T) {
	s := NewGormTransactionStore(testdb.New(t))
	ctx := context.Background()
	tx := seed(t, s, 1, "Rent", "400", domain.Expense, "2024-01-01")

	require.NoError(t, s.Delete(ctx, 1, tx.ID))

	_, err := s.Get(ctx, 1, tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 1, tx.ID), domain.ErrNotFound)
}
