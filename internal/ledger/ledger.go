// Package ledger implements the per-user transaction book and its balance.
package ledger

import (
	"context"
	"time"

	"finance_system/internal/domain"
	"finance_system/internal/events"
	"finance_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// NewTransaction is the input to Create. Date defaults to today when nil.
type NewTransaction struct {
	Description string
	Amount      *decimal.Decimal
	Type        domain.TransactionType
	Date        *domain.Date
}

// Patch carries the fields an update overwrites; nil fields are left alone.
type Patch struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *domain.TransactionType
	Date        *domain.Date
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Description == nil && p.Amount == nil && p.Type == nil && p.Date == nil
}

// Validate applies the create-time rules to every supplied field
func (p Patch) Validate() error {
	if p.Description != nil {
		if err := validateDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if err := validateAmount(p.Amount); err != nil {
			return err
		}
	}
	if p.Type != nil {
		if err := validateType(*p.Type); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := validateDate(*p.Date); err != nil {
			return err
		}
	}
	return nil
}

func (p Patch) apply(t *domain.Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
}

// Filter narrows List
type Filter = store.TransactionFilter

// Ledger owns transaction records. Every call is scoped to one user id.
type Ledger struct {
	store  store.TransactionStore
	events events.Publisher
	now    func() time.Time
}

func New(transactions store.TransactionStore, publisher events.Publisher) *Ledger {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Ledger{store: transactions, events: publisher, now: time.Now}
}

func (l *Ledger) Create(ctx context.Context, userID uint, in NewTransaction) (*domain.Transaction, error) {
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validateType(in.Type); err != nil {
		return nil, err
	}
	date := domain.NewDate(l.now())
	if in.Date != nil {
		if err := validateDate(*in.Date); err != nil {
			return nil, err
		}
		date = *in.Date
	}

	t := &domain.Transaction{
		UserID:      userID,
		Description: in.Description,
		Amount:      *in.Amount,
		Type:        in.Type,
		Date:        date,
	}
	if err := l.store.Create(ctx, t); err != nil {
		return nil, err
	}
	l.publish(ctx, events.TransactionCreated, t)
	return t, nil
}

func (l *Ledger) List(ctx context.Context, userID uint, filter Filter) ([]domain.Transaction, error) {
	if filter.Type != "" {
		if err := validateType(filter.Type); err != nil {
			return nil, err
		}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.NewValidationError("from", "from must not be after to")
	}
	return l.store.List(ctx, userID, filter)
}

func (l *Ledger) Get(ctx context.Context, userID, id uint) (*domain.Transaction, error) {
	return l.store.Get(ctx, userID, id)
}

func (l *Ledger) Update(ctx context.Context, userID, id uint, patch Patch) (*domain.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return l.store.Get(ctx, userID, id)
	}
	t, err := l.store.Update(ctx, userID, id, func(t *domain.Transaction) error {
		patch.apply(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.publish(ctx, events.TransactionUpdated, t)
	return t, nil
}

func (l *Ledger) Delete(ctx context.Context, userID, id uint) error {
	if err := l.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	l.publish(ctx, events.TransactionDeleted, events.TransactionDeletedEvent{TransactionID: id, UserID: userID})
	return nil
}

// Balance recomputes the summary from every transaction the user owns.
func (l *Ledger) Balance(ctx context.Context, userID uint) (*domain.BalanceSummary, error) {
	transactions, err := l.store.List(ctx, userID, Filter{})
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(userID, transactions)
	return &summary, nil
}

func (l *Ledger) publish(ctx context.Context, eventType string, data any) {
	if err := l.events.Publish(ctx, eventType, data); err != nil {
		logrus.WithFields(logrus.Fields{
			"event": eventType,
			"error": err.Error(),
		}).Warn("Failed to publish ledger event")
	}
}
