package api

import (
	"finance_system/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Fixed-point amounts
)

// Money renders a decimal as a JSON number with two fractional digits
type Money decimal.Decimal

// MarshalJSON writes e.g. 1000.00
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// TransactionResponse is the wire form of a transaction
type TransactionResponse struct {
	ID          uint                   `json:"id"`          // Transaction ID
	UserID      uint                   `json:"userId"`      // Owner
	Description string                 `json:"description"` // Description
	Amount      Money                  `json:"amount"`      // Positive amount
	Type        domain.TransactionType `json:"type"`        // INCOME or EXPENSE
	Date        domain.Date            `json:"date"`        // YYYY-MM-DD
}

// BalanceResponse is the wire form of a balance summary
type BalanceResponse struct {
	Balance          Money `json:"balance"`          // Income minus expense
	UserID           uint  `json:"userId"`           // Owner
	TotalIncome      Money `json:"totalIncome"`      // Sum of INCOME
	TotalExpense     Money `json:"totalExpense"`     // Sum of EXPENSE
	TransactionCount int64 `json:"transactionCount"` // Number of transactions
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Description: t.Description,
		Amount:      Money(t.Amount),
		Type:        t.Type,
		Date:        t.Date,
	}
}

func newBalanceResponse(s *domain.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		Balance:          Money(s.Balance),
		UserID:           s.UserID,
		TotalIncome:      Money(s.TotalIncome),
		TotalExpense:     Money(s.TotalExpense),
		TransactionCount: s.TransactionCount,
	}
}
