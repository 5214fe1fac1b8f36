package domain

import (
	"github.com/shopspring/decimal" // Fixed-point amounts
)

// BalanceSummary is the derived view over all of a user's transactions
type BalanceSummary struct {
	UserID           uint            // Owner of the summarised transactions
	Balance          decimal.Decimal // TotalIncome - TotalExpense
	TotalIncome      decimal.Decimal // Sum of INCOME amounts
	TotalExpense     decimal.Decimal // Sum of EXPENSE amounts
	TransactionCount int64           // Number of transactions summed
}

// Summarize folds transactions into a BalanceSummary for userID
func Summarize(userID uint, transactions []Transaction) BalanceSummary {
	summary := BalanceSummary{
		UserID:       userID,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range transactions {
		switch t.Type {
		case Income:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case Expense:
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}
		summary.TransactionCount++
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
