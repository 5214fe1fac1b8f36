package domain

import (
	"github.com/shopspring/decimal" // Fixed-point amounts
)

// TransactionType classifies an entry as money in or money out
type TransactionType string

// Transaction types
const (
	Income  TransactionType = "INCOME"  // Adds to the balance
	Expense TransactionType = "EXPENSE" // Subtracts from the balance
)

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction Model
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID      uint            `gorm:"index;not null" json:"userId"`              // Owner, no cross-store foreign key
	Description string          `gorm:"size:255;not null" json:"description"`      // What the money was for
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"` // Always positive, sign comes from Type
	Type        TransactionType `gorm:"size:10;not null" json:"type"`              // INCOME or EXPENSE
	Date        Date            `gorm:"type:date;index;not null" json:"date"`      // Calendar date of the transaction
}
