package ledger

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"finance_system/internal/domain"

	"github.com/shopspring/decimal"
)

const maxDescriptionLength = 255

// decimal(10,2) upper bound, exclusive
var maxAmount = decimal.New(1, 8)

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domain.NewValidationError("description", "description is required")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return domain.NewValidationError("description", fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	return nil
}

func validateAmount(amount *decimal.Decimal) error {
	switch {
	case amount == nil:
		return domain.NewValidationError("amount", "amount is required")
	case !amount.IsPositive():
		return domain.NewValidationError("amount", "amount must be positive")
	case !amount.Equal(amount.Round(2)):
		return domain.NewValidationError("amount", "amount must have at most 2 decimal places")
	case amount.GreaterThanOrEqual(maxAmount):
		return domain.NewValidationError("amount", "amount must be less than 100000000")
	}
	return nil
}

func validateType(t domain.TransactionType) error {
	if !t.Valid() {
		return domain.NewValidationError("type", "type must be INCOME or EXPENSE")
	}
	return nil
}

func validateDate(d domain.Date) error {
	if d.IsZero() {
		return domain.NewValidationError("date", "date must be a valid YYYY-MM-DD date")
	}
	return nil
}
