package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"finance_system/internal/domain"     // Domain models
	"finance_system/internal/ledger"     // Ledger inputs
	"finance_system/internal/middleware" // Typed claims

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// Ledger is the transaction service behind the /transactions routes
type Ledger interface {
	Create(ctx context.Context, userID uint, in ledger.NewTransaction) (*domain.Transaction, error)
	List(ctx context.Context, userID uint, filter ledger.Filter) ([]domain.Transaction, error)
	Get(ctx context.Context, userID, id uint) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id uint, patch ledger.Patch) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id uint) error
	Balance(ctx context.Context, userID uint) (*domain.BalanceSummary, error)
}

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	Description *string                 `json:"description" validate:"required"`
	Amount      *decimal.Decimal        `json:"amount" validate:"required"`
	Type        *domain.TransactionType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Date        *domain.Date            `json:"date"` // Defaults to today
}

// UpdateTransactionRequest is the body of PUT /transactions/{id}; absent fields are kept
type UpdateTransactionRequest struct {
	Description *string                 `json:"description"`
	Amount      *decimal.Decimal        `json:"amount"`
	Type        *domain.TransactionType `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	Date        *domain.Date            `json:"date"`
}

// currentUserID extracts the caller's id from the token claims
func currentUserID(c *gin.Context) (uint, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok || claims.UserID == 0 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return 0, false
	}
	return uint(claims.UserID), true
}

// transactionID parses the {id} path parameter; anything non-numeric is a 404
func transactionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Transaction not found"})
		return 0, false
	}
	return uint(id), true
}

// CreateTransactionHandler records a new transaction for the caller
func CreateTransactionHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req CreateTransactionRequest
		if !bindJSON(c, &req) {
			return
		}
		t, err := l.Create(c.Request.Context(), userID, ledger.NewTransaction{
			Description: *req.Description,
			Amount:      req.Amount,
			Type:        *req.Type,
			Date:        req.Date,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": t.ID,
			"type":           t.Type,
			"amount":         t.Amount.StringFixed(2),
		}).Info("Transaction created")
		c.JSON(http.StatusCreated, newTransactionResponse(t))
	}
}

// ListTransactionsHandler returns the caller's transactions, newest date first
func ListTransactionsHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		filter := ledger.Filter{Type: domain.TransactionType(c.Query("type"))}
		bounds := []struct {
			param string
			dst   **domain.Date
		}{{"from", &filter.From}, {"to", &filter.To}}
		for _, b := range bounds {
			raw := c.Query(b.param)
			if raw == "" {
				continue
			}
			d, err := domain.ParseDate(raw)
			if err != nil {
				respondError(c, domain.NewValidationError(b.param, err.Error()))
				return
			}
			*b.dst = &d
		}
		transactions, err := l.List(c.Request.Context(), userID, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		resp := make([]TransactionResponse, len(transactions))
		for i := range transactions {
			resp[i] = newTransactionResponse(&transactions[i])
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetTransactionHandler returns one of the caller's transactions
func GetTransactionHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := transactionID(c)
		if !ok {
			return
		}
		t, err := l.Get(c.Request.Context(), userID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newTransactionResponse(t))
	}
}

// UpdateTransactionHandler overwrites the supplied fields of a transaction
func UpdateTransactionHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := transactionID(c)
		if !ok {
			return
		}
		var req UpdateTransactionRequest
		if !bindJSON(c, &req) {
			return
		}
		t, err := l.Update(c.Request.Context(), userID, id, ledger.Patch{
			Description: req.Description,
			Amount:      req.Amount,
			Type:        req.Type,
			Date:        req.Date,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": t.ID,
		}).Info("Transaction updated")
		c.JSON(http.StatusOK, newTransactionResponse(t))
	}
}

// DeleteTransactionHandler removes one of the caller's transactions
func DeleteTransactionHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := transactionID(c)
		if !ok {
			return
		}
		if err := l.Delete(c.Request.Context(), userID, id); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,
			"transaction_id": id,
		}).Info("Transaction deleted")
		c.Status(http.StatusNoContent)
	}
}

// BalanceHandler sums the caller's transactions
func BalanceHandler(l Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		summary, err := l.Balance(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newBalanceResponse(summary))
	}
}
