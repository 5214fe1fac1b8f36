package events

import "time"

// Ledger event types
const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
)

// Event is the envelope written to the stream
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// TransactionDeletedEvent identifies a removed transaction
type TransactionDeletedEvent struct {
	TransactionID uint `json:"transactionId"`
	UserID        uint `json:"userId"`
}
