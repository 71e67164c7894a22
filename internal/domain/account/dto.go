// Package account holds request payloads for accounts and their transactions.
package account

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	AccountType string    `json:"account_type" binding:"required,max=50"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency" binding:"omitempty,max=10"`
}

type CreateTransactionRequest struct {
	TransactionType string     `json:"transaction_type" binding:"required,max=50"`
	Amount          float64    `json:"amount" binding:"required"`
	TransactionDate *time.Time `json:"transaction_date"`
	Description     *string    `json:"description"`
}
