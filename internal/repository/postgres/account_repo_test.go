package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"wekeza-crm/internal/models"
)

func seedAccount(t *testing.T, repo *AccountRepo, balance float64) *models.Account {
	t.Helper()

	now := time.Now().UTC()
	account := &models.Account{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		AccountNumber: "ACC-" + uuid.New().String()[:8],
		AccountType:   "Savings",
		Balance:       balance,
		Currency:      "KES",
		IsActive:      true,
		CreatedAt:     now,
		CreatedBy:     "system",
		UpdatedAt:     now,
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func TestRecordTransactionPersistsBoth(t *testing.T) {
	repo := NewAccountRepo(newTestDB(t))
	ctx := context.Background()

	account := seedAccount(t, repo, 1000)
	account.Balance = 1500

	txn := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		TransactionRef:  "TXN-1",
		TransactionType: "Deposit",
		Amount:          500,
		BalanceAfter:    1500,
		TransactionDate: time.Now().UTC(),
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       "system",
	}
	if err := repo.RecordTransaction(ctx, account, txn); err != nil {
		t.Fatalf("record transaction: %v", err)
	}

	stored, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find account: %v", err)
	}
	if stored.Balance != 1500 {
		t.Fatalf("balance = %v, want 1500", stored.Balance)
	}
	txns, err := repo.ListTransactions(ctx, account.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(txns))
	}
}

func TestRecordTransactionRollsBackTogether(t *testing.T) {
	repo := NewAccountRepo(newTestDB(t))
	ctx := context.Background()

	account := seedAccount(t, repo, 1000)
	other := seedAccount(t, repo, 0)

	// Colliding with the other account's number makes the balance save
	// fail after the transaction row insert, so the row must roll back.
	account.AccountNumber = other.AccountNumber
	account.Balance = 1700

	txn := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		TransactionRef:  "TXN-2",
		TransactionType: "Deposit",
		Amount:          700,
		BalanceAfter:    1700,
		TransactionDate: time.Now().UTC(),
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       "system",
	}
	if err := repo.RecordTransaction(ctx, account, txn); err == nil {
		t.Fatal("expected account save to fail")
	}

	stored, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find account: %v", err)
	}
	if stored.Balance != 1000 {
		t.Fatalf("balance = %v, want 1000 after rollback", stored.Balance)
	}
	txns, err := repo.ListTransactions(ctx, account.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("transaction count = %d, want 0 after rollback", len(txns))
	}
}
