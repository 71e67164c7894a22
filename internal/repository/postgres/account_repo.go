package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) error {
	return translate(r.db.WithContext(ctx).Create(account).Error)
}

func (r *AccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *AccountRepo) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

func (r *AccountRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

func (r *AccountRepo) Update(ctx context.Context, account *models.Account) error {
	return translate(r.db.WithContext(ctx).Save(account).Error)
}

func (r *AccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Account{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *AccountRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

// RecordTransaction writes the transaction row and the updated account
// balance atomically; neither persists if the other fails.
func (r *AccountRepo) RecordTransaction(ctx context.Context, account *models.Account, txn *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		return tx.Save(account).Error
	}))
}

func (r *AccountRepo) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("transaction_date DESC").
		Find(&txs).Error; err != nil {
		return nil, translate(err)
	}
	return txs, nil
}
