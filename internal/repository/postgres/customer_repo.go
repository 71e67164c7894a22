package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Create(customer).Error)
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// List returns customers, optionally filtered by segment and KYC status.
func (r *CustomerRepo) List(ctx context.Context, segment, kycStatus string) ([]models.Customer, error) {
	q := r.db.WithContext(ctx).Model(&models.Customer{})
	if segment != "" {
		q = q.Where("segment = ?", segment)
	}
	if kycStatus != "" {
		q = q.Where("kyc_status = ?", kycStatus)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, translate(err)
	}
	return customers, nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Save(customer).Error)
}

func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
