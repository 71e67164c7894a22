package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type CampaignRepo struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) *CampaignRepo {
	return &CampaignRepo{db: db}
}

func (r *CampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	return translate(r.db.WithContext(ctx).Create(campaign).Error)
}

func (r *CampaignRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

func (r *CampaignRepo) List(ctx context.Context, activeOnly bool) ([]models.Campaign, error) {
	q := r.db.WithContext(ctx).Model(&models.Campaign{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var campaigns []models.Campaign
	if err := q.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, translate(err)
	}
	return campaigns, nil
}

func (r *CampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	return translate(r.db.WithContext(ctx).Save(campaign).Error)
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Enroll links a customer to a campaign through the join table.
func (r *CampaignRepo) Enroll(ctx context.Context, campaign *models.Campaign, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Model(campaign).
		Association("Customers").Append(customer))
}

func (r *CampaignRepo) ListCustomers(ctx context.Context, campaignID uuid.UUID) ([]models.Customer, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).
		Preload("Customers").
		First(&campaign, "id = ?", campaignID).Error; err != nil {
		return nil, translate(err)
	}
	return campaign.Customers, nil
}
