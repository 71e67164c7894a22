package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
)

type WhatsAppRepo struct {
	db *gorm.DB
}

func NewWhatsAppRepo(db *gorm.DB) *WhatsAppRepo {
	return &WhatsAppRepo{db: db}
}

func (r *WhatsAppRepo) Create(ctx context.Context, message *models.WhatsAppMessage) error {
	return translate(r.db.WithContext(ctx).Create(message).Error)
}

func (r *WhatsAppRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.WhatsAppMessage, error) {
	var message models.WhatsAppMessage
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *WhatsAppRepo) List(ctx context.Context) ([]models.WhatsAppMessage, error) {
	var messages []models.WhatsAppMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, translate(err)
	}
	return messages, nil
}

// FindByProviderID resolves a message by the identifier the messaging
// provider assigned when the message was sent.
func (r *WhatsAppRepo) FindByProviderID(ctx context.Context, providerID string) (*models.WhatsAppMessage, error) {
	var message models.WhatsAppMessage
	if err := r.db.WithContext(ctx).
		First(&message, "whats_app_message_id = ?", providerID).Error; err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *WhatsAppRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.WhatsAppMessage, error) {
	var messages []models.WhatsAppMessage
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, translate(err)
	}
	return messages, nil
}

func (r *WhatsAppRepo) Update(ctx context.Context, message *models.WhatsAppMessage) error {
	return translate(r.db.WithContext(ctx).Save(message).Error)
}
