package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
)

type USSDRepo struct {
	db *gorm.DB
}

func NewUSSDRepo(db *gorm.DB) *USSDRepo {
	return &USSDRepo{db: db}
}

func (r *USSDRepo) Create(ctx context.Context, session *models.USSDSession) error {
	return translate(r.db.WithContext(ctx).Create(session).Error)
}

func (r *USSDRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.USSDSession, error) {
	var session models.USSDSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *USSDRepo) List(ctx context.Context) ([]models.USSDSession, error) {
	var sessions []models.USSDSession
	if err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

// FindBySessionID looks a session up by the provider-assigned session key,
// not by the row identifier.
func (r *USSDRepo) FindBySessionID(ctx context.Context, sessionID string) (*models.USSDSession, error) {
	var session models.USSDSession
	if err := r.db.WithContext(ctx).
		First(&session, "session_id = ?", sessionID).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *USSDRepo) Update(ctx context.Context, session *models.USSDSession) error {
	return translate(r.db.WithContext(ctx).Save(session).Error)
}

func (r *USSDRepo) ListByPhone(ctx context.Context, phoneNumber string) ([]models.USSDSession, error) {
	var sessions []models.USSDSession
	if err := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("started_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}
