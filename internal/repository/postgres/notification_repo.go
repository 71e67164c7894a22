package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	return translate(r.db.WithContext(ctx).Create(notification).Error)
}

func (r *NotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

func (r *NotificationRepo) List(ctx context.Context, userID *uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	q := r.db.WithContext(ctx).Model(&models.Notification{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, translate(err)
	}
	return notifications, nil
}

// MarkAsRead flips the read flag and stamps the read time.
func (r *NotificationRepo) MarkAsRead(ctx context.Context, id uuid.UUID, at time.Time) (*models.Notification, error) {
	notification, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notification.IsRead = true
	notification.ReadAt = &at
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return nil, translate(err)
	}
	return notification, nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
