package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/notification"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

// Broadcaster pushes a payload to connected realtime clients. The
// websocket hub satisfies it; a nil-safe no-op is used when realtime is
// disabled.
type Broadcaster interface {
	Broadcast(payload []byte)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast([]byte) {}

type Service struct {
	repo        *postgres.NotificationRepo
	gen         ident.Generator
	broadcaster Broadcaster
	logger      *zap.Logger
}

func NewService(repo *postgres.NotificationRepo, gen ident.Generator, broadcaster Broadcaster, logger *zap.Logger) *Service {
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	return &Service{repo: repo, gen: gen, broadcaster: broadcaster, logger: logger}
}

// Create stores the notification and pushes it to realtime subscribers.
func (s *Service) Create(ctx context.Context, actor string, req notification.CreateRequest) (*models.Notification, error) {
	n := &models.Notification{
		ID:         s.gen.NewID(),
		UserID:     req.UserID,
		CustomerID: req.CustomerID,
		Type:       models.NotificationType(req.Type),
		Title:      req.Title,
		Message:    req.Message,
		ActionURL:  req.ActionURL,
		Metadata:   req.Metadata,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  actor,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create notification", zap.Error(err))
		return nil, err
	}

	if payload, err := json.Marshal(n); err == nil {
		s.broadcaster.Broadcast(payload)
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx, nil, false)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	return s.repo.List(ctx, &userID, unreadOnly)
}

func (s *Service) MarkAsRead(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	return s.repo.MarkAsRead(ctx, id, time.Now().UTC())
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
