package whatsapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/whatsapp"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.WhatsAppRepo
	customers *postgres.CustomerRepo
	transport Transport
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.WhatsAppRepo, customers *postgres.CustomerRepo, transport Transport, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, transport: transport, gen: gen, logger: logger}
}

// Send hands an outbound message to the transport and records the result.
func (s *Service) Send(ctx context.Context, actor string, req whatsapp.SendRequest) (*models.WhatsAppMessage, error) {
	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	messageType := models.WhatsAppMessageType(req.MessageType)
	if messageType == "" {
		messageType = models.WhatsAppText
	}

	now := time.Now().UTC()
	message := &models.WhatsAppMessage{
		ID:          s.gen.NewID(),
		CustomerID:  req.CustomerID,
		PhoneNumber: req.PhoneNumber,
		MessageType: messageType,
		Status:      models.MessagePending,
		Content:     req.Content,
		MediaURL:    req.MediaURL,
		TemplateID:  req.TemplateID,
		CreatedAt:   now,
		CreatedBy:   actor,
		UpdatedAt:   now,
	}

	outcome := s.transport.Send(message)
	if outcome.Err != nil {
		errMsg := outcome.Err.Error()
		message.Status = models.MessageFailed
		message.ErrorMessage = &errMsg
	} else {
		message.Status = models.MessageSent
		message.SentAt = &now
		message.WhatsAppMessageID = &outcome.ProviderMessageID
	}

	if err := s.repo.Create(ctx, message); err != nil {
		s.logger.Error("store whatsapp message", zap.Error(err))
		return nil, err
	}
	s.logger.Info("whatsapp message sent",
		zap.String("message_id", message.ID.String()),
		zap.String("status", string(message.Status)))
	return message, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.WhatsAppMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.WhatsAppMessage, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.WhatsAppMessage, error) {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

// HandleWebhook applies a provider delivery status callback. Callbacks
// for unknown provider IDs are acknowledged without effect.
func (s *Service) HandleWebhook(ctx context.Context, req whatsapp.WebhookRequest) error {
	message, err := s.repo.FindByProviderID(ctx, req.WhatsAppMessageID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			s.logger.Warn("webhook for unknown message",
				zap.String("provider_id", req.WhatsAppMessageID))
			return nil
		}
		return err
	}

	now := time.Now().UTC()
	switch models.WhatsAppMessageStatus(req.Status) {
	case models.MessageSent:
		message.Status = models.MessageSent
		if message.SentAt == nil {
			message.SentAt = &now
		}
	case models.MessageDelivered:
		message.Status = models.MessageDelivered
		message.DeliveredAt = &now
	case models.MessageRead:
		message.Status = models.MessageRead
		message.ReadAt = &now
	case models.MessageFailed:
		message.Status = models.MessageFailed
		message.ErrorMessage = req.ErrorMessage
	}
	message.UpdatedAt = now

	return s.repo.Update(ctx, message)
}
