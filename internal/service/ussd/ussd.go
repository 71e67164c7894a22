package ussd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/ussd"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

const mainMenu = "Welcome to Wekeza Bank\n" +
	"1. Check Balance\n" +
	"2. Mini Statement\n" +
	"3. Transfer Money\n" +
	"4. Pay Bills\n" +
	"5. Customer Service"

const closing = "\n\nThank you for using Wekeza Bank."

type Service struct {
	repo   *postgres.USSDRepo
	gen    ident.Generator
	logger *zap.Logger
}

func NewService(repo *postgres.USSDRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, gen: gen, logger: logger}
}

// Handle processes one gateway callback. A blank input shows the root
// menu and keeps the session open; any selection terminates it.
func (s *Service) Handle(ctx context.Context, req ussd.HandleRequest) (*ussd.HandleResponse, error) {
	now := time.Now().UTC()

	session, err := s.repo.FindBySessionID(ctx, req.SessionID)
	if err != nil {
		if !xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}
		session = &models.USSDSession{
			ID:          s.gen.NewID(),
			SessionID:   req.SessionID,
			PhoneNumber: req.PhoneNumber,
			Status:      models.USSDActive,
			CurrentMenu: "main",
			MenuHistory: "main",
			StartedAt:   now,
			CreatedAt:   now,
			CreatedBy:   "system",
			UpdatedAt:   now,
		}
		if err := s.repo.Create(ctx, session); err != nil {
			s.logger.Error("create ussd session", zap.Error(err))
			return nil, err
		}
	}

	message, endSession := processMenu(req.Text)

	input := req.Text
	session.UserInput = &input
	session.MenuHistory = session.MenuHistory + "," + session.CurrentMenu
	session.UpdatedAt = now

	if endSession {
		session.Status = models.USSDCompleted
		session.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, session); err != nil {
		s.logger.Error("update ussd session", zap.Error(err))
		return nil, err
	}

	return &ussd.HandleResponse{
		SessionID:  session.SessionID,
		Message:    message,
		EndSession: endSession,
	}, nil
}

func processMenu(input string) (message string, endSession bool) {
	if input == "" {
		return mainMenu, false
	}

	switch input {
	case "1":
		return "Your account balance is KES 15,450.00" + closing, true
	case "2":
		return "Last 3 transactions:\n" +
			"1. ATM Withdrawal: -500.00\n" +
			"2. Salary Deposit: +25,000.00\n" +
			"3. Utility Bill: -1,200.00", true
	case "5":
		return "Customer Service: 0800-WEKEZA\n" +
			"Email: support@wekeza.com\n" +
			"Available 24/7", true
	default:
		return "Invalid selection. Please try again.", true
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.USSDSession, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.USSDSession, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPhone(ctx context.Context, phoneNumber string) ([]models.USSDSession, error) {
	return s.repo.ListByPhone(ctx, phoneNumber)
}
