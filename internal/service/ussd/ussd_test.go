package ussd

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wekeza-crm/internal/domain/ussd"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

func newTestService(t *testing.T) (*Service, *postgres.USSDRepo) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled second connection would see a different in-memory database.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.USSDSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := postgres.NewUSSDRepo(gdb)
	gen := ident.NewDeterministic(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1)
	return NewService(repo, gen, zap.NewNop()), repo
}

func TestHandleBlankInputShowsMenu(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Handle(ctx, ussd.HandleRequest{
		SessionID:   "sess-1",
		PhoneNumber: "+254700000001",
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if resp.EndSession {
		t.Fatal("blank input should keep the session open")
	}
	if !strings.HasPrefix(resp.Message, "Welcome to Wekeza Bank") {
		t.Fatalf("unexpected menu %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "5. Customer Service") {
		t.Fatalf("menu missing options: %q", resp.Message)
	}

	session, err := repo.FindBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if session.Status != models.USSDActive {
		t.Fatalf("status = %s, want Active", session.Status)
	}
	if session.CurrentMenu != "main" || session.MenuHistory != "main,main" {
		t.Fatalf("menu state = %q / %q", session.CurrentMenu, session.MenuHistory)
	}
	if session.UserInput == nil || *session.UserInput != "" {
		t.Fatalf("user input = %v, want recorded blank input", session.UserInput)
	}
}

func TestHandleBalanceSelection(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Handle(ctx, ussd.HandleRequest{SessionID: "sess-2", PhoneNumber: "+254700000002"}); err != nil {
		t.Fatalf("open session: %v", err)
	}

	resp, err := svc.Handle(ctx, ussd.HandleRequest{
		SessionID:   "sess-2",
		PhoneNumber: "+254700000002",
		Text:        "1",
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if !resp.EndSession {
		t.Fatal("selection should end the session")
	}
	if !strings.Contains(resp.Message, "KES 15,450.00") {
		t.Fatalf("unexpected balance message %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "Thank you for using Wekeza Bank") {
		t.Fatalf("missing closing line in %q", resp.Message)
	}

	session, err := repo.FindBySessionID(ctx, "sess-2")
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if session.Status != models.USSDCompleted {
		t.Fatalf("status = %s, want Completed", session.Status)
	}
	if session.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped")
	}
	if session.UserInput == nil || *session.UserInput != "1" {
		t.Fatalf("user input = %v", session.UserInput)
	}
	if session.MenuHistory != "main,main,main" {
		t.Fatalf("menu history = %q", session.MenuHistory)
	}
}

func TestHandleUnimplementedSelections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, input := range []string{"3", "4", "9"} {
		sessionID := "sess-inv-" + input
		if _, err := svc.Handle(ctx, ussd.HandleRequest{SessionID: sessionID, PhoneNumber: "+254700000003"}); err != nil {
			t.Fatalf("open session: %v", err)
		}

		resp, err := svc.Handle(ctx, ussd.HandleRequest{
			SessionID:   sessionID,
			PhoneNumber: "+254700000003",
			Text:        input,
		})
		if err != nil {
			t.Fatalf("handle %q: %v", input, err)
		}
		if resp.Message != "Invalid selection. Please try again." {
			t.Fatalf("input %q: message = %q", input, resp.Message)
		}
		if !resp.EndSession {
			t.Fatalf("input %q should end the session", input)
		}
	}
}

func TestHandleCustomerServiceSelection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Handle(ctx, ussd.HandleRequest{SessionID: "sess-5", PhoneNumber: "+254700000005"}); err != nil {
		t.Fatalf("open session: %v", err)
	}

	resp, err := svc.Handle(ctx, ussd.HandleRequest{
		SessionID:   "sess-5",
		PhoneNumber: "+254700000005",
		Text:        "5",
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resp.Message, "Customer Service: 0800-WEKEZA") {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "support@wekeza.com") {
		t.Fatalf("missing contact email in %q", resp.Message)
	}
	if !resp.EndSession {
		t.Fatal("selection should end the session")
	}
}
