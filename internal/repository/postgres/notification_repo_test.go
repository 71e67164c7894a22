package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	if err := AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestNotificationMarkAsRead(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	n := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationSystem,
		Title:     "Maintenance window",
		Message:   "Scheduled downtime on Saturday",
		CreatedAt: time.Now().UTC(),
		CreatedBy: "system",
	}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}

	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	updated, err := repo.MarkAsRead(ctx, n.ID, at)
	if err != nil {
		t.Fatalf("mark as read: %v", err)
	}

	if !updated.IsRead {
		t.Fatal("IsRead not set")
	}
	if updated.ReadAt == nil || !updated.ReadAt.Equal(at) {
		t.Fatalf("ReadAt = %v, want %s", updated.ReadAt, at)
	}

	stored, err := repo.FindByID(ctx, n.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.IsRead {
		t.Fatal("read flag not persisted")
	}
}

func TestNotificationDeleteMissing(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))

	err := repo.Delete(context.Background(), uuid.New())
	if !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNotificationUnreadFilter(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	read := time.Now().UTC()

	for _, n := range []*models.Notification{
		{ID: uuid.New(), UserID: &userID, Type: models.NotificationCase, Title: "a", Message: "m", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), UserID: &userID, Type: models.NotificationCase, Title: "b", Message: "m", IsRead: true, ReadAt: &read, CreatedAt: time.Now().UTC()},
	} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	unread, err := repo.List(ctx, &userID, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("unread = %d, want 1", len(unread))
	}
	if unread[0].Title != "a" {
		t.Fatalf("unexpected notification %q", unread[0].Title)
	}
}
