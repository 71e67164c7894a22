// Package postgres holds the gorm-backed repositories. Each repository
// maps gorm.ErrRecordNotFound onto xerrors.ErrNotFound so services and
// handlers never see driver-level errors.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

// AutoMigrate creates or updates the schema for every persisted entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Account{},
		&models.Transaction{},
		&models.Case{},
		&models.CaseNote{},
		&models.Interaction{},
		&models.Campaign{},
		&models.NextBestAction{},
		&models.SentimentAnalysis{},
		&models.WorkflowDefinition{},
		&models.WorkflowInstance{},
		&models.Notification{},
		&models.ReportTemplate{},
		&models.ReportSchedule{},
		&models.GeneratedReport{},
		&models.USSDSession{},
		&models.WhatsAppMessage{},
	)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return xerrors.ErrNotFound
	}
	return err
}
