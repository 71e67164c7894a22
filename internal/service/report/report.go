package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/report"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo     *postgres.ReportRepo
	renderer Renderer
	gen      ident.Generator
	logger   *zap.Logger
}

func NewService(repo *postgres.ReportRepo, renderer Renderer, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, renderer: renderer, gen: gen, logger: logger}
}

func (s *Service) CreateTemplate(ctx context.Context, actor string, req report.CreateTemplateRequest) (*models.ReportTemplate, error) {
	format := models.ReportFormat(req.DefaultFormat)
	if format == "" {
		format = models.FormatPDF
	}

	now := time.Now().UTC()
	template := &models.ReportTemplate{
		ID:               s.gen.NewID(),
		Name:             req.Name,
		Description:      req.Description,
		ReportType:       req.ReportType,
		QueryDefinition:  req.QueryDefinition,
		ParametersSchema: req.ParametersSchema,
		DefaultFormat:    format,
		IsActive:         true,
		LayoutTemplate:   req.LayoutTemplate,
		CreatedAt:        now,
		CreatedBy:        actor,
		UpdatedAt:        now,
	}

	if err := s.repo.CreateTemplate(ctx, template); err != nil {
		s.logger.Error("create report template", zap.Error(err))
		return nil, err
	}
	return template, nil
}

func (s *Service) GetTemplate(ctx context.Context, id uuid.UUID) (*models.ReportTemplate, error) {
	return s.repo.FindTemplate(ctx, id)
}

func (s *Service) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ReportTemplate, error) {
	return s.repo.ListTemplates(ctx, activeOnly)
}

func (s *Service) UpdateTemplate(ctx context.Context, actor string, id uuid.UUID, req report.UpdateTemplateRequest) (*models.ReportTemplate, error) {
	template, err := s.repo.FindTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.ReportType != nil {
		template.ReportType = *req.ReportType
	}
	if req.QueryDefinition != nil {
		template.QueryDefinition = *req.QueryDefinition
	}
	if req.ParametersSchema != nil {
		template.ParametersSchema = *req.ParametersSchema
	}
	if req.DefaultFormat != nil {
		template.DefaultFormat = models.ReportFormat(*req.DefaultFormat)
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if req.LayoutTemplate != nil {
		template.LayoutTemplate = req.LayoutTemplate
	}

	template.UpdatedAt = time.Now().UTC()
	template.UpdatedBy = actor

	if err := s.repo.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, id)
}

func (s *Service) CreateSchedule(ctx context.Context, actor string, req report.CreateScheduleRequest) (*models.ReportSchedule, error) {
	template, err := s.repo.FindTemplate(ctx, req.ReportTemplateID)
	if err != nil {
		return nil, err
	}

	format := models.ReportFormat(req.OutputFormat)
	if format == "" {
		format = template.DefaultFormat
	}

	now := time.Now().UTC()
	frequency := models.ReportScheduleFrequency(req.Frequency)
	nextRun := CalculateNextRunDate(frequency, now)

	schedule := &models.ReportSchedule{
		ID:                 s.gen.NewID(),
		ReportTemplateID:   template.ID,
		Name:               req.Name,
		Frequency:          frequency,
		ScheduleExpression: req.ScheduleExpression,
		NextRunDate:        &nextRun,
		IsActive:           true,
		Recipients:         req.Recipients,
		OutputFormat:       format,
		Parameters:         req.Parameters,
		CreatedAt:          now,
		CreatedBy:          actor,
	}

	if err := s.repo.CreateSchedule(ctx, schedule); err != nil {
		s.logger.Error("create report schedule", zap.Error(err))
		return nil, err
	}
	return schedule, nil
}

func (s *Service) ListSchedules(ctx context.Context) ([]models.ReportSchedule, error) {
	return s.repo.ListSchedules(ctx, nil)
}

// RunSchedule generates the scheduled report immediately and advances the
// schedule's run dates.
func (s *Service) RunSchedule(ctx context.Context, actor string, id uuid.UUID) (*models.GeneratedReport, error) {
	schedule, err := s.repo.FindSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	generated, err := s.Generate(ctx, actor, report.GenerateRequest{
		ReportTemplateID: schedule.ReportTemplateID,
		Format:           string(schedule.OutputFormat),
		Parameters:       schedule.Parameters,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	nextRun := CalculateNextRunDate(schedule.Frequency, now)
	schedule.LastRunDate = &now
	schedule.NextRunDate = &nextRun

	if err := s.repo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	s.logger.Info("schedule run",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("report_id", generated.ID.String()))
	return generated, nil
}

// Generate renders a report from a template and records the run.
func (s *Service) Generate(ctx context.Context, actor string, req report.GenerateRequest) (*models.GeneratedReport, error) {
	template, err := s.repo.FindTemplate(ctx, req.ReportTemplateID)
	if err != nil {
		return nil, err
	}

	format := models.ReportFormat(req.Format)
	if format == "" {
		format = template.DefaultFormat
	}

	now := time.Now().UTC()
	rendered := s.renderer.Render(template, format)

	generated := &models.GeneratedReport{
		ID:               s.gen.NewID(),
		ReportTemplateID: template.ID,
		ReportName:       fmt.Sprintf("%s_%s", template.Name, now.Format("20060102150405")),
		GeneratedDate:    now,
		Format:           format,
		FilePath:         rendered.FilePath,
		FileSizeBytes:    rendered.FileSizeBytes,
		Parameters:       req.Parameters,
		GeneratedByUser:  req.GeneratedByUser,
		RecordCount:      rendered.RecordCount,
		CreatedAt:        now,
		CreatedBy:        actor,
	}

	if err := s.repo.CreateGenerated(ctx, generated); err != nil {
		s.logger.Error("record generated report", zap.Error(err))
		return nil, err
	}
	s.logger.Info("report generated",
		zap.String("template_id", template.ID.String()),
		zap.String("report_name", generated.ReportName))
	return generated, nil
}

func (s *Service) ListGenerated(ctx context.Context) ([]models.GeneratedReport, error) {
	return s.repo.ListGenerated(ctx, nil)
}

// Download marks the report downloaded and returns it together with the
// placeholder body and content type for the response.
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*models.GeneratedReport, []byte, string, error) {
	generated, err := s.repo.FindGenerated(ctx, id)
	if err != nil {
		return nil, nil, "", err
	}

	now := time.Now().UTC()
	generated.IsDownloaded = true
	generated.DownloadedAt = &now
	if err := s.repo.UpdateGenerated(ctx, generated); err != nil {
		return nil, nil, "", err
	}

	body := []byte(fmt.Sprintf("Report: %s\nGenerated: %s\nRecords: %d\n",
		generated.ReportName, generated.GeneratedDate.Format(time.RFC3339), generated.RecordCount))
	return generated, body, ContentType(generated.Format), nil
}
