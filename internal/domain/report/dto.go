// Package report holds request payloads for report templates, schedules,
// and generation.
package report

import "github.com/google/uuid"

type CreateTemplateRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Description      string  `json:"description"`
	ReportType       string  `json:"report_type" binding:"required,max=100"`
	QueryDefinition  string  `json:"query_definition"`
	ParametersSchema string  `json:"parameters_schema"`
	DefaultFormat    string  `json:"default_format" binding:"omitempty,oneof=PDF Excel CSV JSON"`
	LayoutTemplate   *string `json:"layout_template"`
}

// UpdateTemplateRequest uses pointer fields; absent fields stay unchanged.
type UpdateTemplateRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	Description      *string `json:"description"`
	ReportType       *string `json:"report_type" binding:"omitempty,max=100"`
	QueryDefinition  *string `json:"query_definition"`
	ParametersSchema *string `json:"parameters_schema"`
	DefaultFormat    *string `json:"default_format" binding:"omitempty,oneof=PDF Excel CSV JSON"`
	IsActive         *bool   `json:"is_active"`
	LayoutTemplate   *string `json:"layout_template"`
}

type CreateScheduleRequest struct {
	ReportTemplateID   uuid.UUID `json:"report_template_id" binding:"required"`
	Name               string    `json:"name" binding:"required,max=255"`
	Frequency          string    `json:"frequency" binding:"required,oneof=Daily Weekly Monthly Quarterly Yearly"`
	ScheduleExpression *string   `json:"schedule_expression"`
	Recipients         string    `json:"recipients"`
	OutputFormat       string    `json:"output_format" binding:"omitempty,oneof=PDF Excel CSV JSON"`
	Parameters         *string   `json:"parameters"`
}

type GenerateRequest struct {
	ReportTemplateID uuid.UUID  `json:"report_template_id" binding:"required"`
	Format           string     `json:"format" binding:"omitempty,oneof=PDF Excel CSV JSON"`
	Parameters       *string    `json:"parameters"`
	GeneratedByUser  *uuid.UUID `json:"generated_by_user_id"`
}
