package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"wekeza-crm/internal/models"
)

// Rendered describes the artifact produced for a report run.
type Rendered struct {
	FilePath      string
	FileSizeBytes int64
	RecordCount   int
}

// Renderer produces the report artifact. The default implementation
// fabricates the output instead of querying a reporting warehouse.
type Renderer interface {
	Render(template *models.ReportTemplate, format models.ReportFormat) Rendered
}

// SimulatedRenderer emits fixed-size placeholder artifacts.
type SimulatedRenderer struct{}

func NewSimulatedRenderer() *SimulatedRenderer {
	return &SimulatedRenderer{}
}

func (SimulatedRenderer) Render(template *models.ReportTemplate, format models.ReportFormat) Rendered {
	return Rendered{
		FilePath:      fmt.Sprintf("/reports/%s.%s", uuid.NewString(), FileExtension(format)),
		FileSizeBytes: 1024 * 150,
		RecordCount:   250,
	}
}

// FileExtension maps a report format to its file extension.
func FileExtension(format models.ReportFormat) string {
	switch format {
	case models.FormatPDF:
		return "pdf"
	case models.FormatExcel:
		return "xlsx"
	case models.FormatCSV:
		return "csv"
	case models.FormatJSON:
		return "json"
	default:
		return "txt"
	}
}

// ContentType maps a report format to its download content type.
func ContentType(format models.ReportFormat) string {
	switch format {
	case models.FormatPDF:
		return "application/pdf"
	case models.FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case models.FormatCSV:
		return "text/csv"
	case models.FormatJSON:
		return "application/json"
	default:
		return "text/plain"
	}
}

// CalculateNextRunDate advances a schedule from the given time according
// to its frequency. Unknown frequencies leave the time unchanged.
func CalculateNextRunDate(frequency models.ReportScheduleFrequency, from time.Time) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}
