package report

import (
	"strings"
	"testing"
	"time"

	"wekeza-crm/internal/models"
)

func TestCalculateNextRunDate(t *testing.T) {
	from := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency models.ReportScheduleFrequency
		want      time.Time
	}{
		{models.FrequencyDaily, time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)},
		{models.FrequencyWeekly, time.Date(2024, 3, 22, 9, 0, 0, 0, time.UTC)},
		{models.FrequencyMonthly, time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)},
		{models.FrequencyQuarterly, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)},
		{models.FrequencyYearly, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)},
		{models.ReportScheduleFrequency("AdHoc"), from},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			got := CalculateNextRunDate(tt.frequency, from)
			if !got.Equal(tt.want) {
				t.Fatalf("next run = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSimulatedRenderer(t *testing.T) {
	renderer := NewSimulatedRenderer()
	template := &models.ReportTemplate{Name: "Monthly Cases"}

	out := renderer.Render(template, models.FormatPDF)

	if out.RecordCount != 250 {
		t.Fatalf("record count = %d, want 250", out.RecordCount)
	}
	if out.FileSizeBytes != 1024*150 {
		t.Fatalf("file size = %d, want %d", out.FileSizeBytes, 1024*150)
	}
	if !strings.HasPrefix(out.FilePath, "/reports/") || !strings.HasSuffix(out.FilePath, ".pdf") {
		t.Fatalf("unexpected file path %q", out.FilePath)
	}
}

func TestFormatMappings(t *testing.T) {
	tests := []struct {
		format      models.ReportFormat
		ext         string
		contentType string
	}{
		{models.FormatPDF, "pdf", "application/pdf"},
		{models.FormatExcel, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{models.FormatCSV, "csv", "text/csv"},
		{models.FormatJSON, "json", "application/json"},
		{models.ReportFormat("Other"), "txt", "text/plain"},
	}

	for _, tt := range tests {
		if got := FileExtension(tt.format); got != tt.ext {
			t.Fatalf("ext for %s = %q, want %q", tt.format, got, tt.ext)
		}
		if got := ContentType(tt.format); got != tt.contentType {
			t.Fatalf("content type for %s = %q, want %q", tt.format, got, tt.contentType)
		}
	}
}
