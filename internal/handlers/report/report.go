package report

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/report"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	reportsvc "wekeza-crm/internal/service/report"
)

type Handler struct {
	svc *reportsvc.Service
}

func NewHandler(svc *reportsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreateTemplate(c *gin.Context) {
	var req report.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	template, err := h.svc.CreateTemplate(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	response.Created(c, "/api/reports/templates/"+template.ID.String(), "template created", template)
}

func (h *Handler) GetTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid template id", err)
		return
	}

	template, err := h.svc.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	response.Success(c, http.StatusOK, "template", template)
}

func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.svc.ListTemplates(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.FromError(c, err, "templates not found")
		return
	}
	response.Success(c, http.StatusOK, "templates", templates)
}

func (h *Handler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid template id", err)
		return
	}

	var req report.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	template, err := h.svc.UpdateTemplate(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	response.Success(c, http.StatusOK, "template updated", template)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid template id", err)
		return
	}

	if err := h.svc.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req report.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	schedule, err := h.svc.CreateSchedule(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	response.Created(c, "/api/reports/schedules/"+schedule.ID.String(), "schedule created", schedule)
}

func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.svc.ListSchedules(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "schedules not found")
		return
	}
	response.Success(c, http.StatusOK, "schedules", schedules)
}

func (h *Handler) RunSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid schedule id", err)
		return
	}

	generated, err := h.svc.RunSchedule(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		response.FromError(c, err, "schedule not found")
		return
	}
	response.Created(c, "/api/reports/download/"+generated.ID.String(), "report generated", generated)
}

func (h *Handler) Generate(c *gin.Context) {
	var req report.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	generated, err := h.svc.Generate(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "template not found")
		return
	}
	response.Created(c, "/api/reports/download/"+generated.ID.String(), "report generated", generated)
}

func (h *Handler) ListGenerated(c *gin.Context) {
	generated, err := h.svc.ListGenerated(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "reports not found")
		return
	}
	response.Success(c, http.StatusOK, "reports", generated)
}

// Download streams the placeholder artifact with the format's content
// type and a file name derived from the report.
func (h *Handler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid report id", err)
		return
	}

	generated, body, contentType, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "report not found")
		return
	}

	filename := fmt.Sprintf("%s.%s", generated.ReportName, reportsvc.FileExtension(generated.Format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
