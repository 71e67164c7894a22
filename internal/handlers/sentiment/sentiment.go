package sentiment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/sentiment"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	sentimentsvc "wekeza-crm/internal/service/sentiment"
)

type Handler struct {
	svc *sentimentsvc.Service
}

func NewHandler(svc *sentimentsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Analyze(c *gin.Context) {
	var req sentiment.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/sentimentanalysis/"+analysis.ID.String(), "text analyzed", analysis)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid analysis id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "analysis not found")
		return
	}
	response.Success(c, http.StatusOK, "analysis", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "analyses not found")
		return
	}
	response.Success(c, http.StatusOK, "analyses", found)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	found, err := h.svc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "analyses", found)
}

func (h *Handler) ListByInteraction(c *gin.Context) {
	interactionID, err := uuid.Parse(c.Param("interactionId"))
	if err != nil {
		response.ValidationError(c, "invalid interaction id", err)
		return
	}

	found, err := h.svc.ListByInteraction(c.Request.Context(), interactionID)
	if err != nil {
		response.FromError(c, err, "analyses not found")
		return
	}
	response.Success(c, http.StatusOK, "analyses", found)
}

func (h *Handler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("caseId"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	found, err := h.svc.ListByCase(c.Request.Context(), caseID)
	if err != nil {
		response.FromError(c, err, "analyses not found")
		return
	}
	response.Success(c, http.StatusOK, "analyses", found)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid analysis id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "analysis not found")
		return
	}
	c.Status(http.StatusNoContent)
}
