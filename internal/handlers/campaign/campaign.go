package campaign

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/campaign"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	campaignsvc "wekeza-crm/internal/service/campaign"
)

type Handler struct {
	svc *campaignsvc.Service
}

func NewHandler(svc *campaignsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req campaign.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "campaign not found")
		return
	}
	response.Created(c, "/api/campaigns/"+created.ID.String(), "campaign created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid campaign id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "campaign not found")
		return
	}
	response.Success(c, http.StatusOK, "campaign", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.FromError(c, err, "campaigns not found")
		return
	}
	response.Success(c, http.StatusOK, "campaigns", found)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid campaign id", err)
		return
	}

	var req campaign.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "campaign not found")
		return
	}
	response.Success(c, http.StatusOK, "campaign updated", updated)
}

func (h *Handler) Enroll(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid campaign id", err)
		return
	}
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	if err := h.svc.Enroll(c.Request.Context(), campaignID, customerID); err != nil {
		response.FromError(c, err, "campaign or customer not found")
		return
	}
	response.Success(c, http.StatusOK, "customer enrolled", nil)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid campaign id", err)
		return
	}

	found, err := h.svc.ListCustomers(c.Request.Context(), campaignID)
	if err != nil {
		response.FromError(c, err, "campaign not found")
		return
	}
	response.Success(c, http.StatusOK, "campaign customers", found)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid campaign id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "campaign not found")
		return
	}
	c.Status(http.StatusNoContent)
}
