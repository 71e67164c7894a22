package interaction

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/interaction"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	interactionsvc "wekeza-crm/internal/service/interaction"
)

type Handler struct {
	svc *interactionsvc.Service
}

func NewHandler(svc *interactionsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req interaction.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/interactions/"+created.ID.String(), "interaction created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid interaction id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "interaction not found")
		return
	}
	response.Success(c, http.StatusOK, "interaction", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context(), c.Query("channel"))
	if err != nil {
		response.FromError(c, err, "interactions not found")
		return
	}
	response.Success(c, http.StatusOK, "interactions", found)
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
	response.Success(c, http.StatusOK, "interactions", found)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid interaction id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "interaction not found")
		return
	}
	c.Status(http.StatusNoContent)
}
