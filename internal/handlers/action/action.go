package action

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/action"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	actionsvc "wekeza-crm/internal/service/action"
)

type Handler struct {
	svc *actionsvc.Service
}

func NewHandler(svc *actionsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req action.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/nextbestactions/"+created.ID.String(), "action created", created)
}

// Generate asks the recommendation engine for a fresh set of actions.
func (h *Handler) Generate(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	actions, err := h.svc.Generate(c.Request.Context(), middleware.Actor(c), customerID)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/nextbestactions/customer/"+customerID.String(), "actions generated", actions)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid action id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "action not found")
		return
	}
	response.Success(c, http.StatusOK, "action", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "actions not found")
		return
	}
	response.Success(c, http.StatusOK, "actions", found)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	h.listByCustomer(c, false)
}

func (h *Handler) ListPendingByCustomer(c *gin.Context) {
	h.listByCustomer(c, true)
}

func (h *Handler) listByCustomer(c *gin.Context, pendingOnly bool) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	found, err := h.svc.ListByCustomer(c.Request.Context(), customerID, pendingOnly)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "actions", found)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid action id", err)
		return
	}

	var req action.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	completed, err := h.svc.Complete(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "action not found")
		return
	}
	response.Success(c, http.StatusOK, "action completed", completed)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid action id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "action not found")
		return
	}
	c.Status(http.StatusNoContent)
}
