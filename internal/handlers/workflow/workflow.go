package workflow

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/workflow"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	workflowsvc "wekeza-crm/internal/service/workflow"
)

type Handler struct {
	svc *workflowsvc.Service
}

func NewHandler(svc *workflowsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreateDefinition(c *gin.Context) {
	var req workflow.CreateDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	def, err := h.svc.CreateDefinition(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "definition not found")
		return
	}
	response.Created(c, "/api/workflows/definitions/"+def.ID.String(), "definition created", def)
}

func (h *Handler) GetDefinition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid definition id", err)
		return
	}

	def, err := h.svc.GetDefinition(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "definition not found")
		return
	}
	response.Success(c, http.StatusOK, "definition", def)
}

func (h *Handler) ListDefinitions(c *gin.Context) {
	defs, err := h.svc.ListDefinitions(c.Request.Context(), false)
	if err != nil {
		response.FromError(c, err, "definitions not found")
		return
	}
	response.Success(c, http.StatusOK, "definitions", defs)
}

func (h *Handler) ListActiveDefinitions(c *gin.Context) {
	defs, err := h.svc.ListDefinitions(c.Request.Context(), true)
	if err != nil {
		response.FromError(c, err, "definitions not found")
		return
	}
	response.Success(c, http.StatusOK, "definitions", defs)
}

func (h *Handler) UpdateDefinition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid definition id", err)
		return
	}

	var req workflow.UpdateDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	def, err := h.svc.UpdateDefinition(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "definition not found")
		return
	}
	response.Success(c, http.StatusOK, "definition updated", def)
}

func (h *Handler) DeleteDefinition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid definition id", err)
		return
	}

	if err := h.svc.DeleteDefinition(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "definition not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Trigger(c *gin.Context) {
	var req workflow.TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	instance, err := h.svc.Trigger(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "definition not found")
		return
	}
	response.Created(c, "/api/workflows/instances/"+instance.ID.String(), "workflow triggered", instance)
}

func (h *Handler) GetInstance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid instance id", err)
		return
	}

	instance, err := h.svc.GetInstance(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "instance not found")
		return
	}
	response.Success(c, http.StatusOK, "instance", instance)
}

func (h *Handler) ListInstances(c *gin.Context) {
	instances, err := h.svc.ListInstances(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err, "instances not found")
		return
	}
	response.Success(c, http.StatusOK, "instances", instances)
}

func (h *Handler) ListInstancesByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	instances, err := h.svc.ListInstancesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err, "instances not found")
		return
	}
	response.Success(c, http.StatusOK, "instances", instances)
}

func (h *Handler) UpdateInstanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid instance id", err)
		return
	}

	var req workflow.UpdateInstanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	instance, err := h.svc.UpdateInstanceStatus(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "instance not found")
		return
	}
	response.Success(c, http.StatusOK, "instance status updated", instance)
}
