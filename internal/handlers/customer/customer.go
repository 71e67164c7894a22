package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/customer"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	customersvc "wekeza-crm/internal/service/customer"
)

type Handler struct {
	svc *customersvc.Service
}

func NewHandler(svc *customersvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req customer.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/customers/"+created.ID.String(), "customer created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "customer", found)
}

func (h *Handler) GetByEmail(c *gin.Context) {
	found, err := h.svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "customer", found)
}

func (h *Handler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context(), c.Query("segment"), c.Query("kyc_status"))
	if err != nil {
		response.FromError(c, err, "customers not found")
		return
	}
	response.Success(c, http.StatusOK, "customers", customers)
}

func (h *Handler) ListBySegment(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context(), c.Param("segment"), "")
	if err != nil {
		response.FromError(c, err, "customers not found")
		return
	}
	response.Success(c, http.StatusOK, "customers", customers)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	var req customer.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "customer updated", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
