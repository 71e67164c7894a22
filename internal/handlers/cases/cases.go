package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/cases"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	casesvc "wekeza-crm/internal/service/cases"
)

type Handler struct {
	svc *casesvc.Service
}

func NewHandler(svc *casesvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req cases.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/cases/"+created.ID.String(), "case created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "case not found")
		return
	}
	response.Success(c, http.StatusOK, "case", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("priority"))
	if err != nil {
		response.FromError(c, err, "cases not found")
		return
	}
	response.Success(c, http.StatusOK, "cases", found)
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
	response.Success(c, http.StatusOK, "cases", found)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	var req cases.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		response.FromError(c, err, "case not found")
		return
	}
	response.Success(c, http.StatusOK, "case status updated", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "case not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddNote(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	var req cases.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	note, err := h.svc.AddNote(c.Request.Context(), middleware.Actor(c), caseID, req)
	if err != nil {
		response.FromError(c, err, "case not found")
		return
	}
	response.Created(c, "/api/cases/"+caseID.String()+"/notes", "note added", note)
}

func (h *Handler) ListNotes(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid case id", err)
		return
	}

	notes, err := h.svc.ListNotes(c.Request.Context(), caseID)
	if err != nil {
		response.FromError(c, err, "case not found")
		return
	}
	response.Success(c, http.StatusOK, "notes", notes)
}
