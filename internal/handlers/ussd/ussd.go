package ussd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/ussd"
	"wekeza-crm/internal/pkg/response"
	ussdsvc "wekeza-crm/internal/service/ussd"
)

type Handler struct {
	svc *ussdsvc.Service
}

func NewHandler(svc *ussdsvc.Service) *Handler {
	return &Handler{svc: svc}
}

// Handle is the gateway callback endpoint.
func (h *Handler) Handle(c *gin.Context) {
	var req ussd.HandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	resp, err := h.svc.Handle(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "session not found")
		return
	}
	response.Success(c, http.StatusOK, "ussd response", resp)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid session id", err)
		return
	}

	session, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "session not found")
		return
	}
	response.Success(c, http.StatusOK, "session", session)
}

func (h *Handler) List(c *gin.Context) {
	sessions, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "sessions not found")
		return
	}
	response.Success(c, http.StatusOK, "sessions", sessions)
}

func (h *Handler) ListByPhone(c *gin.Context) {
	sessions, err := h.svc.ListByPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		response.FromError(c, err, "sessions not found")
		return
	}
	response.Success(c, http.StatusOK, "sessions", sessions)
}
