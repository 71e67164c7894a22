package whatsapp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/whatsapp"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	whatsappsvc "wekeza-crm/internal/service/whatsapp"
)

type Handler struct {
	svc *whatsappsvc.Service
}

func NewHandler(svc *whatsappsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Send(c *gin.Context) {
	var req whatsapp.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	message, err := h.svc.Send(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/whatsapp/"+message.ID.String(), "message sent", message)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid message id", err)
		return
	}

	message, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "message not found")
		return
	}
	response.Success(c, http.StatusOK, "message", message)
}

func (h *Handler) List(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "messages not found")
		return
	}
	response.Success(c, http.StatusOK, "messages", messages)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	messages, err := h.svc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "messages", messages)
}

// Webhook applies provider delivery callbacks. Unknown message IDs are
// still acknowledged so the provider stops retrying.
func (h *Handler) Webhook(c *gin.Context) {
	var req whatsapp.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	if err := h.svc.HandleWebhook(c.Request.Context(), req); err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, "webhook processed", nil)
}
