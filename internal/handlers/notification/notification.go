package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/notification"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	notificationsvc "wekeza-crm/internal/service/notification"
)

type Handler struct {
	svc *notificationsvc.Service
}

func NewHandler(svc *notificationsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req notification.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "notification not found")
		return
	}
	response.Created(c, "/api/notifications/"+created.ID.String(), "notification created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid notification id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "notification not found")
		return
	}
	response.Success(c, http.StatusOK, "notification", found)
}

func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "notifications not found")
		return
	}
	response.Success(c, http.StatusOK, "notifications", found)
}

func (h *Handler) ListByUser(c *gin.Context) {
	h.listByUser(c, false)
}

func (h *Handler) ListUnreadByUser(c *gin.Context) {
	h.listByUser(c, true)
}

func (h *Handler) listByUser(c *gin.Context, unreadOnly bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.ValidationError(c, "invalid user id", err)
		return
	}

	found, err := h.svc.ListByUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		response.FromError(c, err, "notifications not found")
		return
	}
	response.Success(c, http.StatusOK, "notifications", found)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid notification id", err)
		return
	}

	updated, err := h.svc.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "notification not found")
		return
	}
	response.Success(c, http.StatusOK, "notification read", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid notification id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "notification not found")
		return
	}
	c.Status(http.StatusNoContent)
}
