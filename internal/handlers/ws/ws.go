package ws

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wekeza-crm/internal/websocket"
)

type Handler struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewHandler(hub *websocket.Hub, logger *zap.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// Serve upgrades the connection and subscribes it to the hub.
func (h *Handler) Serve(c *gin.Context) {
	websocket.ServeWS(h.hub, c.Writer, c.Request, h.logger)
}
