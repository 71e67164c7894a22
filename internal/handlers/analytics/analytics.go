package analytics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wekeza-crm/internal/pkg/response"
	analyticssvc "wekeza-crm/internal/service/analytics"
)

type Handler struct {
	svc *analyticssvc.Service
}

func NewHandler(svc *analyticssvc.Service) *Handler {
	return &Handler{svc: svc}
}

// parseRange reads optional RFC3339 start/end query parameters. A second
// return of false means a bound was present but malformed and a 400 has
// already been written.
func parseRange(c *gin.Context) (start, end *time.Time, ok bool) {
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.ValidationError(c, "invalid start date", err)
			return nil, nil, false
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.ValidationError(c, "invalid end date", err)
			return nil, nil, false
		}
		end = &t
	}
	return start, end, true
}

func (h *Handler) Customers(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	out, err := h.svc.CustomerAnalytics(c.Request.Context(), start, end)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customer analytics", out)
}

func (h *Handler) Cases(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	out, err := h.svc.CaseAnalytics(c.Request.Context(), start, end)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, "case analytics", out)
}

func (h *Handler) Interactions(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	out, err := h.svc.InteractionAnalytics(c.Request.Context(), start, end)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, "interaction analytics", out)
}

func (h *Handler) Dashboard(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	out, err := h.svc.Dashboard(c.Request.Context(), start, end)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, "dashboard", out)
}
