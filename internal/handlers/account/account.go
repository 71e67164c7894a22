package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wekeza-crm/internal/domain/account"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/response"
	accountsvc "wekeza-crm/internal/service/account"
)

type Handler struct {
	svc *accountsvc.Service
}

func NewHandler(svc *accountsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *gin.Context) {
	var req account.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Created(c, "/api/accounts/"+created.ID.String(), "account created", created)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid account id", err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "account not found")
		return
	}
	response.Success(c, http.StatusOK, "account", found)
}

func (h *Handler) List(c *gin.Context) {
	accounts, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "accounts not found")
		return
	}
	response.Success(c, http.StatusOK, "accounts", accounts)
}

func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		response.ValidationError(c, "invalid customer id", err)
		return
	}

	accounts, err := h.svc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.FromError(c, err, "customer not found")
		return
	}
	response.Success(c, http.StatusOK, "accounts", accounts)
}

func (h *Handler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid account id", err)
		return
	}

	closed, err := h.svc.Close(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		response.FromError(c, err, "account not found")
		return
	}
	response.Success(c, http.StatusOK, "account closed", closed)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid account id", err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "account not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid account id", err)
		return
	}

	var req account.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err)
		return
	}

	tx, err := h.svc.RecordTransaction(c.Request.Context(), middleware.Actor(c), accountID, req)
	if err != nil {
		response.FromError(c, err, "account not found")
		return
	}
	response.Created(c, "/api/accounts/"+accountID.String()+"/transactions", "transaction recorded", tx)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid account id", err)
		return
	}

	txs, err := h.svc.ListTransactions(c.Request.Context(), accountID)
	if err != nil {
		response.FromError(c, err, "account not found")
		return
	}
	response.Success(c, http.StatusOK, "transactions", txs)
}
