package handler

import (
	"net/http"

	"banaapro/internal/dto"
	"banaapro/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct{ svc service.FinanceService }

func NewFinanceHandler(svc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// CreateTransaction godoc
// @Summary      Record a ledger entry
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateTransactionRequest true "Transaction"
// @Success      201 {object} dto.TransactionResponse
// @Router       /v1/finance/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	resp, err := h.svc.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary      Finance dashboard summary
// @Description  All-time balance, current-month income/expense, client and supplier debt.
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.FinanceSummary
// @Router       /v1/finance/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
