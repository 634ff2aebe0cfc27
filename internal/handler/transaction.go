package handler

import (
	"net/http"

	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the debt/payment endpoints.
type TransactionHandler struct {
	Ledger *ledger.Ledger
}

func NewTransactionHandler(l *ledger.Ledger) *TransactionHandler {
	return &TransactionHandler{Ledger: l}
}

type amountReq struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// ListTransactions returns a customer's entries newest first for
// display.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	txs, err := h.Ledger.ListTransactions(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	// ledger order is ascending; reverse for display
	items := make([]transactionResp, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		items = append(items, toTransactionResp(&txs[i]))
	}
	util.Success(c, util.Response{
		"transactions": items,
	})
}

// AddDebt records a debt entry against a customer.
func (h *TransactionHandler) AddDebt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	cust, err := h.Ledger.RecordDebt(id, util.CentsFromAmount(req.Amount), req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	util.Created(c, util.Response{
		"message":  "debt recorded",
		"customer": toCustomerResp(cust),
	})
}

// PayInstallment records a payment; the ledger rejects any amount above
// the remaining balance.
func (h *TransactionHandler) PayInstallment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	cust, err := h.Ledger.RecordPayment(id, util.CentsFromAmount(req.Amount), req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	util.Created(c, util.Response{
		"message":  "payment recorded",
		"customer": toCustomerResp(cust),
	})
}

// DeleteTransaction removes one entry and returns the owning customer's
// refreshed view, or null when the customer is already gone.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.Ledger.DeleteTransaction(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	data := util.Response{
		"message":  "transaction deleted",
		"customer": nil,
	}
	if cust != nil {
		data["customer"] = toCustomerResp(cust)
	}
	util.Success(c, data)
}
