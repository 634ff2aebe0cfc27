package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/models"
	"github.com/kararha/installment/internal/util"

	"github.com/gin-gonic/gin"
)

// ---------- shared response structs ----------

type customerResp struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	InitialDebtCent  int64  `json:"initial_debt_cent"`
	InitialDebt      string `json:"initial_debt"`
	TotalDebtCent    int64  `json:"total_debt_cent"`
	TotalDebt        string `json:"total_debt"`
	TotalPaidCent    int64  `json:"total_paid_cent"`
	TotalPaid        string `json:"total_paid"`
	RemainingCent    int64  `json:"remaining_balance_cent"`
	RemainingBalance string `json:"remaining_balance"`
	IsPaidOff        bool   `json:"is_paid_off"`
	CreatedAt        string `json:"created_at"`
}

type transactionResp struct {
	ID          uint   `json:"id"`
	CustomerID  uint   `json:"customer_id"`
	AmountCent  int64  `json:"amount_cent"`
	Amount      string `json:"amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// toCustomerResp derives the balance via the single computation path
// and renders display amounts as two-decimal strings.
func toCustomerResp(c *models.Customer) customerResp {
	b := ledger.ComputeBalance(c.InitialDebtCent, c.Transactions)
	return customerResp{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		InitialDebtCent:  c.InitialDebtCent,
		InitialDebt:      util.FormatCents(c.InitialDebtCent),
		TotalDebtCent:    b.TotalDebtCent,
		TotalDebt:        util.FormatCents(b.TotalDebtCent),
		TotalPaidCent:    b.TotalPaidCent,
		TotalPaid:        util.FormatCents(b.TotalPaidCent),
		RemainingCent:    b.RemainingCent,
		RemainingBalance: util.FormatCents(b.RemainingCent),
		IsPaidOff:        b.PaidOff,
		CreatedAt:        c.CreatedAt.Format("2006-01-02"),
	}
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		AmountCent:  t.AmountCent,
		Amount:      util.FormatCents(t.AmountCent),
		Kind:        t.Kind,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// ---------- shared helpers ----------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeDomainError maps ledger errors onto HTTP status codes. An
// overlarge payment gets its own business code so clients can tell it
// apart from generic validation.
func writeDomainError(c *gin.Context, err error) {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, ve.Error())
	case errors.Is(err, ledger.ErrInvalidPayment):
		util.Error(c, http.StatusBadRequest, util.CodePayment, err.Error())
	case errors.Is(err, ledger.ErrCustomerNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
