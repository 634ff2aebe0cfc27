package handler

import (
	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the portfolio summary.
type ReportHandler struct {
	Ledger *ledger.Ledger
}

func NewReportHandler(l *ledger.Ledger) *ReportHandler {
	return &ReportHandler{Ledger: l}
}

// Summary returns aggregate counts and sums over the whole book. Sums
// are internal cents rendered to two decimals for display.
func (h *ReportHandler) Summary(c *gin.Context) {
	s, err := h.Ledger.Summary()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"total_customers":    s.TotalCustomers,
		"total_debt":         util.FormatCents(s.TotalDebtCent),
		"total_paid":         util.FormatCents(s.TotalPaidCent),
		"total_remaining":    util.FormatCents(s.TotalRemainingCent),
		"paid_off_customers": s.PaidOffCount,
		"active_customers":   s.ActiveCount,
	})
}
