package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler dumps the customer book with derived balances.
type ExportHandler struct {
	Ledger *ledger.Ledger
}

func NewExportHandler(l *ledger.Ledger) *ExportHandler {
	return &ExportHandler{Ledger: l}
}

var exportHeaders = []string{"Name", "Phone", "Initial Debt", "Total Debt", "Total Paid", "Remaining", "Paid Off", "Created"}

func exportRow(r customerResp) []string {
	paidOff := "no"
	if r.IsPaidOff {
		paidOff = "yes"
	}
	return []string{
		r.Name,
		r.Phone,
		r.InitialDebt,
		r.TotalDebt,
		r.TotalPaid,
		r.RemainingBalance,
		paidOff,
		r.CreatedAt,
	}
}

// ExportCSV writes the customer book as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	customers, err := h.Ledger.AllCustomers()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"customers_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range customers {
		writer.Write(exportRow(toCustomerResp(&customers[i])))
	}
}

// ExportXLSX writes the customer book as an XLSX workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	customers, err := h.Ledger.AllCustomers()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		return
	}

	f := excelize.NewFile()
	sheetName := "Customers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)

	for i, hd := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx := range customers {
		row := idx + 2
		for col, v := range exportRow(toCustomerResp(&customers[idx])) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 18)
	f.SetColWidth(sheetName, "C", "F", 14)
	f.SetColWidth(sheetName, "G", "H", 10)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"customers_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
