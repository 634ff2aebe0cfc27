package handler

import (
	"net/http"
	"strconv"

	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/util"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer book endpoints.
type CustomerHandler struct {
	Ledger   *ledger.Ledger
	PageSize int // default per_page when the query omits it
}

func NewCustomerHandler(l *ledger.Ledger, pageSize int) *CustomerHandler {
	if pageSize <= 0 {
		pageSize = ledger.DefaultPageSize
	}
	return &CustomerHandler{Ledger: l, PageSize: pageSize}
}

type createCustomerReq struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	InitialDebt float64 `json:"initial_debt"`
}

type updateCustomerReq struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ListCustomers returns a page of customers, optionally filtered by a
// substring of name or phone.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(h.PageSize)))

	p, err := h.Ledger.ListCustomers(search, page, perPage)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	items := make([]customerResp, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, toCustomerResp(&p.Items[i]))
	}

	util.Success(c, util.Response{
		"customers":    items,
		"total":        p.Total,
		"pages":        p.Pages,
		"current_page": p.CurrentPage,
		"per_page":     p.PerPage,
		"has_next":     p.HasNext,
		"has_prev":     p.HasPrev,
	})
}

// CreateCustomer adds a customer; initial debt defaults to 0.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req createCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	created, err := h.Ledger.CreateCustomer(req.Name, req.Phone, util.CentsFromAmount(req.InitialDebt))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Created(c, util.Response{
		"message":  "customer created",
		"customer": toCustomerResp(created),
	})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.Ledger.GetCustomer(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	util.Success(c, util.Response{
		"customer": toCustomerResp(cust),
	})
}

// UpdateCustomer applies a partial update of name and/or phone.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	cust, err := h.Ledger.UpdateCustomer(id, req.Name, req.Phone)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	util.Success(c, util.Response{
		"message":  "customer updated",
		"customer": toCustomerResp(cust),
	})
}

// DeleteCustomer removes a customer and, atomically, every transaction
// it owns.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Ledger.DeleteCustomer(id); err != nil {
		writeDomainError(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": "customer deleted",
	})
}
