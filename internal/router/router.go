package router

import (
	"github.com/kararha/installment/internal/config"
	"github.com/kararha/installment/internal/handler"
	"github.com/kararha/installment/internal/ledger"
	"github.com/kararha/installment/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires the API handlers
// onto the ledger.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	l := ledger.New(db)

	// ====== API ======
	api := r.Group("/api")
	api.Use(middleware.Audit(db))

	customerHandler := handler.NewCustomerHandler(l, cfg.App.PageSize)
	api.GET("/customers", customerHandler.ListCustomers)
	api.POST("/customers", customerHandler.CreateCustomer)
	api.GET("/customers/:id", customerHandler.GetCustomer)
	api.PUT("/customers/:id", customerHandler.UpdateCustomer)
	api.DELETE("/customers/:id", customerHandler.DeleteCustomer)

	transactionHandler := handler.NewTransactionHandler(l)
	api.GET("/customers/:id/transactions", transactionHandler.ListTransactions)
	api.POST("/customers/:id/add-debt", transactionHandler.AddDebt)
	api.POST("/customers/:id/pay-installment", transactionHandler.PayInstallment)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	reportHandler := handler.NewReportHandler(l)
	api.GET("/reports/summary", reportHandler.Summary)

	exportHandler := handler.NewExportHandler(l)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
