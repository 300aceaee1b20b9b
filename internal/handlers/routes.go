package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Health      *HealthCheckHandler
	Merchant    *MerchantHandler
	Transaction *TransactionHandler
	Report      *ReportHandler
}

// RegisterRoutes mounts the health endpoint at the root and the API under /api/v1
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1")
	api.GET("/status", h.Health.Status)

	api.GET("/merchants", h.Merchant.ListMerchants)

	merchant := api.Group("/merchants/:merchantId")
	merchant.GET("/transactions", h.Transaction.ListMerchantTransactions)
	merchant.POST("/transactions/search", h.Transaction.SearchTransactions)
	merchant.GET("/transactions/:txnId", h.Transaction.GetTransaction)

	api.GET("/transactions/reports", h.Report.GetTransactionReport)
}
