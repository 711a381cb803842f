package analytics

import "github.com/gin-gonic/gin"

type IHandler interface {
	// Summary returns aggregate payment totals for a time window.
	Summary(c *gin.Context)

	// Transactions lists individual payment events for a time window.
	Transactions(c *gin.Context)

	// ExportCSV streams the payment events for a time window as CSV.
	ExportCSV(c *gin.Context)
}
