package query

import "github.com/gin-gonic/gin"

type IHandler interface {
	Overview(c *gin.Context)
	AddressBalance(c *gin.Context)
	TransactionDetail(c *gin.Context)
	FeeEstimates(c *gin.Context)
	RecentBlocks(c *gin.Context)
	AddressReport(c *gin.Context)
}
