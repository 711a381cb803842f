package health

import "github.com/gin-gonic/gin"

// IHandler defines the interface for health check handlers
type IHandler interface {
	Basic(c *gin.Context)
	Database(c *gin.Context)
	External(c *gin.Context)
}
