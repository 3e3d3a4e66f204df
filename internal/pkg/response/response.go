package response

import "github.com/gin-gonic/gin"

// Message writes the plain {"message": ...} error payload the API exposes
// on business-rule and auth failures.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// AbortMessage is Message for middleware: it stops the handler chain.
func AbortMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
