package response

import "github.com/gin-gonic/gin"

// Success writes the standard envelope around a record or a row set.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message writes a confirmation without a data payload, e.g. after a
// mutation whose only result is the committed procedure call.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
