// Package response holds the JSON shapes the admin panel and public site
// consume: success payloads are the entity (or array) itself, failures are
// {"message": ...} with an optional "errors" list for field validation.
package response

import "github.com/gin-gonic/gin"

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func ValidationError(c *gin.Context, statusCode int, message string, errors []string) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"errors":  errors,
	})
}
