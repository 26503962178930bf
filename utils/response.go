package utils

import "github.com/gin-gonic/gin"

// Error writes the standard failure payload with the given status code.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// Message writes a plain acknowledgement payload.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}
