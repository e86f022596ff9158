package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the cause and returns a generic message. Internal detail
// never reaches the client.
func internalError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
