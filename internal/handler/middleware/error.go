package middleware

import (
	"log/slog"
	"net/http"

	"cleanpro-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort net: handlers answer their own errors, so
// anything still on the context at this point was never turned into a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, err := range c.Errors {
			slog.Error("unhandled request error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(err.Err, 10),
			)
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
