package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Tramle26/ai-economic-consultant/internal/constant"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error renders the first error a handler attached with c.Error as
// {"error": ...}. Responses already written by the handler are left alone.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
			return
		}

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors[0].Err

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, FieldError{Field: fe.Field(), Message: fe.Error()})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fields})
			return
		}

		var ce constant.CustomError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(ce.StatusCode, gin.H{"error": ce.Error()})
			return
		}

		slog.Error("unhandled request error", "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
