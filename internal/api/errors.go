package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"finance_system/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps a domain error onto a status code and message body
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: verr.Message,
			Details: []FieldError{{Field: verr.Field, Message: verr.Message, Type: "invalid"}},
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Transaction not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already exists"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
