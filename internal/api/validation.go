package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Struct validation
)

var validate = validator.New()

// FieldError is one entry of a 400 response's details
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// validateRequest runs the validate tags of obj and returns per-field failures
func validateRequest(obj any) []FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error(), Type: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: lowerFirst(fe.Field()), Message: fieldMessage(fe), Type: fe.Tag()})
	}
	return out
}

// fieldMessage turns a validator tag into a readable message
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// lowerFirst matches the JSON field names of the request structs
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// bindJSON decodes and validates the body, writing a 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return false
	}
	if details := validateRequest(req); details != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request data", Details: details})
		return false
	}
	return true
}
