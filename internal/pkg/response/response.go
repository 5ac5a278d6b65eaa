package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes used in the uniform error envelope.
const (
	CodeValidation      = "validation_error"
	CodeNotFound        = "not_found"
	CodeUnauthenticated = "unauthenticated"
	CodeConflict        = "conflict"
	CodeInternal        = "internal_error"
)

// errorDetail is the body of the error envelope.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 validation error.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorEnvelope{errorDetail{Code: CodeValidation, Message: message}})
}

// BadRequestField sends a 400 validation error naming the offending field.
func BadRequestField(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorEnvelope{errorDetail{Code: CodeValidation, Message: message, Field: field}})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope{errorDetail{Code: CodeUnauthenticated, Message: "authentication required"}})
}

// UnauthorizedMsg sends a 401 error with a custom message.
func UnauthorizedMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorEnvelope{errorDetail{Code: CodeUnauthenticated, Message: message}})
}

// NotFound sends a 404 error response. The same body is returned whether the
// resource is absent or owned by another user, so existence is never leaked.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, errorEnvelope{errorDetail{Code: CodeNotFound, Message: message}})
}

// Conflict sends an error for a duplicate unique field. Auth registration
// reports duplicates as 400 to match the public API contract.
func Conflict(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope{errorDetail{Code: CodeConflict, Message: message}})
}

// InternalError sends a 500 error response. The underlying error is never
// included in the body; callers log it instead.
func InternalError(c *gin.Context, _ error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorEnvelope{errorDetail{Code: CodeInternal, Message: "internal server error"}})
}
