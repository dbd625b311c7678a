// Package api exposes the dashboard over HTTP: auth, transactions, fees,
// reports, and the advisory flows.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for all API responses.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error response with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Conflict writes a 409 response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError writes a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// BadGateway writes a 502 response. Used when an advisory call to the
// external model fails for any reason.
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}
