package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondCoreError translates a core error into the matching status code:
// validation failures are the caller's fault (400), an unreachable store is
// a service error (503), anything else is internal (500).
func respondCoreError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, database.ErrValidation):
		respondBadRequest(c, err.Error())
	case errors.Is(err, database.ErrStoreUnavailable):
		log.Printf("Store unavailable during %s: %v", action, err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
	default:
		log.Printf("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to " + action})
	}
}

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}
