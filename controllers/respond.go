package controllers

import (
	"errors"
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto HTTP statuses. Validation
// and not-found surface the message; storage faults get a short generic
// body so internals never leak.
func respondError(c *gin.Context, err error) {
	var usage *services.UsageError
	if errors.As(err, &usage) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing or invalid parameters",
			"command": string(usage.Intent),
			"usage":   usage.Hint,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "wellness service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
