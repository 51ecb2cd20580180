package controllers

import (
	"errors"
	"log"
	"net/http"

	"citifix-be/models"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP responses: validation failures
// are the caller's to fix, missing records are 404s, anything else is logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	default:
		log.Println("Internal error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
