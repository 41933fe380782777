package controllers

import (
	"errors"
	"net/http"

	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// respondErr maps service/storage errors onto HTTP statuses. A
// not-found and a not-owned delete share the same response on purpose.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
