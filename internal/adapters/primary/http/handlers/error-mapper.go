package handlers

import (
	"errors"
	"net/http"

	"art-catalog-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	// Not found errors
	case errors.Is(err, domain.ErrEmptyCollection):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrMissingCountry),
		errors.Is(err, domain.ErrMalformedRecord):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
