package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-service/internal/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Causes of internal errors go to the log
// only.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	var de *domain.Error
	if !errors.As(err, &de) {
		log.Printf("%s %s: unexpected error: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %s: %v", c.Request.Method, c.FullPath(), de.Message, de.Err)
	}
	c.JSON(status, gin.H{"error": de.Message})
}
