package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramseva/gramseva-backend/internal/models"
)

// respondError converts a service failure into the response envelope.
// notFound is the client-facing message for absent records, which differs
// per entity. Unexpected errors become a generic 500 with no detail leaked.
func respondError(c *gin.Context, err error, notFound string) {
	var conflict *models.ConflictError
	var invalid *models.ValidationError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(conflict.Error()))
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(invalid.Errors))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFound))
	case errors.Is(err, models.ErrSelfDeletion):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("You cannot delete your own account"))
	case errors.Is(err, models.ErrMissingFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Username, phone number, email, and password are required"))
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Invalid email or password"))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse("Access denied"))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
	}
}
