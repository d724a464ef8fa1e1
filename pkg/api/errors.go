package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roundtable-ai/roundtable/pkg/billing"
	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/services"
)

// renderServiceError maps service-layer errors to HTTP responses.
func (s *Server) renderServiceError(c *gin.Context, err error) {
	var validErr *models.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validErr.Error()})
		return
	}
	var credErr *billing.InsufficientCreditsError
	if errors.As(err, &credErr) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     credErr.Error(),
			"required":  credErr.Required,
			"available": credErr.Available,
			"shortfall": credErr.Shortfall(),
		})
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "debate not found"})
		return
	}
	if errors.Is(err, debate.ErrInvalidStatus) || errors.Is(err, debate.ErrAlreadyRunning) ||
		errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	// Unexpected error
	s.logger.Error("unexpected service error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
