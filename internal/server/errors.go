package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshills/codecloak/internal/redact"
	"github.com/dshills/codecloak/internal/service"
	"github.com/dshills/codecloak/internal/store"
)

// NoContextMessage is returned when decloak has nothing to restore with.
const NoContextMessage = "No cloak context found. Run cloak first."

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, store.ErrNoContext) {
		return http.StatusNotFound, NoContextMessage
	}
	if errors.Is(err, redact.ErrPathRedacted) {
		return http.StatusBadRequest, err.Error()
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

func abortWithError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.JSON(status, gin.H{"error": msg})
}
