package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// parseStaffRef builds a StaffRef from the :kind and :id route params.
func parseStaffRef(c *gin.Context) (domain.StaffRef, bool) {
	ref := domain.StaffRef{
		Kind: domain.StaffKind(c.Param("kind")),
		ID:   c.Param("id"),
	}
	if !domain.ValidStaffKind(ref.Kind) || ref.ID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff reference"})
		return domain.StaffRef{}, false
	}
	return ref, true
}

// respondWithError maps service errors to HTTP status codes. entity names
// the resource for not-found and duplicate messages.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidSettlement):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConcurrentModification):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "The data changed while committing, please refresh and retry"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: entity + " already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
