package handlers

import (
	"errors"
	"net/http"

	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/usecase"
	"agency_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapSelectionError covers the errors any selection-driven operation can return.
// ok is false when err is none of them.
func mapSelectionError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainError("UNKNOWN_SERVICE", "Unknown service", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrUnknownFeature):
		return pkg.NewDomainError("UNKNOWN_FEATURE", "Unknown feature for the selected service", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrUnknownComplexity):
		return pkg.NewDomainError("UNKNOWN_COMPLEXITY", "Unknown complexity tier", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrUnknownTimeline):
		return pkg.NewDomainError("UNKNOWN_TIMELINE", "Unknown timeline option", err, http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrUnknownCurrency):
		return pkg.NewDomainError("UNKNOWN_CURRENCY", "Unsupported currency", err, http.StatusBadRequest), true
	case errors.Is(err, pricing.ErrCatalogIntegrity):
		return pkg.NewDomainError("CATALOG_INTEGRITY", "Service catalog is inconsistent", err, http.StatusInternalServerError), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
