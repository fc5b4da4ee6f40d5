package handlers

import (
	"errors"
	"net/http"

	response "agency_estimator/internal/adapter/http/dto/response"
	"agency_estimator/internal/usecase"
	"agency_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary List services
// @Description Every service offered by the agency, with its price tables and add-ons
// @Tags catalog
// @Produce json
// @Success 200 {array} response.ServiceResponse
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.usecase.ListServices()))
}

// GetService godoc
// @Summary Get a service
// @Tags catalog
// @Produce json
// @Param service_id path string true "Service ID"
// @Success 200 {object} response.ServiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /catalog/services/{service_id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Param("service_id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// Options godoc
// @Summary Wizard options
// @Description Complexity tiers, timelines and currencies, with the default currency and range band
// @Tags catalog
// @Produce json
// @Success 200 {object} response.CatalogOptionsResponse
// @Router /catalog/options [get]
func (h *CatalogHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalogOptions(h.usecase.Options()))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
