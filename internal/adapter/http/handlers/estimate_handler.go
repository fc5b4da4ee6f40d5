package handlers

import (
	"net/http"

	request "agency_estimator/internal/adapter/http/dto/request"
	response "agency_estimator/internal/adapter/http/dto/response"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase"
	"agency_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler prices selections without a wizard session.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     logger.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log logger.Logger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: log}
}

// Quote godoc
// @Summary Stateless quote
// @Description Prices a selection. A selection without service or complexity answers ready=false and no price.
// @Tags estimates
// @Accept json
// @Produce json
// @Param payload body request.QuoteRequest true "Selection"
// @Success 200 {object} response.EstimateResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /estimates/quote [post]
func (h *EstimateHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.Quote(c.Request.Context(), payload.ToSelection())
	if err != nil {
		appErr := mapEstimateError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.WithError(err).Error("quote failed", map[string]interface{}{"service_id": payload.ServiceID})
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateView(view))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapSelectionError(err); ok {
		return appErr
	}
	return internalError(err)
}
