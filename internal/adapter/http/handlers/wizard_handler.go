package handlers

import (
	"errors"
	"io"
	"net/http"

	request "agency_estimator/internal/adapter/http/dto/request"
	response "agency_estimator/internal/adapter/http/dto/response"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase"
	"agency_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes server-held wizard sessions. Every mutation answers
// the full session view, including the recomputed estimate.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
	log     logger.Logger
}

func NewWizardHandler(uc usecase.IWizardUseCase, log logger.Logger) *WizardHandler {
	return &WizardHandler{usecase: uc, log: log}
}

// StartSession godoc
// @Summary Start a wizard session
// @Description Body is optional; currency defaults to the catalog's home currency
// @Tags wizard
// @Accept json
// @Produce json
// @Param payload body request.StartSessionRequest false "Initial currency"
// @Success 201 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /wizard/sessions [post]
func (h *WizardHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.Start(c.Request.Context(), payload.ResolveCurrency())
	if err != nil {
		h.fail(c, "start", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardView(view))
}

// GetSession godoc
// @Summary Get a wizard session
// @Tags wizard
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	h.respond(c, "get", view, err)
}

// SelectService godoc
// @Summary Select a service
// @Description Clears any features picked for a previous service
// @Tags wizard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.SelectServiceRequest true "Service"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/service [put]
func (h *WizardHandler) SelectService(c *gin.Context) {
	var payload request.SelectServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.SelectService(c.Request.Context(), c.Param("session_id"), payload.ServiceID)
	h.respond(c, "select_service", view, err)
}

// SelectComplexity godoc
// @Summary Select a complexity tier
// @Tags wizard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.SelectComplexityRequest true "Tier"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/complexity [put]
func (h *WizardHandler) SelectComplexity(c *gin.Context) {
	var payload request.SelectComplexityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.SelectComplexity(c.Request.Context(), c.Param("session_id"), payload.Tier())
	h.respond(c, "select_complexity", view, err)
}

// ToggleFeature godoc
// @Summary Toggle a feature add-on
// @Tags wizard
// @Produce json
// @Param session_id path string true "Session ID"
// @Param feature_id path string true "Feature ID"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/features/{feature_id}/toggle [post]
func (h *WizardHandler) ToggleFeature(c *gin.Context) {
	view, err := h.usecase.ToggleFeature(c.Request.Context(), c.Param("session_id"), c.Param("feature_id"))
	h.respond(c, "toggle_feature", view, err)
}

// Continue godoc
// @Summary Leave the feature step
// @Tags wizard
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/continue [post]
func (h *WizardHandler) Continue(c *gin.Context) {
	view, err := h.usecase.Continue(c.Request.Context(), c.Param("session_id"))
	h.respond(c, "continue", view, err)
}

// SelectTimeline godoc
// @Summary Select a timeline
// @Tags wizard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.SelectTimelineRequest true "Timeline"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/timeline [put]
func (h *WizardHandler) SelectTimeline(c *gin.Context) {
	var payload request.SelectTimelineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.SelectTimeline(c.Request.Context(), c.Param("session_id"), payload.Option())
	h.respond(c, "select_timeline", view, err)
}

// SetCurrency godoc
// @Summary Switch display currency
// @Tags wizard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.SetCurrencyRequest true "Currency"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/currency [put]
func (h *WizardHandler) SetCurrency(c *gin.Context) {
	var payload request.SetCurrencyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.SetCurrency(c.Request.Context(), c.Param("session_id"), payload.Code())
	h.respond(c, "set_currency", view, err)
}

// Back godoc
// @Summary Go back
// @Description Without a target, returns one step. A target must be an earlier step.
// @Tags wizard
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.BackRequest false "Target step"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	var payload request.BackRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.Back(c.Request.Context(), c.Param("session_id"), payload.Target)
	h.respond(c, "back", view, err)
}

// Reset godoc
// @Summary Start over
// @Description Clears the selection and keeps the currency
// @Tags wizard
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.WizardSessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	view, err := h.usecase.Reset(c.Request.Context(), c.Param("session_id"))
	h.respond(c, "reset", view, err)
}

// EndSession godoc
// @Summary End a wizard session
// @Description Drops the session before it expires. Booked quotes stay readable.
// @Tags wizard
// @Param session_id path string true "Session ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id} [delete]
func (h *WizardHandler) EndSession(c *gin.Context) {
	if err := h.usecase.End(c.Request.Context(), c.Param("session_id")); err != nil {
		h.fail(c, "end", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respond(c *gin.Context, action string, view usecase.WizardView, err error) {
	if err != nil {
		h.fail(c, action, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizardView(view))
}

func (h *WizardHandler) fail(c *gin.Context, action string, err error) {
	appErr := mapWizardError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.WithError(err).Error("wizard action failed", map[string]interface{}{
			"action": action, "session_id": c.Param("session_id"),
		})
	}
	writeError(c, appErr)
}

func mapWizardError(err error) *pkg.AppError {
	if appErr, ok := mapSelectionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Action not allowed in the current step", err, http.StatusConflict)
	default:
		return internalError(err)
	}
}

// bindOptionalJSON accepts an empty body as the zero payload.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
