package handlers

import (
	"errors"
	"net/http"

	request "agency_estimator/internal/adapter/http/dto/request"
	response "agency_estimator/internal/adapter/http/dto/response"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase"
	"agency_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler hands finished estimates to the agency and exposes
// the stored quote snapshots.
type ConsultationHandler struct {
	usecase usecase.IConsultationUseCase
	log     logger.Logger
}

func NewConsultationHandler(uc usecase.IConsultationUseCase, log logger.Logger) *ConsultationHandler {
	return &ConsultationHandler{usecase: uc, log: log}
}

// BookConsultation godoc
// @Summary Book a consultation
// @Description Snapshots the session's estimate as a quote and sends it with the contact details to the agency
// @Tags consultations
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param payload body request.BookConsultationRequest true "Contact details"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/consultation [post]
func (h *ConsultationHandler) BookConsultation(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.BookConsultationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	booking, err := h.usecase.Book(c.Request.Context(), sessionID, payload.ToContact())
	if err != nil {
		appErr := mapConsultationError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.WithError(err).Error("consultation booking failed", map[string]interface{}{
				"session_id": sessionID, "quote_id": booking.Quote.ID,
			})
		}
		writeError(c, appErr)
		return
	}
	h.log.Info("consultation booked", map[string]interface{}{
		"session_id": sessionID, "quote_id": booking.Quote.ID, "consultation_id": booking.Consultation.ID,
	})

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// GetQuote godoc
// @Summary Get a quote snapshot
// @Tags consultations
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{quote_id} [get]
func (h *ConsultationHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapConsultationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListSessionQuotes godoc
// @Summary List quotes booked from a wizard session
// @Tags consultations
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /wizard/sessions/{session_id}/quotes [get]
func (h *ConsultationHandler) ListSessionQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotesBySession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapConsultationError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.WithError(err).Error("listing session quotes failed", map[string]interface{}{"session_id": c.Param("session_id")})
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ListConsultations godoc
// @Summary List hand-offs of a quote
// @Tags consultations
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 200 {array} response.ConsultationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{quote_id}/consultations [get]
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	list, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapConsultationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsultations(list))
}

// GetConsultation godoc
// @Summary Get one consultation record
// @Tags consultations
// @Produce json
// @Param consultation_id path string true "Consultation ID"
// @Success 200 {object} response.ConsultationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /consultations/{consultation_id} [get]
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("consultation_id"))
	if err != nil {
		writeError(c, mapConsultationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsultation(rec))
}

func mapConsultationError(err error) *pkg.AppError {
	if appErr, ok := mapSelectionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidConsultationID), errors.Is(err, usecase.ErrInvalidContact),
		errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsultationNotFound):
		return pkg.NewDomainErrorSimple("CONSULTATION_NOT_FOUND", "Consultation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateIncomplete):
		return pkg.NewDomainErrorSimple("ESTIMATE_INCOMPLETE", "Finish the estimate before booking a consultation", http.StatusConflict)
	case errors.Is(err, usecase.ErrContactGatewayFailed):
		return pkg.NewDomainError("CONTACT_GATEWAY_FAILED", "The consultation request could not be delivered", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
