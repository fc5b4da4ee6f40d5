package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/domain/wizard"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/infrastructure/metrics"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateIncomplete    = errors.New("estimate incomplete")
	ErrInvalidContact        = errors.New("invalid contact details")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrConsultationNotFound  = errors.New("consultation not found")
	ErrInvalidConsultationID = errors.New("invalid consultation id")
	ErrContactGatewayFailed  = errors.New("contact gateway failed")
)

// Booking is the outcome of a successful hand-off.
type Booking struct {
	Quote        entities.Quote
	Consultation entities.ConsultationRequest
}

// IConsultationUseCase is the one-way "book a consultation" hand-off.
//
// Book snapshots the session's estimate as a Quote, sends the plain-text
// summary to the contacts collaborator and records what it answered. The
// quote ends up "sent", or "failed" when the collaborator errors.
type IConsultationUseCase interface {
	Book(ctx context.Context, sessionID string, contact entities.ContactDetails) (Booking, error)
	GetByID(ctx context.Context, id string) (entities.ConsultationRequest, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ConsultationRequest, error)
	ListQuotesBySession(ctx context.Context, sessionID string) ([]entities.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (entities.Quote, error)
}

type ConsultationUseCase struct {
	sessions      interfaces.IWizardSessionRepository
	quotes        interfaces.IQuoteRepository
	consultations interfaces.IConsultationRepository
	gateway       interfaces.IContactGateway
	estimator     *pricing.Estimator
	log           logger.Logger
}

var _ IConsultationUseCase = (*ConsultationUseCase)(nil)

func NewConsultationUseCase(
	sessions interfaces.IWizardSessionRepository,
	quotes interfaces.IQuoteRepository,
	consultations interfaces.IConsultationRepository,
	gateway interfaces.IContactGateway,
	estimator *pricing.Estimator,
	log logger.Logger,
) *ConsultationUseCase {
	return &ConsultationUseCase{
		sessions:      sessions,
		quotes:        quotes,
		consultations: consultations,
		gateway:       gateway,
		estimator:     estimator,
		log:           log,
	}
}

func (u *ConsultationUseCase) Book(ctx context.Context, sessionID string, contact entities.ContactDetails) (Booking, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Booking{}, ErrInvalidSessionID
	}
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)
	if contact.Name == "" || contact.Email == "" {
		return Booking{}, ErrInvalidContact
	}
	if u.gateway == nil {
		return Booking{}, errors.New("contact gateway not configured")
	}
	log := u.log.WithFields(map[string]interface{}{"session_id": sessionID})

	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return Booking{}, err
	}
	if s.ID == "" {
		return Booking{}, ErrSessionNotFound
	}
	step, err := wizard.ParseStep(s.Step)
	if err != nil {
		return Booking{}, err
	}
	if step != wizard.StepShowEstimate || !s.Selection.Complete() {
		return Booking{}, ErrEstimateIncomplete
	}

	sel := s.Selection
	view, err := evaluate(u.estimator, sel)
	if err != nil {
		log.WithError(err).Error("snapshot evaluation failed", nil)
		return Booking{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		SessionID:  s.ID,
		ServiceID:  sel.ServiceID,
		Complexity: sel.Complexity,
		Features:   append([]string{}, sel.Features...),
		Timeline:   sel.Timeline,
		Currency:   view.Result.Currency,
		Point:      view.Result.Point,
		Min:        view.Result.Range.Min,
		Max:        view.Result.Range.Max,
		Summary:    view.Summary,
		Status:     entities.QuoteStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if q, err = u.quotes.Create(ctx, q); err != nil {
		log.WithError(err).Error("quote snapshot failed", nil)
		return Booking{}, err
	}
	log = log.WithFields(map[string]interface{}{"quote_id": q.ID})

	ref, providerStatus, providerResp, gwErr := u.gateway.SubmitLead(ctx, leadFor(u.estimator.Catalog(), sel, contact, view.Summary))

	c := entities.ConsultationRequest{
		ID:                uuid.NewString(),
		QuoteID:           q.ID,
		Contact:           contact,
		Provider:          u.gateway.Provider(),
		ProviderReference: ref,
		Date:              time.Now().UTC(),
		Status:            entities.ConsultationStatusDelivered,
		ProviderResponse:  providerResp,
	}
	quoteStatus := entities.QuoteStatusSent
	if gwErr != nil {
		log.WithError(gwErr).Warn("contact hand-off failed", map[string]interface{}{"provider": c.Provider})
		c.Status = entities.ConsultationStatusFailed
		c.ProviderResponse, _ = json.Marshal(map[string]string{"error": gwErr.Error()})
		quoteStatus = entities.QuoteStatusFailed
	}
	metrics.ConsultationsBooked.WithLabelValues(c.Provider, metrics.Outcome(gwErr)).Inc()

	if c, err = u.consultations.Create(ctx, c); err != nil {
		log.WithError(err).Error("consultation record failed", nil)
		return Booking{}, err
	}

	updated, err := u.quotes.UpdateStatusByID(ctx, q.ID, quoteStatus)
	if err != nil {
		return Booking{}, err
	}
	if updated.ID != "" {
		q = updated
	} else {
		q.Status = quoteStatus
	}

	if gwErr != nil {
		return Booking{Quote: q, Consultation: c}, fmt.Errorf("%w: %v", ErrContactGatewayFailed, gwErr)
	}
	log.Info("consultation booked", map[string]interface{}{
		"consultation_id": c.ID, "provider": c.Provider, "provider_status": providerStatus,
	})
	return Booking{Quote: q, Consultation: c}, nil
}

func leadFor(catalog *entities.Catalog, sel entities.Selection, contact entities.ContactDetails, summary string) entities.LeadPayload {
	subject := "Consultation request"
	if svc, ok := catalog.Service(sel.ServiceID); ok {
		subject += ": " + svc.Name
	}
	message := summary
	if note := strings.TrimSpace(contact.Message); note != "" {
		message += "\n\nMessage from visitor:\n" + note
	}
	return entities.LeadPayload{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Subject: subject,
		Message: message,
	}
}

func (u *ConsultationUseCase) GetByID(ctx context.Context, id string) (entities.ConsultationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConsultationRequest{}, ErrInvalidConsultationID
	}

	c, err := u.consultations.GetByID(ctx, id)
	if err != nil {
		return entities.ConsultationRequest{}, err
	}
	if c.ID == "" {
		return entities.ConsultationRequest{}, ErrConsultationNotFound
	}
	return c, nil
}

func (u *ConsultationUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ConsultationRequest, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	if _, err := u.GetQuote(ctx, quoteID); err != nil {
		return nil, err
	}
	return u.consultations.ListByQuoteID(ctx, quoteID)
}

// ListQuotesBySession returns the quotes booked from one wizard session. The
// session itself may already have expired.
func (u *ConsultationUseCase) ListQuotesBySession(ctx context.Context, sessionID string) ([]entities.Quote, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	quotes, err := u.quotes.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return quotes, nil
}

func (u *ConsultationUseCase) GetQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
