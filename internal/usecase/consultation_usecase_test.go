package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/wizard"
	"agency_estimator/internal/infrastructure/logger"
	mock_interfaces "agency_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type consultationMocks struct {
	sessions      *mock_interfaces.MockIWizardSessionRepository
	quotes        *mock_interfaces.MockIQuoteRepository
	consultations *mock_interfaces.MockIConsultationRepository
	gateway       *mock_interfaces.MockIContactGateway
}

func newConsultationUseCase(t *testing.T, ctrl *gomock.Controller) (*ConsultationUseCase, consultationMocks) {
	m := consultationMocks{
		sessions:      mock_interfaces.NewMockIWizardSessionRepository(ctrl),
		quotes:        mock_interfaces.NewMockIQuoteRepository(ctrl),
		consultations: mock_interfaces.NewMockIConsultationRepository(ctrl),
		gateway:       mock_interfaces.NewMockIContactGateway(ctrl),
	}
	uc := NewConsultationUseCase(m.sessions, m.quotes, m.consultations, m.gateway, newTestEstimator(t), logger.NewNoOpLogger())
	return uc, m
}

var visitor = entities.ContactDetails{Name: " Asha ", Email: "asha@example.com", Message: "Call after 5pm"}

func TestConsultationUseCase_Book_Validation(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil, nil, nil, newTestEstimator(t), logger.NewNoOpLogger())
		_, err := uc.Book(context.Background(), "", visitor)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("missing contact", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil, nil, nil, newTestEstimator(t), logger.NewNoOpLogger())
		_, err := uc.Book(context.Background(), "s-1", entities.ContactDetails{Name: "Asha"})
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(entities.WizardSession{}, nil)

		_, err := uc.Book(context.Background(), "s-1", visitor)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("estimate not reached yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(storedSession(wizard.StepSelectTimeline, leadCaptureSelection()), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Book(context.Background(), "s-1", visitor)
		if !errors.Is(err, ErrEstimateIncomplete) {
			t.Fatalf("expected ErrEstimateIncomplete, got %v", err)
		}
	})
}

func TestConsultationUseCase_Book(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)

		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(storedSession(wizard.StepShowEstimate, leadCaptureSelection("crm-integration")), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.SessionID != "s-1" || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Point != 87000 || q.Min != 73950 || q.Max != 100050 || q.Currency != entities.CurrencyINR {
					t.Fatalf("unexpected amounts: %+v", q)
				}
				return q, nil
			},
		)
		m.gateway.EXPECT().SubmitLead(gomock.Any(), gomock.AssignableToTypeOf(entities.LeadPayload{})).DoAndReturn(
			func(_ context.Context, lead entities.LeadPayload) (string, string, json.RawMessage, error) {
				if lead.Name != "Asha" || lead.Subject != "Consultation request: Lead Capture System" {
					t.Fatalf("unexpected lead: %+v", lead)
				}
				if !strings.Contains(lead.Message, "Features: CRM Integration") || !strings.HasSuffix(lead.Message, "Call after 5pm") {
					t.Fatalf("unexpected message: %q", lead.Message)
				}
				return "c-42", "accepted", json.RawMessage(`{"id":"c-42"}`), nil
			},
		)
		m.gateway.EXPECT().Provider().Return("http")
		m.consultations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ConsultationRequest{})).DoAndReturn(
			func(_ context.Context, c entities.ConsultationRequest) (entities.ConsultationRequest, error) {
				if c.Status != entities.ConsultationStatusDelivered || c.ProviderReference != "c-42" || c.Provider != "http" {
					t.Fatalf("unexpected consultation: %+v", c)
				}
				return c, nil
			},
		)
		m.quotes.EXPECT().UpdateStatusByID(gomock.Any(), gomock.Any(), entities.QuoteStatusSent).DoAndReturn(
			func(_ context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
				return entities.Quote{ID: id, Status: status, Point: 87000}, nil
			},
		)

		b, err := uc.Book(context.Background(), "s-1", visitor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Quote.Status != entities.QuoteStatusSent || b.Consultation.QuoteID != b.Quote.ID {
			t.Fatalf("unexpected booking: %+v", b)
		}
	})

	t.Run("gateway failure is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)

		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(storedSession(wizard.StepShowEstimate, leadCaptureSelection()), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.gateway.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("503"))
		m.gateway.EXPECT().Provider().Return("http")
		m.consultations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ConsultationRequest) (entities.ConsultationRequest, error) {
				if c.Status != entities.ConsultationStatusFailed || !json.Valid(c.ProviderResponse) {
					t.Fatalf("unexpected consultation: %+v", c)
				}
				return c, nil
			},
		)
		m.quotes.EXPECT().UpdateStatusByID(gomock.Any(), gomock.Any(), entities.QuoteStatusFailed).Return(entities.Quote{}, nil)

		b, err := uc.Book(context.Background(), "s-1", visitor)
		if !errors.Is(err, ErrContactGatewayFailed) {
			t.Fatalf("expected ErrContactGatewayFailed, got %v", err)
		}
		if b.Quote.Status != entities.QuoteStatusFailed {
			t.Fatalf("expected failed quote, got %+v", b.Quote)
		}
	})

	t.Run("quote store error stops the hand-off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)

		m.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(storedSession(wizard.StepShowEstimate, leadCaptureSelection()), nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))
		m.gateway.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Book(context.Background(), "s-1", visitor)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestConsultationUseCase_Reads(t *testing.T) {
	t.Run("get quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("get quote invalid", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil, nil, nil, newTestEstimator(t), logger.NewNoOpLogger())
		_, err := uc.GetQuote(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("list by quote requires the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)
		m.consultations.EXPECT().ListByQuoteID(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.ListByQuoteID(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("list by quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.consultations.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.ConsultationRequest{{ID: "c-1"}}, nil)

		list, err := uc.ListByQuoteID(context.Background(), " q-1 ")
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result: %v %v", list, err)
		}
	})

	t.Run("get consultation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.consultations.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ConsultationRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrConsultationNotFound) {
			t.Fatalf("expected ErrConsultationNotFound, got %v", err)
		}
	})
}

func TestConsultationUseCase_ListQuotesBySession(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil, nil, nil, newTestEstimator(t), logger.NewNoOpLogger())
		_, err := uc.ListQuotesBySession(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("returns stored quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		quotes, err := uc.ListQuotesBySession(context.Background(), " s-1 ")
		if err != nil || len(quotes) != 2 || quotes[1].ID != "q-2" {
			t.Fatalf("unexpected result: %v %v", quotes, err)
		}
	})

	t.Run("no quotes is an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return(nil, nil)

		quotes, err := uc.ListQuotesBySession(context.Background(), "s-1")
		if err != nil || quotes == nil || len(quotes) != 0 {
			t.Fatalf("expected empty list, got %v %v", quotes, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newConsultationUseCase(t, ctrl)
		m.quotes.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return(nil, errors.New("dynamo"))

		if _, err := uc.ListQuotesBySession(context.Background(), "s-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
