package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"agency_estimator/internal/adapter/http/handlers/mocks"
	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newConsultationRouter(uc usecase.IConsultationUseCase) *gin.Engine {
	h := NewConsultationHandler(uc, logger.NewNoOpLogger())
	r := gin.New()
	r.POST("/v1/wizard/sessions/:session_id/consultation", h.BookConsultation)
	r.GET("/v1/wizard/sessions/:session_id/quotes", h.ListSessionQuotes)
	r.GET("/v1/quotes/:quote_id", h.GetQuote)
	r.GET("/v1/quotes/:quote_id/consultations", h.ListConsultations)
	r.GET("/v1/consultations/:consultation_id", h.GetConsultation)
	return r
}

func testBooking(status entities.QuoteStatus) usecase.Booking {
	now := time.Now().UTC()
	return usecase.Booking{
		Quote: entities.Quote{ID: "q-1", SessionID: "s-1", ServiceID: "lead-capture", Point: 72000, Status: status, CreatedAt: now},
		Consultation: entities.ConsultationRequest{
			ID: "c-1", QuoteID: "q-1", Provider: "mock", Date: now,
			Contact: entities.ContactDetails{Name: "Asha", Email: "asha@example.com"},
			Status:  entities.ConsultationStatusDelivered,
		},
	}
}

func TestConsultationHandler_BookConsultation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const path = "/v1/wizard/sessions/s-1/consultation"

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)

		w := serve(newConsultationRouter(uc), http.MethodPost, path, bytes.NewBufferString(`{"name":"Asha","email":"not-an-email"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().Book(gomock.Any(), "s-1", entities.ContactDetails{Name: "Asha", Email: "asha@example.com", Message: "hello"}).
			Return(testBooking(entities.QuoteStatusSent), nil)

		w := serve(newConsultationRouter(uc), http.MethodPost, path,
			bytes.NewBufferString(`{"name":" Asha ","email":"asha@example.com","message":"hello"}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Quote        map[string]any `json:"quote"`
			Consultation map[string]any `json:"consultation"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Quote["status"] != "sent" || body.Consultation["id"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("incomplete estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().Book(gomock.Any(), "s-1", gomock.Any()).Return(usecase.Booking{}, usecase.ErrEstimateIncomplete)

		w := serve(newConsultationRouter(uc), http.MethodPost, path, bytes.NewBufferString(`{"name":"Asha","email":"asha@example.com"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		assertErrorCode(t, w, "ESTIMATE_INCOMPLETE")
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().Book(gomock.Any(), "s-1", gomock.Any()).
			Return(testBooking(entities.QuoteStatusFailed), fmt.Errorf("%w: timeout", usecase.ErrContactGatewayFailed))

		w := serve(newConsultationRouter(uc), http.MethodPost, path, bytes.NewBufferString(`{"name":"Asha","email":"asha@example.com"}`))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		assertErrorCode(t, w, "CONTACT_GATEWAY_FAILED")
	})
}

func TestConsultationHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().GetQuote(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/quotes/q-404", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		assertErrorCode(t, w, "QUOTE_NOT_FOUND")
	})

	t.Run("get quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(testBooking(entities.QuoteStatusSent).Quote, nil)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/quotes/q-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list consultations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").
			Return([]entities.ConsultationRequest{testBooking(entities.QuoteStatusSent).Consultation}, nil)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/quotes/q-1/consultations", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["email"] != "asha@example.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("consultation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.ConsultationRequest{}, usecase.ErrConsultationNotFound)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/consultations/c-404", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestConsultationHandler_ListSessionQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quotes of a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().ListQuotesBySession(gomock.Any(), "s-1").Return([]entities.Quote{
			{ID: "q-1", SessionID: "s-1", Status: entities.QuoteStatusSent},
			{ID: "q-2", SessionID: "s-1", Status: entities.QuoteStatusFailed},
		}, nil)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/wizard/sessions/s-1/quotes", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 2 || body[1]["id"] != "q-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().ListQuotesBySession(gomock.Any(), "s-2").Return([]entities.Quote{}, nil)

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/wizard/sessions/s-2/quotes", nil)
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsultationUseCase(ctrl)
		uc.EXPECT().ListQuotesBySession(gomock.Any(), "s-1").Return(nil, fmt.Errorf("dynamo: %s", "throttled"))

		w := serve(newConsultationRouter(uc), http.MethodGet, "/v1/wizard/sessions/s-1/quotes", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		assertErrorCode(t, w, "INTERNAL_ERROR")
	})
}
