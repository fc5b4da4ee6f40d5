package response

import (
	"encoding/json"
	"time"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase"
)

type QuoteResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id,omitempty"`
	ServiceID  string    `json:"service_id"`
	Complexity string    `json:"complexity"`
	Features   []string  `json:"features"`
	Timeline   string    `json:"timeline"`
	Currency   string    `json:"currency"`
	Point      int64     `json:"point"`
	Min        int64     `json:"min"`
	Max        int64     `json:"max"`
	Summary    string    `json:"summary"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	features := q.Features
	if features == nil {
		features = []string{}
	}
	return QuoteResponse{
		ID:         q.ID,
		SessionID:  q.SessionID,
		ServiceID:  q.ServiceID,
		Complexity: string(q.Complexity),
		Features:   features,
		Timeline:   string(q.Timeline),
		Currency:   string(q.Currency),
		Point:      q.Point,
		Min:        q.Min,
		Max:        q.Max,
		Summary:    q.Summary,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(list []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuote(q))
	}
	return out
}

type ConsultationResponse struct {
	ID                string          `json:"id"`
	QuoteID           string          `json:"quote_id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Provider          string          `json:"provider"`
	ProviderReference string          `json:"provider_reference,omitempty"`
	Status            string          `json:"status"`
	Date              time.Time       `json:"date"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty" swaggertype:"object"`
}

func FromConsultation(c entities.ConsultationRequest) ConsultationResponse {
	return ConsultationResponse{
		ID:                c.ID,
		QuoteID:           c.QuoteID,
		Name:              c.Contact.Name,
		Email:             c.Contact.Email,
		Phone:             c.Contact.Phone,
		Provider:          c.Provider,
		ProviderReference: c.ProviderReference,
		Status:            string(c.Status),
		Date:              c.Date,
		ProviderResponse:  c.ProviderResponse,
	}
}

func FromConsultations(list []entities.ConsultationRequest) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromConsultation(c))
	}
	return out
}

type BookingResponse struct {
	Quote        QuoteResponse        `json:"quote"`
	Consultation ConsultationResponse `json:"consultation"`
}

func FromBooking(b usecase.Booking) BookingResponse {
	return BookingResponse{Quote: FromQuote(b.Quote), Consultation: FromConsultation(b.Consultation)}
}
