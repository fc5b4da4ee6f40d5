package entities

import (
	"encoding/json"
	"time"
)

type ConsultationStatus string

const (
	ConsultationStatusDelivered ConsultationStatus = "delivered"
	ConsultationStatusFailed    ConsultationStatus = "failed"
)

// ContactDetails is what the visitor types into the booking form.
type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConsultationRequest records one hand-off of a quote to the contacts backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderResponse keeps whatever the contacts backend answered, for audit.
type ConsultationRequest struct {
	ID                string             `json:"id"`
	QuoteID           string             `json:"quote_id"`
	Contact           ContactDetails     `json:"contact"`
	Provider          string             `json:"provider"`
	ProviderReference string             `json:"provider_reference,omitempty"`
	Date              time.Time          `json:"date"`
	Status            ConsultationStatus `json:"status"`
	ProviderResponse  json.RawMessage    `json:"provider_response,omitempty"`
}

// LeadPayload is the plain-text hand-off given to the contacts collaborator.
type LeadPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
