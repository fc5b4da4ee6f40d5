package interfaces

import (
	"context"
	"encoding/json"

	"agency_estimator/internal/domain/entities"
)

// IContactGateway hands a consultation lead to the contacts collaborator
// (the agency REST backend or an email inbox).
//
// The provider response is kept verbatim on the consultation record.
type IContactGateway interface {
	Provider() string
	SubmitLead(ctx context.Context, lead entities.LeadPayload) (providerReference string, providerStatus string, providerResponse json.RawMessage, err error)
}
