package interfaces

import (
	"context"

	"agency_estimator/internal/domain/entities"
)

// IConsultationRepository abstracts DynamoDB persistence for ConsultationRequest.
type IConsultationRepository interface {
	Create(ctx context.Context, c entities.ConsultationRequest) (entities.ConsultationRequest, error)
	GetByID(ctx context.Context, id string) (entities.ConsultationRequest, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ConsultationRequest, error)
}
