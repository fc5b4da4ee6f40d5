package interfaces

import (
	"context"

	"agency_estimator/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote snapshots.
//
// Lookups that find nothing return a zero Quote and a nil error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
