package interfaces

import (
	"context"
	"time"

	"agency_estimator/internal/domain/entities"
)

// IWizardSessionRepository stores wizard sessions with a sliding TTL.
// Get returns a zero session (empty ID) when the key is missing or expired.
type IWizardSessionRepository interface {
	Save(ctx context.Context, s entities.WizardSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (entities.WizardSession, error)
	Delete(ctx context.Context, id string) error
}
