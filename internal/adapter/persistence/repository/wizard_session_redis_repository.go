package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const wizardSessionKeyPrefix = "estimator:wizard:session:"

// WizardSessionRedisRepository keeps wizard sessions as JSON strings. Every
// Save refreshes the expiry, so an active visitor never loses a session.
type WizardSessionRedisRepository struct {
	rdb redis.Cmdable
}

var _ interfaces.IWizardSessionRepository = (*WizardSessionRedisRepository)(nil)

func NewWizardSessionRedisRepository(rdb redis.Cmdable) *WizardSessionRedisRepository {
	return &WizardSessionRedisRepository{rdb: rdb}
}

func (r *WizardSessionRedisRepository) Save(ctx context.Context, s entities.WizardSession, ttl time.Duration) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, wizardSessionKey(s.ID), b, ttl).Err()
}

func (r *WizardSessionRedisRepository) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	b, err := r.rdb.Get(ctx, wizardSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.WizardSession{}, nil
	}
	if err != nil {
		return entities.WizardSession{}, err
	}

	var s entities.WizardSession
	if err := json.Unmarshal(b, &s); err != nil {
		return entities.WizardSession{}, err
	}
	if s.Selection.Features == nil {
		s.Selection.Features = []string{}
	}
	return s, nil
}

func (r *WizardSessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, wizardSessionKey(id)).Err()
}

func wizardSessionKey(id string) string {
	return wizardSessionKeyPrefix + id
}
