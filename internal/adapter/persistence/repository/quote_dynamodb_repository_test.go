package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"agency_estimator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote(id, sessionID string, created time.Time) entities.Quote {
	return entities.Quote{
		ID:         id,
		SessionID:  sessionID,
		ServiceID:  "lead-capture",
		Complexity: entities.ComplexityMedium,
		Features:   []string{"crm-integration"},
		Timeline:   entities.TimelineStandard,
		Currency:   entities.CurrencyINR,
		Point:      87000,
		Min:        73950,
		Max:        100050,
		Summary:    "Project estimate",
		Status:     entities.QuoteStatusPending,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestQuoteDynamoRepository(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("create and get", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
		q := sampleQuote("q-1", "s-1", t0)

		_, err := repo.Create(ctx, q)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "q-1")
		require.NoError(t, err)
		assert.Equal(t, q.ID, got.ID)
		assert.Equal(t, q.Features, got.Features)
		assert.Equal(t, int64(87000), got.Point)
		assert.Equal(t, entities.ComplexityMedium, got.Complexity)
		assert.True(t, t0.Equal(got.CreatedAt))
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
		_, err := repo.Create(ctx, sampleQuote("q-1", "s-1", t0))
		require.NoError(t, err)
		_, err = repo.Create(ctx, sampleQuote("q-1", "s-1", t0))
		assert.Error(t, err)
	})

	t.Run("missing id yields zero quote", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list by session sorted oldest first", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewQuoteDynamoRepository(fake, "quotes")
		_, _ = repo.Create(ctx, sampleQuote("q-late", "s-1", t0.Add(time.Hour)))
		_, _ = repo.Create(ctx, sampleQuote("q-early", "s-1", t0))
		_, _ = repo.Create(ctx, sampleQuote("q-other", "s-2", t0))

		got, err := repo.ListBySessionID(ctx, "s-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "q-early", got[0].ID)
		assert.Equal(t, "q-late", got[1].ID)
		require.NotEmpty(t, fake.queries)
		assert.Equal(t, quotesSessionIDIndex, aws.ToString(fake.queries[0].IndexName))
	})

	t.Run("update status", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
		_, _ = repo.Create(ctx, sampleQuote("q-1", "s-1", t0))

		prev := nowFunc
		nowFunc = func() time.Time { return t0.Add(time.Minute) }
		defer func() { nowFunc = prev }()

		got, err := repo.UpdateStatusByID(ctx, "q-1", entities.QuoteStatusSent)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusSent, got.Status)
		assert.True(t, t0.Add(time.Minute).Equal(got.UpdatedAt))
		assert.Equal(t, int64(87000), got.Point)
	})

	t.Run("update missing id yields zero quote", func(t *testing.T) {
		repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
		got, err := repo.UpdateStatusByID(ctx, "nope", entities.QuoteStatusSent)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.err = errors.New("throttled")
		repo := NewQuoteDynamoRepository(fake, "quotes")
		_, err := repo.GetByID(ctx, "q-1")
		assert.Error(t, err)
		_, err = repo.ListBySessionID(ctx, "s-1")
		assert.Error(t, err)
	})
}
