package usecase

import (
	"testing"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/infrastructure/catalog"
)

func newTestEstimator(t *testing.T) *pricing.Estimator {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	e, err := pricing.NewEstimator(c, pricing.DefaultRangeBand)
	if err != nil {
		t.Fatalf("building estimator: %v", err)
	}
	return e
}

func leadCaptureSelection(features ...string) entities.Selection {
	sel := entities.NewSelection(entities.CurrencyINR)
	sel.ServiceID = "lead-capture"
	sel.Complexity = entities.ComplexityMedium
	sel.Timeline = entities.TimelineStandard
	sel.Features = append(sel.Features, features...)
	return sel
}
