package usecase

import (
	"context"
	"fmt"
	"strconv"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/domain/wizard"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/infrastructure/metrics"
)

// Selection validation shares its sentinels with the wizard so callers can
// map both paths to the same API errors.
var (
	ErrUnknownService    = wizard.ErrUnknownService
	ErrUnknownComplexity = wizard.ErrUnknownComplexity
	ErrUnknownFeature    = wizard.ErrUnknownFeature
	ErrUnknownTimeline   = wizard.ErrUnknownTimeline
	ErrUnknownCurrency   = wizard.ErrUnknownCurrency
)

// EstimateView is a selection plus everything derived from it. Summary is
// only set once the selection is complete.
type EstimateView struct {
	Selection entities.Selection
	Result    pricing.Result
	Summary   string
}

// IEstimateUseCase prices a selection without keeping any state.
type IEstimateUseCase interface {
	Quote(ctx context.Context, sel entities.Selection) (EstimateView, error)
}

type EstimateUseCase struct {
	estimator *pricing.Estimator
	log       logger.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(estimator *pricing.Estimator, log logger.Logger) *EstimateUseCase {
	return &EstimateUseCase{estimator: estimator, log: log}
}

func (u *EstimateUseCase) Quote(_ context.Context, sel entities.Selection) (EstimateView, error) {
	sel, err := normalizeSelection(u.estimator.Catalog(), sel)
	if err != nil {
		return EstimateView{}, err
	}

	view, err := evaluate(u.estimator, sel)
	if err != nil {
		u.log.WithError(err).Error("quote evaluation failed", map[string]interface{}{"service_id": sel.ServiceID})
		return EstimateView{}, err
	}
	metrics.QuotesComputed.
		WithLabelValues(sel.ServiceID, string(view.Result.Currency), strconv.FormatBool(view.Result.Ready)).
		Inc()
	return view, nil
}

// normalizeSelection checks every id against the catalog, fills the default
// currency and drops duplicate feature ids while keeping their order.
func normalizeSelection(catalog *entities.Catalog, sel entities.Selection) (entities.Selection, error) {
	if sel.Currency == "" {
		sel.Currency = catalog.DefaultCurrency()
	}
	if _, ok := catalog.Currency(sel.Currency); !ok {
		return entities.Selection{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, sel.Currency)
	}
	if sel.Complexity != "" && !sel.Complexity.Valid() {
		return entities.Selection{}, fmt.Errorf("%w: %q", ErrUnknownComplexity, sel.Complexity)
	}
	if sel.Timeline != "" && !sel.Timeline.Valid() {
		return entities.Selection{}, fmt.Errorf("%w: %q", ErrUnknownTimeline, sel.Timeline)
	}

	var svc entities.ServiceCatalogEntry
	if sel.ServiceID != "" {
		var ok bool
		if svc, ok = catalog.Service(sel.ServiceID); !ok {
			return entities.Selection{}, fmt.Errorf("%w: %q", ErrUnknownService, sel.ServiceID)
		}
	}

	features := make([]string, 0, len(sel.Features))
	seen := make(map[string]bool, len(sel.Features))
	for _, id := range sel.Features {
		if _, ok := svc.Feature(id); !ok {
			return entities.Selection{}, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
		}
		if !seen[id] {
			seen[id] = true
			features = append(features, id)
		}
	}
	sel.Features = features
	return sel, nil
}

func evaluate(estimator *pricing.Estimator, sel entities.Selection) (EstimateView, error) {
	res, err := estimator.Evaluate(sel)
	if err != nil {
		return EstimateView{}, err
	}
	view := EstimateView{Selection: sel, Result: res}
	if sel.Complete() {
		if view.Summary, err = estimator.Summary(sel); err != nil {
			return EstimateView{}, err
		}
	}
	return view, nil
}
