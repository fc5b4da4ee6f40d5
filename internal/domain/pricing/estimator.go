// Package pricing turns an estimator selection into a price.
//
// Everything here is pure: an Estimator holds a read-only catalog handle and
// performs no I/O, so it can be shared freely between goroutines.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"agency_estimator/internal/domain/entities"
)

// DefaultRangeBand is the ± fraction used to turn a point estimate into the
// displayed range.
const DefaultRangeBand = 0.15

var (
	// ErrCatalogIntegrity means a lookup hit a hole in the catalog tables.
	ErrCatalogIntegrity = errors.New("catalog integrity violation")
	// ErrIncompleteSelection is returned by operations that need a final estimate.
	ErrIncompleteSelection = errors.New("selection is incomplete")
	ErrInvalidRangeBand    = errors.New("range band must be in [0, 1)")
)

// Range is the displayed uncertainty band around a point estimate.
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type Estimator struct {
	catalog *entities.Catalog
	band    float64
}

// NewEstimator builds an estimator over catalog. band must be in [0, 1);
// 0 collapses the display range onto the point estimate.
func NewEstimator(catalog *entities.Catalog, band float64) (*Estimator, error) {
	if band < 0 || band >= 1 {
		return nil, ErrInvalidRangeBand
	}
	return &Estimator{catalog: catalog, band: band}, nil
}

func (e *Estimator) Catalog() *entities.Catalog {
	return e.catalog
}

func (e *Estimator) RangeBand() float64 {
	return e.band
}

// Compute returns the rounded point estimate for sel.
//
// ok is false while the service or complexity is still unset; that is the
// normal state of a wizard in progress, not an error. Feature ids that do not
// belong to the selected service are skipped and repeated ids count once. An
// unset timeline prices as standard.
func (e *Estimator) Compute(sel entities.Selection) (amount int64, ok bool, err error) {
	if sel.ServiceID == "" || sel.Complexity == "" {
		return 0, false, nil
	}

	svc, found := e.catalog.Service(sel.ServiceID)
	if !found {
		return 0, false, fmt.Errorf("%w: unknown service %q", ErrCatalogIntegrity, sel.ServiceID)
	}
	currency := e.currencyOf(sel)

	base, found := svc.BasePrice[currency]
	if !found {
		return 0, false, fmt.Errorf("%w: service %q has no base price in %s", ErrCatalogIntegrity, svc.ID, currency)
	}
	multiplier, found := svc.ComplexityMultiplier[sel.Complexity]
	if !found {
		return 0, false, fmt.Errorf("%w: service %q has no multiplier for tier %q", ErrCatalogIntegrity, svc.ID, sel.Complexity)
	}

	total := float64(base) * multiplier
	seen := make(map[string]struct{}, len(sel.Features))
	for _, id := range sel.Features {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		feature, belongs := svc.Feature(id)
		if !belongs {
			continue
		}
		price, found := feature.Price[currency]
		if !found {
			return 0, false, fmt.Errorf("%w: feature %q has no price in %s", ErrCatalogIntegrity, feature.ID, currency)
		}
		total += float64(price)
	}
	total *= sel.Timeline.Multiplier()

	return int64(math.Round(total)), true, nil
}

// DisplayRange widens point by the configured band on both sides.
func (e *Estimator) DisplayRange(point int64) Range {
	return DisplayRange(point, e.band)
}

// DisplayRange widens point by band on both sides, rounding each bound to a
// whole unit.
func DisplayRange(point int64, band float64) Range {
	p := float64(point)
	return Range{
		Min: int64(math.Round(p * (1 - band))),
		Max: int64(math.Round(p * (1 + band))),
	}
}

func (e *Estimator) currencyOf(sel entities.Selection) entities.Currency {
	if sel.Currency == "" {
		return e.catalog.DefaultCurrency()
	}
	return sel.Currency
}
