package pricing

import (
	"fmt"
	"strings"

	"agency_estimator/internal/domain/entities"
)

// Result is everything a client needs to render the estimate for a selection.
// When Ready is false no price fields are set.
type Result struct {
	Ready          bool              `json:"ready"`
	Complete       bool              `json:"complete"`
	Currency       entities.Currency `json:"currency"`
	Point          int64             `json:"point,omitempty"`
	Range          Range             `json:"range"`
	FormattedPoint string            `json:"formatted_point,omitempty"`
	FormattedRange string            `json:"formatted_range,omitempty"`
}

// Evaluate derives the displayable estimate from the current selection.
func (e *Estimator) Evaluate(sel entities.Selection) (Result, error) {
	currency := e.currencyOf(sel)
	res := Result{Currency: currency, Complete: sel.Complete()}

	point, ok, err := e.Compute(sel)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return res, nil
	}

	res.Ready = true
	res.Point = point
	res.Range = e.DisplayRange(point)
	if res.FormattedPoint, err = e.FormatCurrency(point, currency); err != nil {
		return Result{}, err
	}
	if res.FormattedRange, err = e.FormatRange(res.Range, currency); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Summary composes the plain-text block handed to the contacts backend when a
// visitor books a consultation. The selection must be complete.
func (e *Estimator) Summary(sel entities.Selection) (string, error) {
	if !sel.Complete() {
		return "", ErrIncompleteSelection
	}
	res, err := e.Evaluate(sel)
	if err != nil {
		return "", err
	}

	svc, _ := e.catalog.Service(sel.ServiceID)
	tierName := string(sel.Complexity)
	if tier, ok := e.catalog.Tier(sel.Complexity); ok {
		tierName = tier.Name
	}
	timelineName := string(sel.Timeline)
	if tl, ok := e.catalog.Timeline(sel.Timeline); ok {
		timelineName = tl.Name
	}

	features := make([]string, 0, len(sel.Features))
	for _, id := range sel.Features {
		if f, ok := svc.Feature(id); ok {
			features = append(features, f.Name)
		}
	}
	featureLine := "None"
	if len(features) > 0 {
		featureLine = strings.Join(features, ", ")
	}

	var b strings.Builder
	b.WriteString("Project estimate\n")
	fmt.Fprintf(&b, "Service: %s\n", svc.Name)
	fmt.Fprintf(&b, "Complexity: %s\n", tierName)
	fmt.Fprintf(&b, "Features: %s\n", featureLine)
	fmt.Fprintf(&b, "Timeline: %s\n", timelineName)
	fmt.Fprintf(&b, "Estimated investment: %s", res.FormattedRange)
	return b.String(), nil
}
