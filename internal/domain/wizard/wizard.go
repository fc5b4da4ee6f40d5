// Package wizard implements the four-step estimator flow.
//
// A Wizard is a step marker plus the accumulating selection. Each action is
// only accepted in its own step; anything else returns ErrInvalidTransition and
// leaves the wizard untouched. Back keeps later choices, Reset clears them.
package wizard

import (
	"errors"
	"fmt"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
)

type Step int

const (
	StepSelectService Step = iota + 1
	StepSelectComplexity
	StepSelectFeatures
	StepSelectTimeline
	StepShowEstimate
)

var stepNames = map[Step]string{
	StepSelectService:    "select_service",
	StepSelectComplexity: "select_complexity",
	StepSelectFeatures:   "select_features",
	StepSelectTimeline:   "select_timeline",
	StepShowEstimate:     "show_estimate",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) Valid() bool {
	return s >= StepSelectService && s <= StepShowEstimate
}

// ParseStep is the inverse of Step.String.
func ParseStep(name string) (Step, error) {
	for s, n := range stepNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStep, name)
}

var (
	ErrInvalidTransition = errors.New("action not allowed in current step")
	ErrInvalidStep       = errors.New("invalid wizard step")
	ErrUnknownService    = errors.New("unknown service")
	ErrUnknownComplexity = errors.New("unknown complexity tier")
	ErrUnknownFeature    = errors.New("unknown feature for selected service")
	ErrUnknownTimeline   = errors.New("unknown timeline option")
	ErrUnknownCurrency   = errors.New("unknown currency")
)

type Wizard struct {
	catalog   *entities.Catalog
	step      Step
	selection entities.Selection
}

// New starts a wizard at the first step with an empty selection in the
// catalog's default currency.
func New(catalog *entities.Catalog) *Wizard {
	return &Wizard{
		catalog:   catalog,
		step:      StepSelectService,
		selection: entities.NewSelection(catalog.DefaultCurrency()),
	}
}

// Restore rebuilds a wizard from stored state.
func Restore(catalog *entities.Catalog, step Step, sel entities.Selection) (*Wizard, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, int(step))
	}
	if sel.Currency == "" {
		sel.Currency = catalog.DefaultCurrency()
	}
	if sel.Features == nil {
		sel.Features = []string{}
	}
	return &Wizard{catalog: catalog, step: step, selection: sel.Clone()}, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

// Selection returns a copy of the current selection.
func (w *Wizard) Selection() entities.Selection {
	return w.selection.Clone()
}

// Estimate prices the current selection. It is recomputed on every call.
func (w *Wizard) Estimate(e *pricing.Estimator) (pricing.Result, error) {
	return e.Evaluate(w.selection)
}

// SelectService picks the service and drops every feature chosen so far,
// since add-ons are never shared between services.
func (w *Wizard) SelectService(id string) error {
	if w.step != StepSelectService {
		return w.invalid("select service")
	}
	if _, ok := w.catalog.Service(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	w.selection.ServiceID = id
	w.selection.Features = []string{}
	w.step = StepSelectComplexity
	return nil
}

func (w *Wizard) SelectComplexity(tier entities.ComplexityTier) error {
	if w.step != StepSelectComplexity {
		return w.invalid("select complexity")
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownComplexity, tier)
	}
	w.selection.Complexity = tier
	w.step = StepSelectFeatures
	return nil
}

// ToggleFeature adds the feature if absent and removes it otherwise.
func (w *Wizard) ToggleFeature(id string) error {
	if w.step != StepSelectFeatures {
		return w.invalid("toggle feature")
	}
	svc, ok := w.catalog.Service(w.selection.ServiceID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownService, w.selection.ServiceID)
	}
	if _, ok := svc.Feature(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}

	kept := make([]string, 0, len(w.selection.Features)+1)
	removed := false
	for _, f := range w.selection.Features {
		if f == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		kept = append(kept, id)
	}
	w.selection.Features = kept
	return nil
}

func (w *Wizard) Continue() error {
	if w.step != StepSelectFeatures {
		return w.invalid("continue")
	}
	w.step = StepSelectTimeline
	return nil
}

func (w *Wizard) SelectTimeline(t entities.TimelineOption) error {
	if w.step != StepSelectTimeline {
		return w.invalid("select timeline")
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTimeline, t)
	}
	w.selection.Timeline = t
	w.step = StepShowEstimate
	return nil
}

// Back moves one step back. Nothing already chosen is cleared.
func (w *Wizard) Back() error {
	return w.BackTo(w.step - 1)
}

// BackTo jumps to any earlier step, keeping already chosen fields.
func (w *Wizard) BackTo(target Step) error {
	if !target.Valid() || target >= w.step {
		return w.invalid("back to " + target.String())
	}
	w.step = target
	return nil
}

// Reset is only reachable from the estimate screen.
func (w *Wizard) Reset() error {
	if w.step != StepShowEstimate {
		return w.invalid("reset")
	}
	w.step = StepSelectService
	w.selection = entities.NewSelection(w.catalog.DefaultCurrency())
	return nil
}

// SetCurrency is accepted in every step and only changes price magnitude.
func (w *Wizard) SetCurrency(code entities.Currency) error {
	if _, ok := w.catalog.Currency(code); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	w.selection.Currency = code
	return nil
}

func (w *Wizard) invalid(action string) error {
	return fmt.Errorf("%w: %s while in %s", ErrInvalidTransition, action, w.step)
}
