package wizard

import (
	"errors"
	"testing"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
)

func testCatalog() *entities.Catalog {
	price := func(inr, usd int64) map[entities.Currency]int64 {
		return map[entities.Currency]int64{entities.CurrencyINR: inr, entities.CurrencyUSD: usd}
	}
	multipliers := map[entities.ComplexityTier]float64{
		entities.ComplexitySimple: 1.0, entities.ComplexityMedium: 1.8, entities.ComplexityComplex: 2.8,
	}
	return entities.NewCatalog(
		[]entities.CurrencyInfo{
			{Code: entities.CurrencyINR, Symbol: "₹", Locale: "en-IN"},
			{Code: entities.CurrencyUSD, Symbol: "$", Locale: "en-US"},
		},
		nil,
		nil,
		[]entities.ServiceCatalogEntry{
			{
				ID: "lead-capture", Name: "Lead Capture System", BasePrice: price(40000, 800), ComplexityMultiplier: multipliers,
				Features: []entities.FeatureAddOn{
					{ID: "crm-integration", Name: "CRM Integration", Price: price(15000, 300)},
					{ID: "email-sequences", Name: "Email Sequences", Price: price(8000, 150)},
				},
			},
			{
				ID: "web-development", Name: "Website Development", BasePrice: price(25000, 500), ComplexityMultiplier: multipliers,
				Features: []entities.FeatureAddOn{
					{ID: "seo-setup", Name: "SEO Setup", Price: price(5000, 100)},
				},
			},
		},
	)
}

func walkToEstimate(t *testing.T, w *Wizard) {
	t.Helper()
	steps := []func() error{
		func() error { return w.SelectService("lead-capture") },
		func() error { return w.SelectComplexity(entities.ComplexityMedium) },
		func() error { return w.ToggleFeature("crm-integration") },
		w.Continue,
		func() error { return w.SelectTimeline(entities.TimelineStandard) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
}

func TestWizard_New(t *testing.T) {
	w := New(testCatalog())
	if w.Step() != StepSelectService {
		t.Fatalf("expected %s, got %s", StepSelectService, w.Step())
	}
	sel := w.Selection()
	if sel.Currency != entities.CurrencyINR || sel.ServiceID != "" || len(sel.Features) != 0 {
		t.Fatalf("unexpected initial selection %+v", sel)
	}
}

func TestWizard_HappyPath(t *testing.T) {
	w := New(testCatalog())
	walkToEstimate(t, w)

	if w.Step() != StepShowEstimate {
		t.Fatalf("expected %s, got %s", StepShowEstimate, w.Step())
	}
	sel := w.Selection()
	if sel.ServiceID != "lead-capture" || sel.Complexity != entities.ComplexityMedium ||
		sel.Timeline != entities.TimelineStandard || !sel.HasFeature("crm-integration") {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if !sel.Complete() {
		t.Fatalf("expected complete selection")
	}
}

func TestWizard_ActionsOutOfStep(t *testing.T) {
	w := New(testCatalog())

	cases := []struct {
		name string
		call func() error
	}{
		{name: "complexity before service", call: func() error { return w.SelectComplexity(entities.ComplexitySimple) }},
		{name: "toggle before features", call: func() error { return w.ToggleFeature("crm-integration") }},
		{name: "continue before features", call: w.Continue},
		{name: "timeline before step", call: func() error { return w.SelectTimeline(entities.TimelineUrgent) }},
		{name: "reset before estimate", call: w.Reset},
		{name: "back from first step", call: w.Back},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if w.Step() != StepSelectService {
				t.Fatalf("state changed to %s", w.Step())
			}
		})
	}
}

func TestWizard_UnknownValues(t *testing.T) {
	t.Run("service", func(t *testing.T) {
		w := New(testCatalog())
		if err := w.SelectService("nope"); !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
		if w.Step() != StepSelectService {
			t.Fatalf("state changed to %s", w.Step())
		}
	})

	t.Run("complexity", func(t *testing.T) {
		w := New(testCatalog())
		_ = w.SelectService("lead-capture")
		if err := w.SelectComplexity("huge"); !errors.Is(err, ErrUnknownComplexity) {
			t.Fatalf("expected ErrUnknownComplexity, got %v", err)
		}
	})

	t.Run("feature of another service", func(t *testing.T) {
		w := New(testCatalog())
		_ = w.SelectService("lead-capture")
		_ = w.SelectComplexity(entities.ComplexitySimple)
		if err := w.ToggleFeature("seo-setup"); !errors.Is(err, ErrUnknownFeature) {
			t.Fatalf("expected ErrUnknownFeature, got %v", err)
		}
	})

	t.Run("timeline", func(t *testing.T) {
		w := New(testCatalog())
		_ = w.SelectService("lead-capture")
		_ = w.SelectComplexity(entities.ComplexitySimple)
		_ = w.Continue()
		if err := w.SelectTimeline("yesterday"); !errors.Is(err, ErrUnknownTimeline) {
			t.Fatalf("expected ErrUnknownTimeline, got %v", err)
		}
	})

	t.Run("currency", func(t *testing.T) {
		w := New(testCatalog())
		if err := w.SetCurrency("EUR"); !errors.Is(err, ErrUnknownCurrency) {
			t.Fatalf("expected ErrUnknownCurrency, got %v", err)
		}
	})
}

func TestWizard_ToggleFeature(t *testing.T) {
	w := New(testCatalog())
	_ = w.SelectService("lead-capture")
	_ = w.SelectComplexity(entities.ComplexitySimple)

	_ = w.ToggleFeature("crm-integration")
	_ = w.ToggleFeature("email-sequences")
	if got := w.Selection().Features; len(got) != 2 || got[0] != "crm-integration" || got[1] != "email-sequences" {
		t.Fatalf("unexpected features %v", got)
	}

	_ = w.ToggleFeature("crm-integration")
	if got := w.Selection().Features; len(got) != 1 || got[0] != "email-sequences" {
		t.Fatalf("unexpected features %v", got)
	}
}

func TestWizard_BackKeepsFields(t *testing.T) {
	w := New(testCatalog())
	walkToEstimate(t, w)

	if err := w.Back(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != StepSelectTimeline {
		t.Fatalf("expected %s, got %s", StepSelectTimeline, w.Step())
	}
	if w.Selection().Timeline != entities.TimelineStandard {
		t.Fatalf("timeline should be kept after back")
	}

	if err := w.BackTo(StepSelectComplexity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel := w.Selection()
	if sel.Complexity != entities.ComplexityMedium || !sel.HasFeature("crm-integration") {
		t.Fatalf("fields should be kept after back: %+v", sel)
	}

	if err := w.BackTo(StepSelectTimeline); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("forward jump should be rejected, got %v", err)
	}
}

func TestWizard_ChangingServiceClearsFeatures(t *testing.T) {
	w := New(testCatalog())
	walkToEstimate(t, w)

	if err := w.BackTo(StepSelectService); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.SelectService("web-development"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel := w.Selection()
	if len(sel.Features) != 0 {
		t.Fatalf("expected features cleared, got %v", sel.Features)
	}
	if sel.Complexity != entities.ComplexityMedium || sel.Timeline != entities.TimelineStandard {
		t.Fatalf("complexity and timeline should be held over: %+v", sel)
	}
}

func TestWizard_Reset(t *testing.T) {
	w := New(testCatalog())
	walkToEstimate(t, w)
	_ = w.SetCurrency(entities.CurrencyUSD)

	if err := w.Reset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != StepSelectService {
		t.Fatalf("expected %s, got %s", StepSelectService, w.Step())
	}
	sel := w.Selection()
	if sel.ServiceID != "" || sel.Complexity != "" || sel.Timeline != "" || len(sel.Features) != 0 {
		t.Fatalf("expected cleared selection, got %+v", sel)
	}
	if sel.Currency != entities.CurrencyINR {
		t.Fatalf("expected default currency after reset, got %s", sel.Currency)
	}
}

func TestWizard_SetCurrencyKeepsStructure(t *testing.T) {
	w := New(testCatalog())
	walkToEstimate(t, w)
	before := w.Selection()

	if err := w.SetCurrency(entities.CurrencyUSD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := w.Selection()
	if after.Currency != entities.CurrencyUSD {
		t.Fatalf("expected USD, got %s", after.Currency)
	}
	if after.ServiceID != before.ServiceID || after.Complexity != before.Complexity ||
		after.Timeline != before.Timeline || len(after.Features) != len(before.Features) {
		t.Fatalf("structure changed: before=%+v after=%+v", before, after)
	}
	if w.Step() != StepShowEstimate {
		t.Fatalf("currency switch must not move the wizard")
	}
}

func TestWizard_SelectionIsCopied(t *testing.T) {
	w := New(testCatalog())
	_ = w.SelectService("lead-capture")
	_ = w.SelectComplexity(entities.ComplexitySimple)
	_ = w.ToggleFeature("crm-integration")

	sel := w.Selection()
	sel.Features[0] = "tampered"
	if w.Selection().Features[0] != "crm-integration" {
		t.Fatalf("wizard state leaked through Selection()")
	}
}

func TestRestoreAndParseStep(t *testing.T) {
	t.Run("restore", func(t *testing.T) {
		w, err := Restore(testCatalog(), StepSelectFeatures, entities.Selection{ServiceID: "lead-capture", Complexity: entities.ComplexitySimple})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Step() != StepSelectFeatures {
			t.Fatalf("unexpected step %s", w.Step())
		}
		if w.Selection().Currency != entities.CurrencyINR || w.Selection().Features == nil {
			t.Fatalf("expected defaults filled: %+v", w.Selection())
		}
	})

	t.Run("restore invalid step", func(t *testing.T) {
		if _, err := Restore(testCatalog(), Step(42), entities.Selection{}); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("parse round trip", func(t *testing.T) {
		for s := StepSelectService; s <= StepShowEstimate; s++ {
			got, err := ParseStep(s.String())
			if err != nil || got != s {
				t.Fatalf("round trip failed for %s: %v %v", s, got, err)
			}
		}
		if _, err := ParseStep("nope"); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})
}

func TestEstimate_FollowsSelection(t *testing.T) {
	cat := testCatalog()
	est, err := pricing.NewEstimator(cat, pricing.DefaultRangeBand)
	if err != nil {
		t.Fatalf("estimator: %v", err)
	}
	w := New(cat)

	res, err := w.Estimate(est)
	if err != nil || res.Ready {
		t.Fatalf("expected no estimate before a service is chosen, got %+v err=%v", res, err)
	}

	_ = w.SelectService("lead-capture")
	_ = w.SelectComplexity(entities.ComplexityMedium)
	res, err = w.Estimate(est)
	if err != nil || !res.Ready || res.Point != 72000 {
		t.Fatalf("expected 72000, got %+v err=%v", res, err)
	}

	_ = w.ToggleFeature("crm-integration")
	if res, _ = w.Estimate(est); res.Point != 87000 {
		t.Fatalf("expected 87000 after adding a feature, got %d", res.Point)
	}

	_ = w.SetCurrency(entities.CurrencyUSD)
	if res, _ = w.Estimate(est); res.Point != 1740 || res.Currency != entities.CurrencyUSD {
		t.Fatalf("expected 1740 USD, got %d %s", res.Point, res.Currency)
	}
}
