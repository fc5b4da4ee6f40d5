package pricing

import (
	"errors"
	"strings"
	"testing"

	"agency_estimator/internal/domain/entities"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		info   entities.CurrencyInfo
		want   string
	}{
		{name: "inr thousands", amount: 72000, info: entities.CurrencyInfo{Symbol: "₹", Locale: "en-IN"}, want: "₹72,000"},
		{name: "usd millions", amount: 1234567, info: entities.CurrencyInfo{Symbol: "$", Locale: "en-US"}, want: "$1,234,567"},
		{name: "small", amount: 950, info: entities.CurrencyInfo{Symbol: "$", Locale: "en-US"}, want: "$950"},
		{name: "negative", amount: -1500, info: entities.CurrencyInfo{Symbol: "$", Locale: "en-US"}, want: "-$1,500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatAmount(tc.amount, tc.info); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEstimator_FormatCurrency_UnknownCode(t *testing.T) {
	e := newTestEstimator(t)
	if _, err := e.FormatCurrency(10, "EUR"); !errors.Is(err, ErrCatalogIntegrity) {
		t.Fatalf("expected ErrCatalogIntegrity, got %v", err)
	}
}

func TestEstimator_Evaluate(t *testing.T) {
	e := newTestEstimator(t)

	t.Run("not ready", func(t *testing.T) {
		res, err := e.Evaluate(entities.NewSelection(entities.CurrencyINR))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ready || res.Point != 0 || res.FormattedRange != "" {
			t.Fatalf("expected empty result, got %+v", res)
		}
		if res.Currency != entities.CurrencyINR {
			t.Fatalf("expected INR, got %s", res.Currency)
		}
	})

	t.Run("ready", func(t *testing.T) {
		res, err := e.Evaluate(leadCapture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Ready || !res.Complete || res.Point != 72000 {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.FormattedPoint != "₹72,000" || res.FormattedRange != "₹61,200 - ₹82,800" {
			t.Fatalf("unexpected formatting %+v", res)
		}
	})
}

func TestEstimator_Summary(t *testing.T) {
	e := newTestEstimator(t)

	t.Run("incomplete", func(t *testing.T) {
		sel := leadCapture()
		sel.Timeline = ""
		if _, err := e.Summary(sel); !errors.Is(err, ErrIncompleteSelection) {
			t.Fatalf("expected ErrIncompleteSelection, got %v", err)
		}
	})

	t.Run("lists selection", func(t *testing.T) {
		sel := leadCapture("crm-integration", "seo-setup")
		sel.Currency = entities.CurrencyUSD
		got, err := e.Summary(sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"Service: Lead Capture System",
			"Complexity: Medium",
			"Features: CRM Integration\n",
			"Timeline: Standard",
			"Estimated investment: $1,479 - $2,001",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("summary missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("no features", func(t *testing.T) {
		got, err := e.Summary(leadCapture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "Features: None") {
			t.Fatalf("unexpected summary:\n%s", got)
		}
	})
}
