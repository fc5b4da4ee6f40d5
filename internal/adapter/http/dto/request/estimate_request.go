package request

import (
	"strings"

	"agency_estimator/internal/domain/entities"
)

// QuoteRequest prices an arbitrary selection without a wizard session.
// Every field is optional; missing service or complexity yields no estimate.
type QuoteRequest struct {
	ServiceID  string   `json:"service_id" example:"lead-capture"`
	Complexity string   `json:"complexity" example:"medium"`
	Features   []string `json:"features" example:"crm-integration"`
	Timeline   string   `json:"timeline" example:"standard"`
	Currency   string   `json:"currency" example:"INR"`
}

func (r QuoteRequest) ToSelection() entities.Selection {
	features := make([]string, 0, len(r.Features))
	for _, f := range r.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return entities.Selection{
		ServiceID:  strings.TrimSpace(r.ServiceID),
		Complexity: entities.ComplexityTier(strings.ToLower(strings.TrimSpace(r.Complexity))),
		Features:   features,
		Timeline:   entities.TimelineOption(strings.ToLower(strings.TrimSpace(r.Timeline))),
		Currency:   normalizeCurrency(r.Currency),
	}
}

func normalizeCurrency(code string) entities.Currency {
	return entities.Currency(strings.ToUpper(strings.TrimSpace(code)))
}
