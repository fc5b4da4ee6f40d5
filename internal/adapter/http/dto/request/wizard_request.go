package request

import (
	"strings"

	"agency_estimator/internal/domain/entities"
)

type StartSessionRequest struct {
	Currency string `json:"currency" example:"USD"`
}

func (r StartSessionRequest) ResolveCurrency() entities.Currency {
	return normalizeCurrency(r.Currency)
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required" example:"lead-capture"`
}

type SelectComplexityRequest struct {
	Complexity string `json:"complexity" binding:"required" example:"medium"`
}

func (r SelectComplexityRequest) Tier() entities.ComplexityTier {
	return entities.ComplexityTier(strings.ToLower(strings.TrimSpace(r.Complexity)))
}

type SelectTimelineRequest struct {
	Timeline string `json:"timeline" binding:"required" example:"urgent"`
}

func (r SelectTimelineRequest) Option() entities.TimelineOption {
	return entities.TimelineOption(strings.ToLower(strings.TrimSpace(r.Timeline)))
}

type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required" example:"USD"`
}

func (r SetCurrencyRequest) Code() entities.Currency {
	return normalizeCurrency(r.Currency)
}

// BackRequest names the step to return to; empty means one step back.
type BackRequest struct {
	Target string `json:"target" example:"select_complexity"`
}
