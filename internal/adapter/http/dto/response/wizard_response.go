package response

import (
	"time"

	"agency_estimator/internal/usecase"
)

type WizardSessionResponse struct {
	SessionID  string           `json:"session_id"`
	Step       string           `json:"step"`
	StepNumber int              `json:"step_number"`
	Estimate   EstimateResponse `json:"estimate"`
	CreatedAt  time.Time        `json:"created_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

func FromWizardView(v usecase.WizardView) WizardSessionResponse {
	return WizardSessionResponse{
		SessionID:  v.SessionID,
		Step:       v.Step.String(),
		StepNumber: int(v.Step),
		Estimate:   FromEstimateView(v.Estimate),
		CreatedAt:  v.CreatedAt,
		ExpiresAt:  v.ExpiresAt,
	}
}
