package response

import (
	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase"
)

type SelectionResponse struct {
	ServiceID  string   `json:"service_id,omitempty"`
	Complexity string   `json:"complexity,omitempty"`
	Features   []string `json:"features"`
	Timeline   string   `json:"timeline,omitempty"`
	Currency   string   `json:"currency"`
}

func FromSelection(s entities.Selection) SelectionResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	return SelectionResponse{
		ServiceID:  s.ServiceID,
		Complexity: string(s.Complexity),
		Features:   features,
		Timeline:   string(s.Timeline),
		Currency:   string(s.Currency),
	}
}

// EstimateResponse carries no amounts while Ready is false.
type EstimateResponse struct {
	Ready          bool              `json:"ready"`
	Complete       bool              `json:"complete"`
	Currency       string            `json:"currency"`
	Point          int64             `json:"point,omitempty"`
	Min            int64             `json:"min,omitempty"`
	Max            int64             `json:"max,omitempty"`
	FormattedPoint string            `json:"formatted_point,omitempty"`
	FormattedRange string            `json:"formatted_range,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Selection      SelectionResponse `json:"selection"`
}

func FromEstimateView(v usecase.EstimateView) EstimateResponse {
	res := EstimateResponse{
		Ready:     v.Result.Ready,
		Complete:  v.Result.Complete,
		Currency:  string(v.Result.Currency),
		Summary:   v.Summary,
		Selection: FromSelection(v.Selection),
	}
	if v.Result.Ready {
		res.Point = v.Result.Point
		res.Min = v.Result.Range.Min
		res.Max = v.Result.Range.Max
		res.FormattedPoint = v.Result.FormattedPoint
		res.FormattedRange = v.Result.FormattedRange
	}
	return res
}
