package response

import (
	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase"
)

type FeatureResponse struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Price map[string]int64 `json:"price"`
}

type ServiceResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	BasePrice            map[string]int64   `json:"base_price"`
	ComplexityMultiplier map[string]float64 `json:"complexity_multiplier"`
	Features             []FeatureResponse  `json:"features"`
}

func FromService(s entities.ServiceCatalogEntry) ServiceResponse {
	features := make([]FeatureResponse, 0, len(s.Features))
	for _, f := range s.Features {
		features = append(features, FeatureResponse{ID: f.ID, Name: f.Name, Price: priceTable(f.Price)})
	}
	multipliers := make(map[string]float64, len(s.ComplexityMultiplier))
	for tier, m := range s.ComplexityMultiplier {
		multipliers[string(tier)] = m
	}
	return ServiceResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		BasePrice:            priceTable(s.BasePrice),
		ComplexityMultiplier: multipliers,
		Features:             features,
	}
}

func FromServices(list []entities.ServiceCatalogEntry) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

type TierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TimelineResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
}

type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Locale string `json:"locale"`
}

type CatalogOptionsResponse struct {
	Tiers           []TierResponse     `json:"complexity_tiers"`
	Timelines       []TimelineResponse `json:"timelines"`
	Currencies      []CurrencyResponse `json:"currencies"`
	DefaultCurrency string             `json:"default_currency"`
	RangeBand       float64            `json:"range_band"`
}

func FromCatalogOptions(o usecase.CatalogOptions) CatalogOptionsResponse {
	res := CatalogOptionsResponse{
		Tiers:           make([]TierResponse, 0, len(o.Tiers)),
		Timelines:       make([]TimelineResponse, 0, len(o.Timelines)),
		Currencies:      make([]CurrencyResponse, 0, len(o.Currencies)),
		DefaultCurrency: string(o.DefaultCurrency),
		RangeBand:       o.RangeBand,
	}
	for _, t := range o.Tiers {
		res.Tiers = append(res.Tiers, TierResponse{ID: string(t.ID), Name: t.Name, Description: t.Description})
	}
	for _, t := range o.Timelines {
		res.Timelines = append(res.Timelines, TimelineResponse{
			ID:          string(t.ID),
			Name:        t.Name,
			Description: t.Description,
			Multiplier:  t.ID.Multiplier(),
		})
	}
	for _, c := range o.Currencies {
		res.Currencies = append(res.Currencies, CurrencyResponse{Code: string(c.Code), Symbol: c.Symbol, Locale: c.Locale})
	}
	return res
}

func priceTable(in map[entities.Currency]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for code, amount := range in {
		out[string(code)] = amount
	}
	return out
}
