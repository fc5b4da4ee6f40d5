package usecase

import (
	"errors"
	"strings"

	"agency_estimator/internal/domain/entities"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// CatalogOptions groups the choices that are the same for every service.
type CatalogOptions struct {
	Tiers           []entities.TierInfo
	Timelines       []entities.TimelineInfo
	Currencies      []entities.CurrencyInfo
	DefaultCurrency entities.Currency
	RangeBand       float64
}

// ICatalogUseCase serves the read-only service catalog.
type ICatalogUseCase interface {
	ListServices() []entities.ServiceCatalogEntry
	GetService(id string) (entities.ServiceCatalogEntry, error)
	Tiers() []entities.TierInfo
	Timelines() []entities.TimelineInfo
	Currencies() []entities.CurrencyInfo
	Options() CatalogOptions
}

type CatalogUseCase struct {
	catalog   *entities.Catalog
	rangeBand float64
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog *entities.Catalog, rangeBand float64) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, rangeBand: rangeBand}
}

func (u *CatalogUseCase) ListServices() []entities.ServiceCatalogEntry {
	return u.catalog.Services()
}

func (u *CatalogUseCase) GetService(id string) (entities.ServiceCatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceCatalogEntry{}, ErrInvalidServiceID
	}
	svc, ok := u.catalog.Service(id)
	if !ok {
		return entities.ServiceCatalogEntry{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *CatalogUseCase) Tiers() []entities.TierInfo {
	return u.catalog.Tiers()
}

func (u *CatalogUseCase) Timelines() []entities.TimelineInfo {
	return u.catalog.Timelines()
}

func (u *CatalogUseCase) Currencies() []entities.CurrencyInfo {
	return u.catalog.Currencies()
}

func (u *CatalogUseCase) Options() CatalogOptions {
	return CatalogOptions{
		Tiers:           u.catalog.Tiers(),
		Timelines:       u.catalog.Timelines(),
		Currencies:      u.catalog.Currencies(),
		DefaultCurrency: u.catalog.DefaultCurrency(),
		RangeBand:       u.rangeBand,
	}
}
