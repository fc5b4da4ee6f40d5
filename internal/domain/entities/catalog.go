package entities

// Currency is an ISO 4217 code supported by the price tables.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// ComplexityTier is the project-scope level that multiplies a service base price.
type ComplexityTier string

const (
	ComplexitySimple  ComplexityTier = "simple"
	ComplexityMedium  ComplexityTier = "medium"
	ComplexityComplex ComplexityTier = "complex"
)

// ComplexityTiers lists the closed set of tiers in display order.
var ComplexityTiers = []ComplexityTier{ComplexitySimple, ComplexityMedium, ComplexityComplex}

func (t ComplexityTier) Valid() bool {
	switch t {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	}
	return false
}

// TimelineOption is the requested delivery urgency.
type TimelineOption string

const (
	TimelineUrgent   TimelineOption = "urgent"
	TimelineStandard TimelineOption = "standard"
	TimelineFlexible TimelineOption = "flexible"
)

// TimelineOptions lists the closed set of timelines in display order.
var TimelineOptions = []TimelineOption{TimelineUrgent, TimelineStandard, TimelineFlexible}

func (t TimelineOption) Valid() bool {
	switch t {
	case TimelineUrgent, TimelineStandard, TimelineFlexible:
		return true
	}
	return false
}

// Multiplier returns the surcharge or discount applied for the timeline.
// An unset timeline behaves as standard.
func (t TimelineOption) Multiplier() float64 {
	switch t {
	case TimelineUrgent:
		return 1.3
	case TimelineFlexible:
		return 0.9
	default:
		return 1.0
	}
}

// CurrencyInfo describes how amounts of a currency are displayed.
type CurrencyInfo struct {
	Code   Currency `json:"code" yaml:"code"`
	Symbol string   `json:"symbol" yaml:"symbol"`
	Locale string   `json:"locale" yaml:"locale"`
}

// TierInfo is the display metadata of a complexity tier.
type TierInfo struct {
	ID          ComplexityTier `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
}

// TimelineInfo is the display metadata of a timeline option.
type TimelineInfo struct {
	ID          TimelineOption `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
}

// FeatureAddOn is a flat-price extra owned by exactly one service.
type FeatureAddOn struct {
	ID    string             `json:"id" yaml:"id"`
	Name  string             `json:"name" yaml:"name"`
	Price map[Currency]int64 `json:"price" yaml:"price"`
}

// ServiceCatalogEntry is one sellable service with its price tables.
type ServiceCatalogEntry struct {
	ID                   string                     `json:"id" yaml:"id"`
	Name                 string                     `json:"name" yaml:"name"`
	Description          string                     `json:"description" yaml:"description"`
	BasePrice            map[Currency]int64         `json:"base_price" yaml:"base_price"`
	ComplexityMultiplier map[ComplexityTier]float64 `json:"complexity_multiplier" yaml:"complexity_multiplier"`
	Features             []FeatureAddOn             `json:"features" yaml:"features"`
}

// Feature looks up one of the service's own add-ons.
func (s ServiceCatalogEntry) Feature(id string) (FeatureAddOn, bool) {
	for _, f := range s.Features {
		if f.ID == id {
			return f, true
		}
	}
	return FeatureAddOn{}, false
}

// Catalog is the immutable set of price tables loaded at startup.
//
// A Catalog is built once (see internal/infrastructure/catalog) and shared by
// handle. Its maps and slices must not be modified after construction.
type Catalog struct {
	currencies []CurrencyInfo
	tiers      []TierInfo
	timelines  []TimelineInfo
	services   []ServiceCatalogEntry
	byID       map[string]int
}

// NewCatalog indexes the given tables. Validation of completeness is the
// loader's job; NewCatalog only builds the lookup structure.
func NewCatalog(currencies []CurrencyInfo, tiers []TierInfo, timelines []TimelineInfo, services []ServiceCatalogEntry) *Catalog {
	c := &Catalog{
		currencies: currencies,
		tiers:      tiers,
		timelines:  timelines,
		services:   services,
		byID:       make(map[string]int, len(services)),
	}
	for i, s := range services {
		c.byID[s.ID] = i
	}
	return c
}

func (c *Catalog) Services() []ServiceCatalogEntry {
	return c.services
}

func (c *Catalog) Service(id string) (ServiceCatalogEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ServiceCatalogEntry{}, false
	}
	return c.services[i], true
}

func (c *Catalog) Currencies() []CurrencyInfo {
	return c.currencies
}

// DefaultCurrency is the first supported currency (the "home" currency).
func (c *Catalog) DefaultCurrency() Currency {
	if len(c.currencies) == 0 {
		return ""
	}
	return c.currencies[0].Code
}

func (c *Catalog) Currency(code Currency) (CurrencyInfo, bool) {
	for _, ci := range c.currencies {
		if ci.Code == code {
			return ci, true
		}
	}
	return CurrencyInfo{}, false
}

func (c *Catalog) Tiers() []TierInfo {
	return c.tiers
}

func (c *Catalog) Tier(id ComplexityTier) (TierInfo, bool) {
	for _, t := range c.tiers {
		if t.ID == id {
			return t, true
		}
	}
	return TierInfo{}, false
}

func (c *Catalog) Timelines() []TimelineInfo {
	return c.timelines
}

func (c *Catalog) Timeline(id TimelineOption) (TimelineInfo, bool) {
	for _, t := range c.timelines {
		if t.ID == id {
			return t, true
		}
	}
	return TimelineInfo{}, false
}
