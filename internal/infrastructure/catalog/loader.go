// Package catalog loads the estimator price tables.
//
// The tables ship embedded in the binary (catalog.yaml) and can be replaced at
// startup with a file of the same shape. Every load goes through three gates:
// YAML decoding, JSON Schema validation and a completeness check that makes
// sure every lookup the estimator can perform has an answer.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

//go:embed schema.json
var schemaJSON string

var ErrInvalidCatalog = errors.New("invalid catalog")

type catalogFile struct {
	Currencies []entities.CurrencyInfo         `yaml:"currencies"`
	Tiers      []entities.TierInfo             `yaml:"complexity_tiers"`
	Timelines  []entities.TimelineInfo         `yaml:"timelines"`
	Services   []entities.ServiceCatalogEntry `yaml:"services"`
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*entities.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Default returns the embedded catalog.
func Default() (*entities.Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog document.
func Parse(raw []byte) (*entities.Catalog, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %v", ErrInvalidCatalog, err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %v", ErrInvalidCatalog, err)
	}
	if err := checkCompleteness(f); err != nil {
		return nil, err
	}
	return entities.NewCatalog(f.Currencies, f.Tiers, f.Timelines, f.Services), nil
}

func validateSchema(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: schema validation: %v", ErrInvalidCatalog, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(msgs, "; "))
}

// checkCompleteness enforces the cross-field rules a schema cannot express:
// every price table covers every currency and every tier has a multiplier.
func checkCompleteness(f catalogFile) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	currencies := make(map[entities.Currency]bool, len(f.Currencies))
	for _, c := range f.Currencies {
		if currencies[c.Code] {
			add("duplicate currency %s", c.Code)
		}
		currencies[c.Code] = true
	}

	tiers := make(map[entities.ComplexityTier]bool, len(f.Tiers))
	for _, t := range f.Tiers {
		if !t.ID.Valid() {
			add("unknown complexity tier %q", t.ID)
		}
		tiers[t.ID] = true
	}
	for _, t := range entities.ComplexityTiers {
		if !tiers[t] {
			add("complexity tier %q is not described", t)
		}
	}

	timelines := make(map[entities.TimelineOption]bool, len(f.Timelines))
	for _, t := range f.Timelines {
		if !t.ID.Valid() {
			add("unknown timeline %q", t.ID)
		}
		timelines[t.ID] = true
	}
	for _, t := range entities.TimelineOptions {
		if !timelines[t] {
			add("timeline %q is not described", t)
		}
	}

	services := make(map[string]bool, len(f.Services))
	for _, s := range f.Services {
		if services[s.ID] {
			add("duplicate service %q", s.ID)
		}
		services[s.ID] = true

		for code := range currencies {
			if _, ok := s.BasePrice[code]; !ok {
				add("service %q has no base price in %s", s.ID, code)
			}
		}
		for code := range s.BasePrice {
			if !currencies[code] {
				add("service %q prices in unsupported currency %s", s.ID, code)
			}
		}
		for _, t := range entities.ComplexityTiers {
			if m, ok := s.ComplexityMultiplier[t]; !ok || m <= 0 {
				add("service %q has no positive multiplier for tier %q", s.ID, t)
			}
		}

		features := make(map[string]bool, len(s.Features))
		for _, ft := range s.Features {
			if features[ft.ID] {
				add("service %q has duplicate feature %q", s.ID, ft.ID)
			}
			features[ft.ID] = true
			for code := range currencies {
				if _, ok := ft.Price[code]; !ok {
					add("feature %q of service %q has no price in %s", ft.ID, s.ID, code)
				}
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", pricing.ErrCatalogIntegrity, errors.Join(errs...))
}
