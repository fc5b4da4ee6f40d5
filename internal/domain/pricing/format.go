package pricing

import (
	"fmt"

	"agency_estimator/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders amount with the currency symbol and the grouping of
// the currency's locale (lakh grouping for en-IN).
func (e *Estimator) FormatCurrency(amount int64, code entities.Currency) (string, error) {
	info, ok := e.catalog.Currency(code)
	if !ok {
		return "", fmt.Errorf("%w: unknown currency %q", ErrCatalogIntegrity, code)
	}
	return FormatAmount(amount, info), nil
}

// FormatAmount renders a whole-unit amount. It performs no rounding.
func FormatAmount(amount int64, info entities.CurrencyInfo) string {
	tag, err := language.Parse(info.Locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + info.Symbol + p.Sprintf("%v", number.Decimal(amount))
}

// FormatRange renders "min - max" in the given currency.
func (e *Estimator) FormatRange(r Range, code entities.Currency) (string, error) {
	lo, err := e.FormatCurrency(r.Min, code)
	if err != nil {
		return "", err
	}
	hi, err := e.FormatCurrency(r.Max, code)
	if err != nil {
		return "", err
	}
	return lo + " - " + hi, nil
}
