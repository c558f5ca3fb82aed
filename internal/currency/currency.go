// Package currency renders fleet revenue figures for the selected
// country. Base amounts are held in INR; any country other than India
// is shown in JPY after applying the static conversion rate.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// DefaultINRToJPY is the static INR→JPY conversion rate. It is
// configuration, not a live quote.
const DefaultINRToJPY = 1.8

var grouped = message.NewPrinter(language.English)

// Formatter formats amounts for a selected country
type Formatter struct {
	inrToJPY float64
}

// NewFormatter creates a formatter with the given conversion rate;
// rates <= 0 fall back to the default.
func NewFormatter(inrToJPY float64) *Formatter {
	if inrToJPY <= 0 {
		inrToJPY = DefaultINRToJPY
	}
	return &Formatter{inrToJPY: inrToJPY}
}

// Format renders an INR base amount for the selected country: India as
// a digit-grouped Rupee amount, anything else converted to Yen at the
// static rate and rounded to the nearest integer.
func (f *Formatter) Format(amount int, country domain.Country) string {
	if country == domain.CountryIndia {
		return grouped.Sprintf("₹%d", amount)
	}
	converted := int(math.Round(float64(amount) * f.inrToJPY))
	return grouped.Sprintf("¥%d", converted)
}

// Format renders an amount at the default conversion rate
func Format(amount int, country domain.Country) string {
	return NewFormatter(DefaultINRToJPY).Format(amount, country)
}
