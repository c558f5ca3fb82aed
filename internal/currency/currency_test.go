package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

func TestFormat_India(t *testing.T) {
	assert.Equal(t, "₹1,000", currency.Format(1000, domain.CountryIndia))
	assert.Equal(t, "₹45,200", currency.Format(45200, domain.CountryIndia))
	assert.Equal(t, "₹25", currency.Format(25, domain.CountryIndia))
}

func TestFormat_JapanConvertsAtStaticRate(t *testing.T) {
	// 1000 INR at 1.8 → ¥1,800
	assert.Equal(t, "¥1,800", currency.Format(1000, domain.CountryJapan))
	assert.Equal(t, "¥45", currency.Format(25, domain.CountryJapan))
}

func TestFormat_UnknownCountryTreatedAsYen(t *testing.T) {
	assert.Equal(t, "¥1,800", currency.Format(1000, domain.Country("Elsewhere")))
}

func TestFormatter_CustomRate(t *testing.T) {
	f := currency.NewFormatter(2.0)
	assert.Equal(t, "¥2,000", f.Format(1000, domain.CountryJapan))
	// India is never converted
	assert.Equal(t, "₹1,000", f.Format(1000, domain.CountryIndia))
}

func TestFormatter_NonPositiveRateFallsBack(t *testing.T) {
	f := currency.NewFormatter(0)
	assert.Equal(t, "¥1,800", f.Format(1000, domain.CountryJapan))
}

func TestFormat_Rounding(t *testing.T) {
	// 25 * 1.8 = 45 exactly; 3 * 1.8 = 5.4 → 5
	assert.Equal(t, "¥5", currency.Format(3, domain.CountryJapan))
}
