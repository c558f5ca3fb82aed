package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

func machines() []*domain.Machine {
	return []*domain.Machine{
		{ID: "VM001", Location: domain.Location{City: "Bangalore", Country: domain.CountryIndia}},
		{ID: "VM101", Location: domain.Location{City: "Tokyo", Country: domain.CountryJapan}},
		{ID: "VM201", Location: domain.Location{City: "Osaka", Country: domain.CountryJapan}},
		{ID: "VM999", Location: domain.Location{City: "Atlantis", Country: domain.Country("Atlantis")}},
	}
}

func TestForCountry_ExactMatchOnly(t *testing.T) {
	japan := domain.ForCountry(domain.CountryJapan, machines())
	require.Len(t, japan, 2)
	for _, m := range japan {
		assert.Equal(t, domain.CountryJapan, m.CountryCode())
	}
}

func TestForCountry_PartitionOverEnumeration(t *testing.T) {
	all := machines()
	india := domain.ForCountry(domain.CountryIndia, all)
	japan := domain.ForCountry(domain.CountryJapan, all)

	// unknown country values are excluded from every scope
	assert.Equal(t, len(all)-1, len(india)+len(japan))
}

func TestParseCountry(t *testing.T) {
	c, err := domain.ParseCountry("Japan")
	require.NoError(t, err)
	assert.Equal(t, domain.CountryJapan, c)

	_, err = domain.ParseCountry("japan")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole("Regional Manager")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRegionalManager, r)

	_, err = domain.ParseRole("Superuser")
	assert.Error(t, err)
}

func TestPriceIn(t *testing.T) {
	p := domain.Price{INR: 25, JPY: 120}
	assert.Equal(t, 25, p.In(domain.CountryIndia))
	assert.Equal(t, 120, p.In(domain.CountryJapan))
}
