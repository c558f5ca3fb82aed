package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

func TestDefaults(t *testing.T) {
	s := settings.NewStore()
	assert.Equal(t, rbac.LanguageEnglish, s.Language())
	assert.Equal(t, settings.ThemeLight, s.Theme())
	assert.Equal(t, domain.CountryIndia, s.SelectedCountry())
}

func TestSetters_RejectOutOfEnum(t *testing.T) {
	s := settings.NewStore()

	err := s.SetLanguage(rbac.Language("de"))
	require.ErrorIs(t, err, settings.ErrInvalidArgument)

	err = s.SetTheme(settings.Theme("sepia"))
	require.ErrorIs(t, err, settings.ErrInvalidArgument)

	err = s.SetSelectedCountry(domain.Country("Brazil"))
	require.ErrorIs(t, err, settings.ErrInvalidArgument)

	// state unchanged after rejected writes
	assert.Equal(t, rbac.LanguageEnglish, s.Language())
	assert.Equal(t, settings.ThemeLight, s.Theme())
	assert.Equal(t, domain.CountryIndia, s.SelectedCountry())
}

func TestSetters_AcceptEnumMembers(t *testing.T) {
	s := settings.NewStore()

	require.NoError(t, s.SetLanguage(rbac.LanguageJapanese))
	require.NoError(t, s.SetTheme(settings.ThemeDark))
	require.NoError(t, s.SetSelectedCountry(domain.CountryJapan))

	assert.Equal(t, rbac.LanguageJapanese, s.Language())
	assert.Equal(t, settings.ThemeDark, s.Theme())
	assert.Equal(t, domain.CountryJapan, s.SelectedCountry())
}

func TestToggles(t *testing.T) {
	s := settings.NewStore()

	assert.Equal(t, rbac.LanguageJapanese, s.ToggleLanguage())
	assert.Equal(t, rbac.LanguageEnglish, s.ToggleLanguage())

	assert.Equal(t, settings.ThemeDark, s.ToggleTheme())
	assert.Equal(t, settings.ThemeLight, s.ToggleTheme())
}
