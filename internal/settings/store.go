package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
)

// ErrInvalidArgument is returned when a setter receives a value outside
// its enumeration. This is a programmer error, not user input.
var ErrInvalidArgument = errors.New("invalid argument")

// Theme selects the dashboard color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Store holds the process-wide display context: language, theme and the
// selected country scope. It is independent of the session lifecycle;
// logout does not reset it.
type Store struct {
	mu              sync.RWMutex
	language        rbac.Language
	theme           Theme
	selectedCountry domain.Country
}

// NewStore creates a settings store with the defaults: English, light
// theme, India.
func NewStore() *Store {
	return &Store{
		language:        rbac.LanguageEnglish,
		theme:           ThemeLight,
		selectedCountry: domain.CountryIndia,
	}
}

// Language returns the active display language
func (s *Store) Language() rbac.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage sets the display language
func (s *Store) SetLanguage(lang rbac.Language) error {
	if lang != rbac.LanguageEnglish && lang != rbac.LanguageJapanese {
		return fmt.Errorf("%w: language %q", ErrInvalidArgument, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return nil
}

// ToggleLanguage flips between English and Japanese
func (s *Store) ToggleLanguage() rbac.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.language == rbac.LanguageEnglish {
		s.language = rbac.LanguageJapanese
	} else {
		s.language = rbac.LanguageEnglish
	}
	return s.language
}

// Theme returns the active theme
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme sets the theme
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: theme %q", ErrInvalidArgument, theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

// ToggleTheme flips between light and dark
func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	return s.theme
}

// SelectedCountry returns the active country scope
func (s *Store) SelectedCountry() domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCountry
}

// SetSelectedCountry sets the active country scope
func (s *Store) SetSelectedCountry(country domain.Country) error {
	if _, err := domain.ParseCountry(string(country)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCountry = country
	return nil
}
