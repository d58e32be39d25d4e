package prefs

import (
	"fmt"

	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/storage"
)

// Language is the UI language preference.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Store reads and writes the three standalone preference keys. Each is a
// plain string value independent of the main data blob; absent or
// unrecognized values fall back to the defaults the first-run UI shows.
type Store struct {
	backend storage.Backend
}

func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Language() (Language, error) {
	v, _, err := s.backend.Get(storage.KeyLanguage)
	if err != nil {
		return "", fmt.Errorf("get language: %w", err)
	}
	switch Language(v) {
	case LangEnglish, LangArabic:
		return Language(v), nil
	}
	return LangEnglish, nil
}

func (s *Store) SetLanguage(lang Language) error {
	switch lang {
	case LangEnglish, LangArabic:
	default:
		return fmt.Errorf("unknown language %q", lang)
	}
	if err := s.backend.Set(storage.KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

func (s *Store) Theme() (Theme, error) {
	v, _, err := s.backend.Get(storage.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		return Theme(v), nil
	}
	return ThemeLight, nil
}

func (s *Store) SetTheme(theme Theme) error {
	switch theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.backend.Set(storage.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

func (s *Store) SortMode() (model.SortMode, error) {
	v, _, err := s.backend.Get(storage.KeySort)
	if err != nil {
		return "", fmt.Errorf("get sort mode: %w", err)
	}
	if mode, ok := model.ParseSortMode(v); ok {
		return mode, nil
	}
	return model.SortManual, nil
}

func (s *Store) SetSortMode(mode model.SortMode) error {
	if _, ok := model.ParseSortMode(string(mode)); !ok {
		return fmt.Errorf("unknown sort mode %q", mode)
	}
	if err := s.backend.Set(storage.KeySort, string(mode)); err != nil {
		return fmt.Errorf("set sort mode: %w", err)
	}
	return nil
}
