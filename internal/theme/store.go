// internal/theme/store.go

// Package theme persists the user's theme preference across restarts. It is
// independent of the hub core: a single "theme" key with values "dark" or
// "light", read once at startup and written on every toggle.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jaepaama/Employeehub/internal/domain"
)

const (
	Dark  = "dark"
	Light = "light"

	DefaultTheme = Light
)

// Store is a file-backed key-value store holding the theme preference.
type Store struct {
	mu    sync.Mutex
	path  string
	theme string
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path, theme: DefaultTheme}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading theme preference: %w", err)
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parsing theme preference: %w", err)
	}
	if t, ok := prefs["theme"]; ok && (t == Dark || t == Light) {
		s.theme = t
	}

	return s, nil
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(theme string) error {
	if theme != Dark && theme != Light {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTheme, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]string{"theme": theme})
	if err != nil {
		return fmt.Errorf("encoding theme preference: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme preference: %w", err)
	}

	s.theme = theme
	return nil
}
