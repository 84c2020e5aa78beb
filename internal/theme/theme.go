// Package theme resolves and persists the light/dark preference.
package theme

import (
	"context"
	"fmt"
	"sync"
)

// Key is the storage key the preference lives under.
const Key = "theme"

// Mode is a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Parse returns the mode for s and whether s named one.
func Parse(s string) (Mode, bool) {
	switch Mode(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Store is the persistence port for the preference.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Toast is the notification shown after a toggle.
type Toast struct {
	Title       string
	Description string
}

// Resolve returns the stored mode, falling back to the system preference
// when nothing valid is stored or the store fails.
func Resolve(ctx context.Context, store Store, prefersDark bool) Mode {
	if store != nil {
		if v, ok, err := store.Get(ctx, Key); err == nil && ok {
			if m, ok := Parse(v); ok {
				return m
			}
		}
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Toggle flips current, persists the result and returns it with its toast.
func Toggle(ctx context.Context, store Store, current Mode) (Mode, Toast, error) {
	next := Dark
	if current == Dark {
		next = Light
	}
	if err := store.Set(ctx, Key, string(next)); err != nil {
		return current, Toast{}, fmt.Errorf("persist theme: %w", err)
	}
	return next, toastFor(next), nil
}

func toastFor(m Mode) Toast {
	if m == Dark {
		return Toast{Title: "Dark mode activated!", Description: "The portfolio is now in dark mode."}
	}
	return Toast{Title: "Light mode activated!", Description: "The portfolio is now in light mode."}
}

// MemoryStore keeps values in memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
