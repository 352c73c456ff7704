package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eugenenazirov/partition-engine/internal/partition"
)

var (
	// ErrInvalidSettings indicates the provided settings violate validation rules.
	ErrInvalidSettings = errors.New("invalid partition settings")
)

// Settings are the defaults applied to API requests that omit a parameter.
type Settings struct {
	BinSize    float64
	NumBins    int
	Algorithm  string
	OutputType string
}

var defaultSettings = Settings{
	BinSize:    100,
	NumBins:    2,
	Algorithm:  "greedy",
	OutputType: "partition-and-sums",
}

// Storage provides access to the default settings used by the API handlers.
type Storage interface {
	GetSettings() (Settings, error)
	SetSettings(settings Settings) error
}

// MemoryStorage keeps settings in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStorage initialises storage with the built-in default settings.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{settings: defaultSettings}
}

// DefaultSettings returns the built-in default settings.
func DefaultSettings() Settings {
	return defaultSettings
}

// GetSettings returns the currently configured settings.
func (s *MemoryStorage) GetSettings() (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

// SetSettings validates and stores the provided settings.
func (s *MemoryStorage) SetSettings(settings Settings) error {
	normalized, err := normalizeSettings(settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = normalized
	s.mu.Unlock()

	return nil
}

func normalizeSettings(settings Settings) (Settings, error) {
	if settings.BinSize <= 0 {
		return Settings{}, fmt.Errorf("%w: bin size must be positive, got %g", ErrInvalidSettings, settings.BinSize)
	}
	if settings.NumBins <= 0 {
		return Settings{}, fmt.Errorf("%w: number of bins must be positive, got %d", ErrInvalidSettings, settings.NumBins)
	}
	if _, err := partition.AlgorithmByName(settings.Algorithm); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if _, err := partition.OutputByName(settings.OutputType); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if settings.Algorithm == "" {
		settings.Algorithm = defaultSettings.Algorithm
	}
	if settings.OutputType == "" {
		settings.OutputType = defaultSettings.OutputType
	}
	return settings, nil
}
