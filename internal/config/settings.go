// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config provides esaxx tool settings loaded from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Backends accepted by Settings.Backend.
const (
	BackendWide   = "wide"
	BackendNative = "native"
)

// Settings holds the defaults of the esaxx tool.
type Settings struct {
	// Backend selects the construction: wide or native.
	Backend string
	// MinFreq drops substrings occurring fewer times.
	MinFreq int
	// MinLen and MaxLen bound substring length in code points.
	// MaxLen 0 means unbounded.
	MinLen, MaxLen int
	// Top keeps the best scoring substrings. 0 keeps all.
	Top int
}

// Defaults returns the settings used when no ESAXX_* variable is set.
func Defaults() Settings {
	return Settings{
		Backend: BackendWide,
		MinFreq: 2,
		MinLen:  1,
		MaxLen:  16,
		Top:     0,
	}
}

// New loads settings from ESAXX_* environment variables, applying defaults
// for unset ones. Returns an error for malformed or out-of-range values.
func New() (Settings, error) {
	s := Defaults()
	if backend := strings.ToLower(os.Getenv("ESAXX_BACKEND")); backend != "" {
		s.Backend = backend
	}

	var err error
	if s.MinFreq, err = getEnvInt("ESAXX_MIN_FREQ", s.MinFreq); err != nil {
		return Settings{}, err
	}
	if s.MinLen, err = getEnvInt("ESAXX_MIN_LEN", s.MinLen); err != nil {
		return Settings{}, err
	}
	if s.MaxLen, err = getEnvInt("ESAXX_MAX_LEN", s.MaxLen); err != nil {
		return Settings{}, err
	}
	if s.Top, err = getEnvInt("ESAXX_TOP", s.Top); err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the backend name and numeric ranges.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendWide, BackendNative:
	default:
		return fmt.Errorf("unknown backend: %q", s.Backend)
	}
	if s.MinFreq < 1 {
		return fmt.Errorf("min freq must be at least 1, got %d", s.MinFreq)
	}
	if s.MinLen < 0 || s.MaxLen < 0 || s.Top < 0 {
		return fmt.Errorf("lengths and top must not be negative")
	}
	if s.MaxLen != 0 && s.MaxLen < s.MinLen {
		return fmt.Errorf("max len %d is below min len %d", s.MaxLen, s.MinLen)
	}
	return nil
}

// getEnvInt parses an integer environment variable with a default value.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, val, err)
	}
	return parsed, nil
}
