package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{"ESAXX_BACKEND", "ESAXX_MIN_FREQ", "ESAXX_MIN_LEN", "ESAXX_MAX_LEN", "ESAXX_TOP"} {
		t.Setenv(key, "")
	}
	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, Settings{Backend: BackendWide, MinFreq: 2, MinLen: 1, MaxLen: 16}, s)
	assert.Equal(t, Defaults(), s)
	assert.NoError(t, Defaults().Validate())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("ESAXX_BACKEND", "Native")
	t.Setenv("ESAXX_MIN_FREQ", "3")
	t.Setenv("ESAXX_MIN_LEN", "2")
	t.Setenv("ESAXX_MAX_LEN", "0")
	t.Setenv("ESAXX_TOP", "100")

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, Settings{Backend: BackendNative, MinFreq: 3, MinLen: 2, MaxLen: 0, Top: 100}, s)
}

func TestNewInvalid(t *testing.T) {
	tests := map[string]struct {
		key, val string
	}{
		"unknown backend":   {"ESAXX_BACKEND", "gpu"},
		"malformed freq":    {"ESAXX_MIN_FREQ", "often"},
		"zero freq":         {"ESAXX_MIN_FREQ", "0"},
		"negative top":      {"ESAXX_TOP", "-1"},
		"malformed max len": {"ESAXX_MAX_LEN", "0x"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := New()
			assert.Error(t, err)
		})
	}
}

func TestValidateLengths(t *testing.T) {
	s := Settings{Backend: BackendWide, MinFreq: 1, MinLen: 5, MaxLen: 3}
	assert.Error(t, s.Validate())
	s.MaxLen = 0
	assert.NoError(t, s.Validate())
}
