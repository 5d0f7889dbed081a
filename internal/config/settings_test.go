package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, 30.0, s.Detection.MinLineLength)
	assert.Equal(t, 0.7, s.Detection.ConfidenceThreshold)
	assert.Equal(t, 8.0, s.Detection.IntersectionTolerance)
	assert.Equal(t, 60*time.Second, s.Debounce())
	assert.False(t, s.Detection.FailClosed)
	assert.NoError(t, s.Validate())

	bands := s.Bands()
	require.Len(t, bands, 2)
	// Sorted by identifier for deterministic enumeration
	assert.Equal(t, "zigzag_line1", bands[0].ID)
	assert.Equal(t, "zigzag_line2", bands[1].ID)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"detection": {"confidence_threshold": 0.5, "debounce_seconds": 30},
		"colors": {
			"custom_line": {
				"name": "Custom",
				"hue_min": 10, "hue_max": 25,
				"sat_min": 80, "sat_max": 255,
				"val_min": 80, "val_max": 255,
				"enabled": true
			}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 0.5, s.Detection.ConfidenceThreshold)
	assert.Equal(t, 30*time.Second, s.Debounce())
	// Untouched values keep their defaults
	assert.Equal(t, 30.0, s.Detection.MinLineLength)
	assert.Equal(t, 8.0, s.Detection.IntersectionTolerance)

	bands := s.Bands()
	require.Len(t, bands, 1)
	// Band id comes from the map key
	assert.Equal(t, "custom_line", bands[0].ID)
	assert.Equal(t, 10, bands[0].HueMin)
	assert.True(t, bands[0].Enabled)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero min length", func(s *Settings) { s.Detection.MinLineLength = 0 }},
		{"threshold above one", func(s *Settings) { s.Detection.ConfidenceThreshold = 1.5 }},
		{"negative tolerance", func(s *Settings) { s.Detection.IntersectionTolerance = -1 }},
		{"zero debounce", func(s *Settings) { s.Detection.DebounceSeconds = 0 }},
		{"bad band", func(s *Settings) {
			b := s.Colors["zigzag_line1"]
			b.HueMax = 300
			s.Colors["zigzag_line1"] = b
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestInterval(t *testing.T) {
	s := Default()
	assert.Equal(t, 500*time.Millisecond, s.Interval())

	s.Capture.FPS = 4
	assert.Equal(t, 250*time.Millisecond, s.Interval())

	s.Capture.FPS = 0
	assert.Equal(t, 500*time.Millisecond, s.Interval())
}
