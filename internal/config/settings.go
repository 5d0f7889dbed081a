// Package config loads detection settings and the band library from a JSON
// config file, with stock defaults merged underneath.
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/viper"

	"zigzag-detector/internal/band"
)

// DetectionSettings holds the engine tunables.
type DetectionSettings struct {
	MinLineLength         float64 `mapstructure:"min_line_length"`
	ConfidenceThreshold   float64 `mapstructure:"confidence_threshold"`
	IntersectionTolerance float64 `mapstructure:"intersection_tolerance"`
	DebounceSeconds       float64 `mapstructure:"debounce_seconds"`
	FailClosed            bool    `mapstructure:"fail_closed"`
}

// CaptureSettings holds the polling-loop tunables. The frame source itself
// is an external collaborator.
type CaptureSettings struct {
	FPS float64 `mapstructure:"fps"`
}

// Settings is the full configuration consumed by the detector.
type Settings struct {
	Detection DetectionSettings    `mapstructure:"detection"`
	Capture   CaptureSettings      `mapstructure:"capture"`
	Colors    map[string]band.Band `mapstructure:"colors"`
}

// Default returns the stock configuration.
func Default() *Settings {
	colors := make(map[string]band.Band)
	for _, b := range band.Defaults() {
		colors[b.ID] = b
	}
	return &Settings{
		Detection: DetectionSettings{
			MinLineLength:         30,
			ConfidenceThreshold:   0.7,
			IntersectionTolerance: 8,
			DebounceSeconds:       60,
		},
		Capture: CaptureSettings{FPS: 2},
		Colors:  colors,
	}
}

// Load reads settings from a JSON config file. A missing file is not an
// error: defaults are returned. Values present in the file override the
// defaults; everything else keeps its stock value.
func Load(path string) (*Settings, error) {
	settings := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("detection.min_line_length", settings.Detection.MinLineLength)
	v.SetDefault("detection.confidence_threshold", settings.Detection.ConfidenceThreshold)
	v.SetDefault("detection.intersection_tolerance", settings.Detection.IntersectionTolerance)
	v.SetDefault("detection.debounce_seconds", settings.Detection.DebounceSeconds)
	v.SetDefault("detection.fail_closed", settings.Detection.FailClosed)
	v.SetDefault("capture.fps", settings.Capture.FPS)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	loaded := &Settings{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if len(loaded.Colors) == 0 {
		loaded.Colors = settings.Colors
	}
	// Band IDs live in the map keys in the config file
	for id, b := range loaded.Colors {
		if b.ID == "" {
			b.ID = id
			loaded.Colors[id] = b
		}
	}

	return loaded, nil
}

// Bands returns the band library sorted by identifier for deterministic
// enumeration order.
func (s *Settings) Bands() []band.Band {
	bands := make([]band.Band, 0, len(s.Colors))
	for _, b := range s.Colors {
		bands = append(bands, b)
	}
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].ID < bands[j].ID
	})
	return bands
}

// Debounce returns the debounce window as a duration.
func (s *Settings) Debounce() time.Duration {
	return time.Duration(s.Detection.DebounceSeconds * float64(time.Second))
}

// Interval returns the polling interval derived from the capture FPS.
func (s *Settings) Interval() time.Duration {
	if s.Capture.FPS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(float64(time.Second) / s.Capture.FPS)
}

// Validate checks tunable ranges and every configured band.
func (s *Settings) Validate() error {
	d := s.Detection
	if d.MinLineLength <= 0 {
		return fmt.Errorf("min_line_length must be positive: %v", d.MinLineLength)
	}
	if d.ConfidenceThreshold < 0 || d.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in [0,1]: %v", d.ConfidenceThreshold)
	}
	if d.IntersectionTolerance <= 0 {
		return fmt.Errorf("intersection_tolerance must be positive: %v", d.IntersectionTolerance)
	}
	if d.DebounceSeconds <= 0 {
		return fmt.Errorf("debounce_seconds must be positive: %v", d.DebounceSeconds)
	}
	for _, b := range s.Colors {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
