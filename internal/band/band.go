// Package band defines the HSV color band configuration that identifies one
// indicator line's expected appearance.
package band

import (
	"fmt"
)

// HSV channel ceilings in OpenCV convention.
const (
	MaxHue = 179
	MaxSat = 255
	MaxVal = 255
)

// Band describes the HSV color range of one indicator line.
type Band struct {
	ID      string `json:"id" mapstructure:"id"`
	Name    string `json:"name" mapstructure:"name"`
	HueMin  int    `json:"hue_min" mapstructure:"hue_min"`
	HueMax  int    `json:"hue_max" mapstructure:"hue_max"`
	SatMin  int    `json:"sat_min" mapstructure:"sat_min"`
	SatMax  int    `json:"sat_max" mapstructure:"sat_max"`
	ValMin  int    `json:"val_min" mapstructure:"val_min"`
	ValMax  int    `json:"val_max" mapstructure:"val_max"`
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
}

// Validate reports inverted bounds or out-of-range channels. The mask
// extractor additionally degrades to an empty mask if it receives bad
// bounds mid-run, so a failed Validate is never fatal downstream.
func (b Band) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("band has no id")
	}
	if b.HueMin < 0 || b.HueMax > MaxHue {
		return fmt.Errorf("band %s: hue out of range [0,%d]: %d-%d", b.ID, MaxHue, b.HueMin, b.HueMax)
	}
	if b.SatMin < 0 || b.SatMax > MaxSat {
		return fmt.Errorf("band %s: saturation out of range [0,%d]: %d-%d", b.ID, MaxSat, b.SatMin, b.SatMax)
	}
	if b.ValMin < 0 || b.ValMax > MaxVal {
		return fmt.Errorf("band %s: value out of range [0,%d]: %d-%d", b.ID, MaxVal, b.ValMin, b.ValMax)
	}
	if b.HueMin > b.HueMax || b.SatMin > b.SatMax || b.ValMin > b.ValMax {
		return fmt.Errorf("band %s: lower bound exceeds upper bound", b.ID)
	}
	return nil
}

// BoundsValid reports whether lower <= upper holds on every channel and all
// channels are in range. Cheaper form of Validate for the hot path.
func (b Band) BoundsValid() bool {
	return b.HueMin >= 0 && b.HueMax <= MaxHue && b.HueMin <= b.HueMax &&
		b.SatMin >= 0 && b.SatMax <= MaxSat && b.SatMin <= b.SatMax &&
		b.ValMin >= 0 && b.ValMax <= MaxVal && b.ValMin <= b.ValMax
}

// WithRange returns a copy of the band with new HSV bounds.
func (b Band) WithRange(hMin, hMax, sMin, sMax, vMin, vMax int) Band {
	b.HueMin = hMin
	b.HueMax = hMax
	b.SatMin = sMin
	b.SatMax = sMax
	b.ValMin = vMin
	b.ValMax = vMax
	return b
}

// Defaults returns the stock band library: a yellow/green line and a purple
// line, both enabled. These match the indicator colors the detector was
// originally tuned for.
func Defaults() []Band {
	return []Band{
		{
			ID:      "zigzag_line1",
			Name:    "Yellow/Green Line",
			HueMin:  20,
			HueMax:  35,
			SatMin:  100,
			SatMax:  255,
			ValMin:  100,
			ValMax:  255,
			Enabled: true,
		},
		{
			ID:      "zigzag_line2",
			Name:    "Purple Line",
			HueMin:  120,
			HueMax:  150,
			SatMin:  100,
			SatMax:  255,
			ValMin:  100,
			ValMax:  255,
			Enabled: true,
		},
	}
}
