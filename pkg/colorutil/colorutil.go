// Package colorutil provides shared color utilities for the detector.
package colorutil

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// RGBToHSV converts RGB (0-255) to HSV in OpenCV convention:
// H 0-179, S 0-255, V 0-255. Masking and calibration both work in this
// range so band bounds compare directly against gocv's HSV planes.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	c := colorful.Color{R: r / 255.0, G: g / 255.0, B: b / 255.0}
	hue, sat, val := c.Hsv()

	// colorful reports H in 0-360 degrees and S/V in 0-1.
	return hue / 2, sat * 255.0, val * 255.0
}

// ColorToHSV converts a Go color.Color to OpenCV-convention HSV.
func ColorToHSV(c color.Color) (h, s, v float64) {
	r, g, b, _ := c.RGBA()
	return RGBToHSV(float64(r>>8), float64(g>>8), float64(b>>8))
}
