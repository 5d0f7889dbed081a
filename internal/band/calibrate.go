package band

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"

	"zigzag-detector/pkg/colorutil"
	"zigzag-detector/pkg/geometry"
)

// Minimum channel spans enforced on calibrated bands. A range fitted from a
// handful of samples can collapse to nearly nothing; widening keeps the
// in-range test usable on real frames.
const (
	minHueSpan = 10
	minSatSpan = 50
	minValSpan = 50
)

// toleranceFactor is the number of standard deviations kept on each side of
// the per-channel mean when fitting a range from samples.
const toleranceFactor = 2.0

// FromSamples fits a Band to a set of sampled pixel colors. Each channel's
// range is mean +/- 2 standard deviations, clamped to the channel range and
// widened to a minimum span. The returned band keeps the given id and name
// and is enabled.
func FromSamples(id, name string, samples []geometry.PointInt, img image.Image) (Band, error) {
	if len(samples) == 0 {
		return Band{}, fmt.Errorf("no calibration samples")
	}

	bounds := img.Bounds()
	hs := make([]float64, 0, len(samples))
	ss := make([]float64, 0, len(samples))
	vs := make([]float64, 0, len(samples))

	for _, pt := range samples {
		x, y := bounds.Min.X+pt.X, bounds.Min.Y+pt.Y
		if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		h, s, v := colorutil.ColorToHSV(img.At(x, y))
		hs = append(hs, h)
		ss = append(ss, s)
		vs = append(vs, v)
	}

	if len(hs) == 0 {
		return Band{}, fmt.Errorf("all %d calibration samples fall outside the image", len(samples))
	}

	b := Band{ID: id, Name: name, Enabled: true}
	b.HueMin, b.HueMax = channelRange(hs, MaxHue, minHueSpan)
	b.SatMin, b.SatMax = channelRange(ss, MaxSat, minSatSpan)
	b.ValMin, b.ValMax = channelRange(vs, MaxVal, minValSpan)
	return b, nil
}

// FromRegion fits a Band to every pixel inside a rectangular region of the
// image. Convenience wrapper over FromSamples for CLI calibration.
func FromRegion(id, name string, region geometry.RectInt, img image.Image) (Band, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return Band{}, fmt.Errorf("empty calibration region")
	}

	samples := make([]geometry.PointInt, 0, region.Width*region.Height)
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; x++ {
			samples = append(samples, geometry.PointInt{X: x, Y: y})
		}
	}
	return FromSamples(id, name, samples, img)
}

// channelRange computes mean +/- toleranceFactor*stddev for one channel,
// clamped to [0,ceil] and widened symmetrically to minSpan.
func channelRange(values []float64, ceil, minSpan int) (lo, hi int) {
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		// MeanStdDev reports NaN stddev for a single sample.
		std = 0
	}

	lo = clamp(int(mean-toleranceFactor*std), 0, ceil)
	hi = clamp(int(mean+toleranceFactor*std), 0, ceil)

	if hi-lo < minSpan {
		half := minSpan / 2
		lo = clamp(lo-half, 0, ceil)
		hi = clamp(hi+half, 0, ceil)
	}
	return lo, hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
