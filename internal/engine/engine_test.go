package engine

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zigzag-detector/internal/band"
	"zigzag-detector/internal/crossover"
	"zigzag-detector/internal/detect"
)

var (
	testYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}   // HSV ~ (30,255,255)
	testPurple = color.RGBA{R: 200, G: 0, B: 255, A: 255}   // HSV ~ (143,255,255)
)

// crossingFrame draws a horizontal yellow band centered on y=100 and a
// purple band along y=x. Where the two overlap, the colors are interleaved
// in 4x4 blocks so that both masks remain connected through the crossing
// after morphological cleanup — mirroring the color bleed of a real
// rendered chart, where neither line fully occludes the other.
func crossingFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))

	setBlended := func(x, y int, c color.RGBA, overlapping bool) {
		if x < 0 || x >= 320 || y < 0 || y >= 240 {
			return
		}
		if overlapping && (x/4+y/4)%2 == 0 {
			return
		}
		img.SetRGBA(x, y, c)
	}

	inYellow := func(x, y int) bool { return x >= 0 && x <= 300 && y >= 95 && y <= 105 }
	inPurple := func(x, y int) bool {
		for t := 0; t <= 220; t++ {
			if x >= t-2 && x <= t+2 && y >= t-2 && y <= t+2 {
				return true
			}
		}
		return false
	}

	// Yellow band, yielding at alternating blocks inside the overlap
	for y := 95; y <= 105; y++ {
		for x := 0; x <= 300; x++ {
			setBlended(x, y, testYellow, inPurple(x, y))
		}
	}

	// Purple band along y=x with a 5 px brush, yielding on the other blocks
	for t := 0; t <= 220; t++ {
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				x, y := t+dx, t+dy
				if inYellow(x, y) && (x/4+y/4)%2 != 0 {
					continue
				}
				if x < 0 || x >= 320 || y < 0 || y >= 240 {
					continue
				}
				img.SetRGBA(x, y, testPurple)
			}
		}
	}

	return img
}

func newTestEngine(tolerance float64, debounce time.Duration, minConfidence float64) *Engine {
	detector := detect.NewDetector(30, detect.DefaultScorer(), zerolog.Nop())
	dedup := crossover.NewDeduplicator(tolerance, debounce, minConfidence, zerolog.Nop())
	return New(detector, dedup, zerolog.Nop())
}

func TestProcessImageDetectsCrossover(t *testing.T) {
	eng := newTestEngine(20, 60*time.Second, 0.5)
	frame := crossingFrame()

	crossovers, err := eng.ProcessImage(frame, band.Defaults(), time.Now())
	require.NoError(t, err)
	require.Len(t, crossovers, 1)

	c := crossovers[0]
	assert.InDelta(t, 100, c.IntersectionPoint.X, 15)
	assert.InDelta(t, 100, c.IntersectionPoint.Y, 15)
	assert.InDelta(t, 45, c.Angle, 10)
	assert.Greater(t, c.CombinedConfidence(), 0.5)

	names := []string{c.Line1Name, c.Line2Name}
	assert.Contains(t, names, "zigzag_line1")
	assert.Contains(t, names, "zigzag_line2")
}

func TestProcessImageDebouncesRepeatFrame(t *testing.T) {
	eng := newTestEngine(20, 60*time.Second, 0.5)
	frame := crossingFrame()
	now := time.Now()

	first, err := eng.ProcessImage(frame, band.Defaults(), now)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same frame inside the debounce window: no new crossovers
	second, err := eng.ProcessImage(frame, band.Defaults(), now.Add(5*time.Second))
	require.NoError(t, err)
	assert.Empty(t, second)

	// History still holds exactly the first event
	assert.Equal(t, 1, eng.Statistics(now).Total)
}

func TestProcessImageSingleLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 95; y <= 105; y++ {
		for x := 0; x < 200; x++ {
			img.SetRGBA(x, y, testYellow)
		}
	}

	eng := newTestEngine(8, time.Minute, 0.5)
	crossovers, err := eng.ProcessImage(img, band.Defaults(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, crossovers)
}

func TestProcessImageEmptyFrame(t *testing.T) {
	eng := newTestEngine(8, time.Minute, 0.5)

	crossovers, err := eng.ProcessImage(image.NewRGBA(image.Rect(0, 0, 100, 100)), band.Defaults(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, crossovers)
}

func TestProcessImageZeroSize(t *testing.T) {
	eng := newTestEngine(8, time.Minute, 0.5)

	_, err := eng.ProcessImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), band.Defaults(), time.Now())
	assert.Error(t, err)
}
