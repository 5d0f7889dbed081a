// Package engine drives per-frame crossover detection: every enabled color
// band is reduced to a line, every differently colored line pair is tested
// for intersections, and surviving candidates pass through the
// deduplicator.
package engine

import (
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"zigzag-detector/internal/band"
	"zigzag-detector/internal/crossover"
	"zigzag-detector/internal/detect"
)

// Engine is the per-frame detection driver. It holds no long-lived state of
// its own beyond references to the detector and the deduplicator; the
// deduplicator owns all cross-frame state. Process one frame at a time per
// engine — frames must not run concurrently against the same deduplicator.
type Engine struct {
	detector *detect.Detector
	dedup    *crossover.Deduplicator

	log zerolog.Logger
}

// New creates an Engine around an existing detector and deduplicator. The
// deduplicator is injected rather than owned so independent detection
// sessions never share history.
func New(detector *detect.Detector, dedup *crossover.Deduplicator, logger zerolog.Logger) *Engine {
	return &Engine{
		detector: detector,
		dedup:    dedup,
		log:      logger,
	}
}

// Process runs one full detection pass over a BGR frame and returns the
// accepted crossovers, in the order their line pairs and segment pairs were
// enumerated. The result may be empty; the pass never fails out of a frame.
func (e *Engine) Process(img gocv.Mat, bands []band.Band, now time.Time) []crossover.Crossover {
	lines := e.detector.DetectLines(img, bands, now)

	var accepted []crossover.Crossover

	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if lines[i].ColorID == lines[j].ColorID {
				continue
			}

			for _, candidate := range crossover.FindIntersections(lines[i], lines[j]) {
				if c, ok := e.dedup.Accept(candidate, lines[i], lines[j], now); ok {
					accepted = append(accepted, c)
				}
			}
		}
	}

	e.dedup.Housekeep(now)

	e.log.Debug().
		Int("lines", len(lines)).
		Int("crossovers", len(accepted)).
		Msg("frame processed")

	return accepted
}

// ProcessImage converts a Go image.Image to a BGR Mat and runs Process.
func (e *Engine) ProcessImage(img image.Image, bands []band.Band, now time.Time) ([]crossover.Crossover, error) {
	mat, err := imageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	return e.Process(mat, bands, now), nil
}

// Statistics exposes the deduplicator's history summary.
func (e *Engine) Statistics(now time.Time) crossover.Stats {
	return e.dedup.Statistics(now)
}

// imageToMat converts a Go image.Image to a gocv.Mat in BGR format.
func imageToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return gocv.Mat{}, fmt.Errorf("empty image")
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat, nil
}
