package detect

import (
	"time"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"zigzag-detector/internal/band"
)

// Detector extracts one DetectedLine per enabled band from a frame.
type Detector struct {
	MinLineLength float64 // Minimum contour area to accept as a line
	Scorer        Scorer

	log zerolog.Logger
}

// NewDetector creates a Detector. A zero minLineLength falls back to the
// stock threshold of 30; a nil scorer falls back to DefaultScorer.
func NewDetector(minLineLength float64, scorer Scorer, logger zerolog.Logger) *Detector {
	if minLineLength <= 0 {
		minLineLength = 30
	}
	if scorer == nil {
		scorer = DefaultScorer()
	}
	return &Detector{
		MinLineLength: minLineLength,
		Scorer:        scorer,
		log:           logger,
	}
}

// DetectLines runs mask extraction and line extraction for every enabled
// band. Bands that yield no usable points are absent from the result; the
// frame as a whole never fails.
func (d *Detector) DetectLines(img gocv.Mat, bands []band.Band, now time.Time) []DetectedLine {
	var lines []DetectedLine

	for _, b := range bands {
		if !b.Enabled {
			continue
		}

		mask := MaskForBand(img, b)
		points := ExtractLinePoints(mask, d.MinLineLength)
		if len(points) == 0 {
			mask.Close()
			continue
		}

		confidence := d.Scorer.Score(points, mask)
		mask.Close()

		line := NewDetectedLine(b.ID, points, confidence, now)
		lines = append(lines, line)

		d.log.Debug().
			Str("band", b.ID).
			Int("points", len(points)).
			Float64("confidence", confidence).
			Float64("length", line.Length).
			Msg("detected line")
	}

	return lines
}
