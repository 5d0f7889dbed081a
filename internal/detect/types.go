package detect

import (
	"time"

	"zigzag-detector/pkg/geometry"
)

// DetectedLine represents one indicator line extracted from a frame.
// Points are ordered by ascending x and deduplicated so consecutive points
// are more than 5 px apart. An empty Points slice means the band produced
// no usable detection this frame.
type DetectedLine struct {
	ColorID    string               `json:"color_id"`
	Points     []geometry.PointInt  `json:"points"`
	Confidence float64              `json:"confidence"`
	Length     float64              `json:"length"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewDetectedLine builds a DetectedLine, computing its polyline length.
func NewDetectedLine(colorID string, points []geometry.PointInt, confidence float64, timestamp time.Time) DetectedLine {
	return DetectedLine{
		ColorID:    colorID,
		Points:     points,
		Confidence: confidence,
		Length:     geometry.PathLength(points),
		Timestamp:  timestamp,
	}
}

// Empty reports whether the line carries no points.
func (l DetectedLine) Empty() bool {
	return len(l.Points) == 0
}

// Segments returns the number of polyline segments.
func (l DetectedLine) Segments() int {
	if len(l.Points) < 2 {
		return 0
	}
	return len(l.Points) - 1
}
