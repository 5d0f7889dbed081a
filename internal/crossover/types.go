// Package crossover finds and deduplicates geometric intersections between
// differently colored indicator lines.
package crossover

import (
	"time"

	"zigzag-detector/pkg/geometry"
)

// Candidate is a provisional intersection finding between two lines,
// produced by the intersection engine and consumed by the deduplicator.
type Candidate struct {
	Point      geometry.Point2D `json:"point"`
	Angle      float64          `json:"angle"`      // Acute crossing angle in degrees, [0,90]
	Confidence float64          `json:"confidence"` // Blended score in [0,1]
	Line1ID    string           `json:"line1_id"`
	Line2ID    string           `json:"line2_id"`
}

// Crossover is a deduplicated, accepted intersection event between two
// differently colored lines. Never mutated after creation.
type Crossover struct {
	IntersectionPoint geometry.PointInt `json:"intersection_point"`
	Line1Name         string            `json:"line1_name"`
	Line2Name         string            `json:"line2_name"`
	Line1Confidence   float64           `json:"line1_confidence"`
	Line2Confidence   float64           `json:"line2_confidence"`
	Angle             float64           `json:"angle"`
	Timestamp         time.Time         `json:"timestamp"`
	Confidence        float64           `json:"confidence"` // Intersection-quality confidence
}

// CombinedConfidence blends both line-level confidences with the
// intersection-quality confidence.
func (c Crossover) CombinedConfidence() float64 {
	return (c.Line1Confidence + c.Line2Confidence + c.Confidence) / 3
}

// SamePair reports whether the crossover involves the same unordered pair
// of line identifiers.
func (c Crossover) SamePair(line1, line2 string) bool {
	return (c.Line1Name == line1 && c.Line2Name == line2) ||
		(c.Line1Name == line2 && c.Line2Name == line1)
}
