package crossover

import (
	"zigzag-detector/internal/detect"
	"zigzag-detector/pkg/geometry"
)

const (
	// idealAngle is the crossing angle at which the angle factor saturates.
	idealAngle = 45.0
	// shallowAngle marks crossings too flat to trust; their angle factor
	// is halved here and the deduplicator rejects them outright.
	shallowAngle = 10.0
)

// FindIntersections tests every segment of line1 against every segment of
// line2 and returns one candidate per intersecting pair. It is only ever
// called on lines with different color identifiers; same-color
// self-intersections are never tested. All candidates are returned,
// filtering happens in the deduplicator.
func FindIntersections(line1, line2 detect.DetectedLine) []Candidate {
	var candidates []Candidate

	for i := 0; i < len(line1.Points)-1; i++ {
		p1 := line1.Points[i].ToFloat()
		p2 := line1.Points[i+1].ToFloat()

		for j := 0; j < len(line2.Points)-1; j++ {
			p3 := line2.Points[j].ToFloat()
			p4 := line2.Points[j+1].ToFloat()

			point, ok := geometry.SegmentIntersection(p1, p2, p3, p4)
			if !ok {
				continue
			}

			angle := geometry.SegmentAngle(p1, p2, p3, p4)

			candidates = append(candidates, Candidate{
				Point:      point,
				Angle:      angle,
				Confidence: candidateConfidence(line1.Confidence, line2.Confidence, angle),
				Line1ID:    line1.ColorID,
				Line2ID:    line2.ColorID,
			})
		}
	}

	return candidates
}

// candidateConfidence blends both line confidences with an angle factor
// that favors crossings near 45 degrees and distrusts shallow ones.
func candidateConfidence(conf1, conf2, angle float64) float64 {
	angleFactor := angle / idealAngle
	if angleFactor > 1 {
		angleFactor = 1
	}
	if angle < shallowAngle {
		angleFactor *= 0.5
	}
	return (conf1 + conf2 + angleFactor) / 3
}
