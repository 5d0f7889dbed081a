package detect

import (
	"gocv.io/x/gocv"

	"zigzag-detector/pkg/geometry"
)

// Scorer rates how reliable an extracted polyline is, in [0,1]. The blend
// is a heuristic, so it lives behind this interface: weights can be tuned
// or the whole strategy swapped without touching extraction or intersection
// code.
type Scorer interface {
	Score(points []geometry.PointInt, mask gocv.Mat) float64
}

// FactorScorer averages three normalized factors: polyline length, point
// count, and the fraction of samples along the line that land on a set mask
// pixel.
type FactorScorer struct {
	LengthNorm    float64 // Length at which the length factor saturates
	PointsNorm    float64 // Point count at which the points factor saturates
	SampleSpacing float64 // Approximate pixel spacing of mask samples
}

// DefaultScorer returns the stock scorer: saturation at 200 px length and
// 20 points, mask sampling every ~5 px.
func DefaultScorer() FactorScorer {
	return FactorScorer{
		LengthNorm:    200,
		PointsNorm:    20,
		SampleSpacing: 5,
	}
}

// Score implements Scorer. Lines with fewer than 2 points score exactly 0.
func (s FactorScorer) Score(points []geometry.PointInt, mask gocv.Mat) float64 {
	if len(points) < 2 {
		return 0
	}

	lengthFactor := geometry.PathLength(points) / s.LengthNorm
	if lengthFactor > 1 {
		lengthFactor = 1
	}

	pointsFactor := float64(len(points)) / s.PointsNorm
	if pointsFactor > 1 {
		pointsFactor = 1
	}

	maskFactor := s.maskCoverage(points, mask)

	confidence := (lengthFactor + pointsFactor + maskFactor) / 3

	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// maskCoverage samples each segment at roughly SampleSpacing pixel
// intervals and returns the fraction of in-frame samples that hit a set
// mask pixel. Out-of-frame samples are skipped from both numerator and
// denominator.
func (s FactorScorer) maskCoverage(points []geometry.PointInt, mask gocv.Mat) float64 {
	rows, cols := mask.Rows(), mask.Cols()

	hits := 0
	checks := 0

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i].ToFloat()
		p2 := points[i+1].ToFloat()

		steps := int(p1.Distance(p2) / s.SampleSpacing)
		if steps < 1 {
			steps = 1
		}

		for j := 0; j < steps; j++ {
			t := float64(j) / float64(steps)
			x := int(p1.X + t*(p2.X-p1.X))
			y := int(p1.Y + t*(p2.Y-p1.Y))

			if y < 0 || y >= rows || x < 0 || x >= cols {
				continue
			}
			checks++
			if mask.GetUCharAt(y, x) > 0 {
				hits++
			}
		}
	}

	if checks == 0 {
		return 0
	}
	return float64(hits) / float64(checks)
}
