package detect

import (
	"sort"

	"gocv.io/x/gocv"

	"zigzag-detector/pkg/geometry"
)

// minPointSpacing is the minimum Euclidean distance in pixels between
// consecutive kept polyline points.
const minPointSpacing = 5.0

// simplifyFraction scales the contour perimeter into the Douglas-Peucker
// tolerance used to suppress pixel-level jitter.
const simplifyFraction = 0.01

// ExtractLinePoints reduces a binary mask to an ordered polyline. The
// largest external contour by enclosed area is selected; if its area is
// below minLength the mask is treated as empty (area, not perimeter — kept
// as a fixed contract). The contour is simplified at 0.01x its perimeter,
// sorted by ascending x, and deduplicated to >5 px spacing.
//
// Sorting by x assumes the line is roughly single-valued in x. Vertical or
// looping indicator lines are outside this contract; downstream confidence
// and intersection math relies on the left-to-right ordering.
func ExtractLinePoints(mask gocv.Mat, minLength float64) []geometry.PointInt {
	if mask.Empty() {
		return nil
	}

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return nil
	}

	// Largest contour is the main line
	best := 0
	bestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			best = i
			bestArea = area
		}
	}

	if bestArea < minLength {
		return nil
	}

	contour := contours.At(best)
	epsilon := simplifyFraction * gocv.ArcLength(contour, false)
	simplified := gocv.ApproxPolyDP(contour, epsilon, false)
	defer simplified.Close()

	points := make([]geometry.PointInt, 0, simplified.Size())
	for _, pt := range simplified.ToPoints() {
		points = append(points, geometry.PointInt{X: pt.X, Y: pt.Y})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})

	// Drop points closer than the minimum spacing to the last kept one
	unique := points[:0]
	for _, pt := range points {
		if len(unique) == 0 || unique[len(unique)-1].Distance(pt) > minPointSpacing {
			unique = append(unique, pt)
		}
	}

	return unique
}
