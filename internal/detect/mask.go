// Package detect extracts colored indicator lines from raster frames.
package detect

import (
	"image"

	"gocv.io/x/gocv"

	"zigzag-detector/internal/band"
)

// MaskForBand thresholds a BGR image against the band's HSV range and
// returns a cleaned binary mask of the same width and height. A 3x3
// morphological open removes speckle noise, then a 3x3 close fills small
// gaps. Extraction failure for one band must never abort the frame, so any
// processing error (including invalid bounds received mid-run) yields an
// all-zero mask of the correct dimensions instead of propagating.
func MaskForBand(img gocv.Mat, b band.Band) (mask gocv.Mat) {
	rows, cols := img.Rows(), img.Cols()

	defer func() {
		if r := recover(); r != nil {
			mask = ZeroMask(rows, cols)
		}
	}()

	if img.Empty() || !b.BoundsValid() {
		return ZeroMask(rows, cols)
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	mask = gocv.NewMat()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(float64(b.HueMin), float64(b.SatMin), float64(b.ValMin), 0),
		gocv.NewScalar(float64(b.HueMax), float64(b.SatMax), float64(b.ValMax), 0),
		&mask)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()

	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, kernel)

	return mask
}

// ZeroMask returns an all-zero single-channel mask of the given dimensions.
func ZeroMask(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8U)
}
