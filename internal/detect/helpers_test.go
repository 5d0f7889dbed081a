package detect

import (
	"gocv.io/x/gocv"
)

// newMask creates a zeroed single-channel mask.
func newMask(rows, cols int) gocv.Mat {
	return ZeroMask(rows, cols)
}

// stampMaskRect sets a filled rectangle of mask pixels, bounds-clipped.
func stampMaskRect(mask gocv.Mat, x0, y0, x1, y1 int) {
	rows, cols := mask.Rows(), mask.Cols()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < cols && y >= 0 && y < rows {
				mask.SetUCharAt(y, x, 255)
			}
		}
	}
}

// stampMaskDiagonal stamps squares of the given radius along y=x.
func stampMaskDiagonal(mask gocv.Mat, length, radius int) {
	for t := 0; t <= length; t++ {
		stampMaskRect(mask, t-radius, t-radius, t+radius, t+radius)
	}
}

// newBGR creates a zeroed 3-channel BGR image.
func newBGR(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)
}

// fillBGRRect paints a filled rectangle in BGR order, bounds-clipped.
func fillBGRRect(img gocv.Mat, x0, y0, x1, y1 int, b, g, r uint8) {
	rows, cols := img.Rows(), img.Cols()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < cols && y >= 0 && y < rows {
				img.SetUCharAt(y, x*3+0, b)
				img.SetUCharAt(y, x*3+1, g)
				img.SetUCharAt(y, x*3+2, r)
			}
		}
	}
}
