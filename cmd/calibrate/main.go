// Command calibrate samples a rectangular region of an image and prints a
// suggested HSV band for the color it contains.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/tiff"

	"zigzag-detector/internal/band"
	"zigzag-detector/pkg/geometry"
)

func main() {
	imagePath := flag.String("image", "", "Path to frame image (TIFF, PNG, or JPEG)")
	id := flag.String("id", "zigzag_line1", "Band identifier to emit")
	name := flag.String("name", "", "Band display name (defaults to the id)")
	x := flag.Int("x", 0, "Sample region left edge")
	y := flag.Int("y", 0, "Sample region top edge")
	width := flag.Int("w", 10, "Sample region width")
	height := flag.Int("h", 10, "Sample region height")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: calibrate -image <path> -x 100 -y 50 -w 10 -h 10 [-id zigzag_line1]")
		os.Exit(1)
	}
	if *name == "" {
		*name = *id
	}

	img, err := imaging.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}

	region := geometry.RectInt{X: *x, Y: *y, Width: *width, Height: *height}
	fmt.Printf("Sampling %dx%d region at (%d,%d)\n", region.Width, region.Height, region.X, region.Y)

	b, err := band.FromRegion(*id, *name, region, img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calibration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSuggested band:\n")
	fmt.Printf("  H %d-%d  S %d-%d  V %d-%d\n",
		b.HueMin, b.HueMax, b.SatMin, b.SatMax, b.ValMin, b.ValMax)

	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode band: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nConfig snippet:\n%s\n", out)
}
