// Command crossovertest runs crossover detection on an image file and
// prints the extracted lines and accepted crossovers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	_ "golang.org/x/image/tiff"

	"zigzag-detector/internal/config"
	"zigzag-detector/internal/crossover"
	"zigzag-detector/internal/detect"
	"zigzag-detector/internal/engine"
)

func main() {
	imagePath := flag.String("image", "", "Path to frame image (TIFF, PNG, or JPEG)")
	configPath := flag.String("config", "", "Optional JSON config file")
	repeat := flag.Int("repeat", 1, "Process the frame this many times (demonstrates debouncing)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: crossovertest -image <path> [-config config.json] [-repeat 2]")
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	img, err := imaging.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("\nDetection parameters:\n")
	fmt.Printf("  Min line length:   %.0f\n", settings.Detection.MinLineLength)
	fmt.Printf("  Confidence:        %.2f\n", settings.Detection.ConfidenceThreshold)
	fmt.Printf("  Tolerance:         %.0f px\n", settings.Detection.IntersectionTolerance)
	fmt.Printf("  Debounce:          %s\n", settings.Debounce())

	bands := settings.Bands()
	fmt.Printf("\nBands:\n")
	for _, b := range bands {
		state := "enabled"
		if !b.Enabled {
			state = "disabled"
		}
		fmt.Printf("  %-14s H(%d-%d) S(%d-%d) V(%d-%d) [%s]\n",
			b.ID, b.HueMin, b.HueMax, b.SatMin, b.SatMax, b.ValMin, b.ValMax, state)
	}

	detector := detect.NewDetector(settings.Detection.MinLineLength, detect.DefaultScorer(), logger)
	dedup := crossover.NewDeduplicator(
		settings.Detection.IntersectionTolerance,
		settings.Debounce(),
		settings.Detection.ConfidenceThreshold,
		logger,
	)
	eng := engine.New(detector, dedup, logger)

	for pass := 1; pass <= *repeat; pass++ {
		crossovers, err := eng.ProcessImage(img, bands, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nPass %d: %d crossover(s)\n", pass, len(crossovers))
		if len(crossovers) > 0 {
			fmt.Printf("%-16s %-16s %8s %8s %8s %10s\n",
				"Line 1", "Line 2", "X", "Y", "Angle", "Confidence")
			fmt.Println(strings.Repeat("-", 70))
			for _, c := range crossovers {
				fmt.Printf("%-16s %-16s %8d %8d %7.1f° %10.2f\n",
					c.Line1Name, c.Line2Name,
					c.IntersectionPoint.X, c.IntersectionPoint.Y,
					c.Angle, c.CombinedConfidence())
			}
		}
	}

	stats := eng.Statistics(time.Now())
	fmt.Printf("\nHistory: %d total, avg confidence %.2f, avg angle %.1f°\n",
		stats.Total, stats.AvgConfidence, stats.AvgAngle)
}
