// Command zigzag-detector watches a sequence of frames for indicator line
// crossovers and logs each accepted event.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"zigzag-detector/internal/config"
	"zigzag-detector/internal/crossover"
	"zigzag-detector/internal/detect"
	"zigzag-detector/internal/engine"
)

const (
	appName    = "zigzag-detector"
	appVersion = "0.1.0"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to JSON config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: zigzag-detector [-config config.json] [-debug] <frame.png> [frame2.png ...]")
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	logger.Info().Str("version", appVersion).Msgf("starting %s", appName)

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := settings.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	policy := crossover.FailOpen
	if settings.Detection.FailClosed {
		policy = crossover.FailClosed
	}

	detector := detect.NewDetector(settings.Detection.MinLineLength, detect.DefaultScorer(), logger)
	dedup := crossover.NewDeduplicator(
		settings.Detection.IntersectionTolerance,
		settings.Debounce(),
		settings.Detection.ConfidenceThreshold,
		logger,
	)
	dedup.Policy = policy

	eng := engine.New(detector, dedup, logger)
	source := engine.NewFileSource(flag.Args()...)
	notifier := engine.LogNotifier{Log: logger}

	bands := settings.Bands()
	interval := settings.Interval()

	for {
		frame, err := source.Capture()
		if err != nil {
			logger.Error().Err(err).Msg("frame capture failed")
			continue
		}
		if frame == nil {
			break
		}

		crossovers, err := eng.ProcessImage(frame, bands, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("frame processing failed")
			continue
		}

		for _, c := range crossovers {
			notifier.Notify(c)
		}

		if source.Remaining() > 0 {
			time.Sleep(interval)
		}
	}

	stats := eng.Statistics(time.Now())
	logger.Info().
		Int("total", stats.Total).
		Int("last_hour", stats.LastHour).
		Float64("avg_confidence", stats.AvgConfidence).
		Float64("avg_angle", stats.AvgAngle).
		Msg("detection finished")
}
