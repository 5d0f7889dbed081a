package engine

import (
	"github.com/rs/zerolog"

	"zigzag-detector/internal/crossover"
)

// Notifier receives accepted crossovers. Chat, sound, and popup alerting
// implementations live outside this module; the engine never calls back
// into a notifier beyond handing it events.
type Notifier interface {
	Notify(c crossover.Crossover)
}

// LogNotifier writes each crossover to a structured log.
type LogNotifier struct {
	Log zerolog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(c crossover.Crossover) {
	n.Log.Info().
		Str("line1", c.Line1Name).
		Str("line2", c.Line2Name).
		Int("x", c.IntersectionPoint.X).
		Int("y", c.IntersectionPoint.Y).
		Float64("combined_confidence", c.CombinedConfidence()).
		Float64("angle", c.Angle).
		Time("timestamp", c.Timestamp).
		Msg("crossover alert")
}
