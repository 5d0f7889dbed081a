package crossover

import (
	"time"

	"github.com/rs/zerolog"

	"zigzag-detector/internal/detect"
)

// Policy selects how the deduplicator treats an internal failure while
// evaluating uniqueness. The reference behavior is to allow the crossover
// through (fail-open); fail-closed rejects it instead.
type Policy int

const (
	FailOpen Policy = iota
	FailClosed
)

const (
	// minLineConfidence is the floor each contributing line must clear.
	minLineConfidence = 0.5
	// recentRetention bounds how long an accepted crossover keeps
	// suppressing spatial duplicates.
	recentRetention = time.Hour
	// maxHistory caps the permanent history, oldest dropped first.
	maxHistory = 1000
)

// Deduplicator is the stateful gatekeeper between raw intersection
// candidates and accepted crossovers. It owns the recent and history
// collections for the lifetime of a detection session; construct one per
// session and do not share it across concurrently processed frames.
type Deduplicator struct {
	Tolerance     float64       // Spatial duplicate radius in pixels
	Debounce      time.Duration // Temporal duplicate window
	MinConfidence float64       // Candidate confidence floor
	Policy        Policy

	recent  []Crossover
	history []Crossover

	log zerolog.Logger
}

// NewDeduplicator creates a Deduplicator. Zero tolerance, debounce, or
// confidence fall back to the stock 8 px / 60 s / 0.7.
func NewDeduplicator(tolerancePx float64, debounce time.Duration, minConfidence float64, logger zerolog.Logger) *Deduplicator {
	if tolerancePx <= 0 {
		tolerancePx = 8
	}
	if debounce <= 0 {
		debounce = 60 * time.Second
	}
	if minConfidence <= 0 {
		minConfidence = 0.7
	}
	return &Deduplicator{
		Tolerance:     tolerancePx,
		Debounce:      debounce,
		MinConfidence: minConfidence,
		log:           logger,
	}
}

// Accept filters one candidate. It rejects on low candidate confidence,
// shallow angle, a weak contributing line, or a recent duplicate; otherwise
// it records and returns the accepted Crossover.
func (d *Deduplicator) Accept(c Candidate, line1, line2 detect.DetectedLine, now time.Time) (Crossover, bool) {
	if c.Confidence < d.MinConfidence {
		return Crossover{}, false
	}

	if c.Angle < shallowAngle {
		d.log.Debug().Float64("angle", c.Angle).Msg("crossover rejected: angle too shallow")
		return Crossover{}, false
	}

	if line1.Confidence < minLineConfidence || line2.Confidence < minLineConfidence {
		d.log.Debug().
			Float64("line1_confidence", line1.Confidence).
			Float64("line2_confidence", line2.Confidence).
			Msg("crossover rejected: low line confidence")
		return Crossover{}, false
	}

	crossover := Crossover{
		IntersectionPoint: c.Point.ToInt(),
		Line1Name:         c.Line1ID,
		Line2Name:         c.Line2ID,
		Line1Confidence:   line1.Confidence,
		Line2Confidence:   line2.Confidence,
		Angle:             c.Angle,
		Timestamp:         now,
		Confidence:        c.Confidence,
	}

	if d.isDuplicate(crossover, now) {
		return Crossover{}, false
	}

	d.recent = append(d.recent, crossover)
	d.history = append(d.history, crossover)

	d.log.Info().
		Str("line1", crossover.Line1Name).
		Str("line2", crossover.Line2Name).
		Int("x", crossover.IntersectionPoint.X).
		Int("y", crossover.IntersectionPoint.Y).
		Float64("confidence", crossover.CombinedConfidence()).
		Float64("angle", crossover.Angle).
		Msg("crossover detected")

	return crossover, true
}

// isDuplicate compares against every recent entry. A candidate is a
// duplicate iff some recent crossover lies within Tolerance pixels, fired
// less than Debounce ago, and involves the same unordered pair of line
// names. An internal failure during evaluation follows the configured
// Policy instead of propagating.
func (d *Deduplicator) isDuplicate(c Crossover, now time.Time) (dup bool) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("duplicate check failed")
			dup = d.Policy == FailClosed
		}
	}()

	for _, recent := range d.recent {
		distance := c.IntersectionPoint.Distance(recent.IntersectionPoint)
		elapsed := now.Sub(recent.Timestamp)

		if distance < d.Tolerance && elapsed < d.Debounce && recent.SamePair(c.Line1Name, c.Line2Name) {
			d.log.Debug().
				Float64("distance", distance).
				Dur("elapsed", elapsed).
				Msg("crossover filtered as duplicate")
			return true
		}
	}
	return false
}

// Housekeep prunes state once per detection pass: recent entries older than
// one hour are dropped and the history is trimmed to its newest 1000
// entries.
func (d *Deduplicator) Housekeep(now time.Time) {
	kept := d.recent[:0]
	for _, c := range d.recent {
		if now.Sub(c.Timestamp) < recentRetention {
			kept = append(kept, c)
		}
	}
	d.recent = kept

	if len(d.history) > maxHistory {
		d.history = append([]Crossover(nil), d.history[len(d.history)-maxHistory:]...)
	}
}

// History returns a copy of the permanent crossover history, oldest first.
func (d *Deduplicator) History() []Crossover {
	return append([]Crossover(nil), d.history...)
}

// RecentCount returns the number of crossovers still inside the retention
// window as of the last housekeeping pass.
func (d *Deduplicator) RecentCount() int {
	return len(d.recent)
}
