package crossover

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a deduplicator's crossover history.
type Stats struct {
	Total         int     `json:"total_crossovers"`
	Recent        int     `json:"recent_crossovers"`
	LastHour      int     `json:"last_hour"`
	LastDay       int     `json:"last_day"`
	AvgConfidence float64 `json:"avg_confidence"`
	AvgAngle      float64 `json:"avg_angle"`
}

// Statistics computes summary statistics over the full history as of now.
func (d *Deduplicator) Statistics(now time.Time) Stats {
	s := Stats{
		Total:  len(d.history),
		Recent: len(d.recent),
	}

	if len(d.history) == 0 {
		return s
	}

	confidences := make([]float64, len(d.history))
	angles := make([]float64, len(d.history))

	for i, c := range d.history {
		confidences[i] = c.CombinedConfidence()
		angles[i] = c.Angle

		age := now.Sub(c.Timestamp)
		if age < time.Hour {
			s.LastHour++
		}
		if age < 24*time.Hour {
			s.LastDay++
		}
	}

	s.AvgConfidence = stat.Mean(confidences, nil)
	s.AvgAngle = stat.Mean(angles, nil)
	return s
}
