package application

import (
	"log"
	"time"

	"golang.org/x/time/rate"
)

// ProgressReporter throttles periodic progress logging to at most one
// line per configured interval, regardless of how often Report is
// called by concurrent workers.
type ProgressReporter struct {
	limiter *rate.Limiter
}

// NewProgressReporter constructs a reporter that allows at most one
// report per interval, with a burst of one (no catching up on skipped
// intervals).
func NewProgressReporter(interval time.Duration) *ProgressReporter {
	return &ProgressReporter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Report logs a progress line iff the rate limiter currently allows one;
// calls in between are silently dropped.
func (p *ProgressReporter) Report(treeSize int, totalVisits int) {
	if !p.limiter.Allow() {
		return
	}
	log.Printf("mcts: tree size=%d visits=%d", treeSize, totalVisits)
}
