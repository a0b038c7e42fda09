package ingestion

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker prints a self-overwriting line while records are stored:
//
//	Progress: 500/1007 (49.7%) - 8123.4 records/s
//
// Its Observe method has the shape of a load progress callback.
type ProgressTracker struct {
	mu      sync.Mutex
	w       io.Writer
	every   int
	done    int
	total   int
	printed int
	start   time.Time
	started bool
}

// NewProgressTracker reports to w roughly every `every` records out of total.
// Observe may revise total.
func NewProgressTracker(w io.Writer, total, every int) *ProgressTracker {
	return &ProgressTracker{w: w, total: total, every: max(every, 1)}
}

// Start resets the counters and the clock.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.begin()
}

// Observe records that done of total records have been stored.
// The first call starts the clock if Start was not called.
func (p *ProgressTracker) Observe(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.begin()
	}
	p.total = total
	p.done = min(done, total)

	finished := p.done == p.total && p.done != p.printed
	if p.done-p.printed >= p.every || finished {
		p.print()
	}
}

// Finish prints the final line and a newline. It does nothing before Start or Observe.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.done = p.total
	p.print()
	fmt.Fprintln(p.w)
}

// Elapsed returns the time since the tracker started, or zero if it has not.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}
	return time.Since(p.start)
}

func (p *ProgressTracker) begin() {
	p.start = time.Now()
	p.started = true
	p.done = 0
	p.printed = 0
}

func (p *ProgressTracker) print() {
	var rate, percent float64
	if secs := time.Since(p.start).Seconds(); secs > 0 {
		rate = float64(p.done) / secs
	}
	if p.total > 0 {
		percent = float64(p.done) / float64(p.total) * 100
	}
	fmt.Fprintf(p.w, "\rProgress: %d/%d (%.1f%%) - %.1f records/s", p.done, p.total, percent, rate)
	p.printed = p.done
}
