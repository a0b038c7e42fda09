package ingestion

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Observe(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 0, 1)

	// The first Observe starts the tracker and adopts the total it is given.
	tracker.Observe(3, 10)
	tracker.Observe(10, 10)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "\rProgress: 3/10 (30.0%)")
	assert.Contains(t, output, "\rProgress: 10/10 (100.0%)")
	assert.Contains(t, output, "records/s")
	assert.True(t, strings.HasSuffix(output, "\n"), "finish should print newline")
	assert.Greater(t, tracker.Elapsed(), time.Duration(0))
}

func TestProgressTracker_ReportInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1000, 100)
	tracker.Start()

	tracker.Observe(50, 1000)
	assert.Empty(t, buf.String(), "should not print under interval")

	tracker.Observe(100, 1000)
	assert.Contains(t, buf.String(), "100/1000")

	buf.Reset()
	tracker.Observe(150, 1000)
	assert.Empty(t, buf.String(), "should not print until the next interval")

	tracker.Observe(1000, 1000)
	assert.Contains(t, buf.String(), "1000/1000 (100.0%)", "should print on reaching total")
}

func TestProgressTracker_DoneBeyondTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Observe(150, 100)

	assert.Contains(t, buf.String(), "100/100")
	assert.NotContains(t, buf.String(), "150")
}

func TestProgressTracker_FinishSetsTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Observe(75, 100)
	tracker.Finish()

	assert.Contains(t, buf.String(), "100/100")
}

func TestProgressTracker_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 0, 10)

	tracker.Start()
	tracker.Finish()

	assert.Contains(t, buf.String(), "0/0 (0.0%)")
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Finish()

	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}
