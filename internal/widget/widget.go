// Package widget implements the latency display widgets: fetch a reading,
// convert it to human units and write it into an attached display sink, with
// a sentinel placeholder on failure.
package widget

import (
	"errors"
	"sync"
	"time"
)

// Style selects how a cache reading is rendered.
type Style int

const (
	// StyleNanos renders the reading as nanoseconds with the raw
	// millisecond value in the title. Sentinel: an em dash.
	StyleNanos Style = iota
	// StyleAutoRate treats readings above the rate threshold as
	// operations/second and inverts them to a per-operation latency.
	// Sentinel: "ERR".
	StyleAutoRate
)

// Sentinel placeholders written on failed refreshes.
const (
	SentinelDash = "—"
	SentinelErr  = "ERR"
)

const (
	busyLabel      = "measuring…"
	highlightDelay = 600 * time.Millisecond
)

// ErrNoDisplay is returned when a widget is constructed without a primary
// display sink.
var ErrNoDisplay = errors.New("widget: no display sink attached")

// base carries the state shared by both widgets: the attached elements, the
// refresh generation counter and the highlight timer.
type base struct {
	display  Sink
	distance Sink
	trigger  Trigger
	sentinel string

	mu        sync.Mutex
	gen       uint64
	origLabel string
	hlTimer   *time.Timer
}

// Option configures optional widget attachments.
type Option func(*base)

// WithDistanceSink attaches a decorative light-travel distance display.
func WithDistanceSink(s Sink) Option {
	return func(b *base) { b.distance = s }
}

// WithTrigger attaches a manual refresh control.
func WithTrigger(t Trigger) Option {
	return func(b *base) { b.trigger = t }
}

// begin marks a refresh as in flight: it bumps the generation counter and
// parks the trigger. Returns the generation this refresh owns.
func (b *base) begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	if b.trigger != nil {
		if b.origLabel == "" {
			b.origLabel = b.trigger.Label()
		}
		b.trigger.SetEnabled(false)
		b.trigger.SetLabel(busyLabel)
	}
	return b.gen
}

// finish applies a refresh outcome. A superseded refresh (one whose
// generation is no longer current) is dropped so a stale response can never
// overwrite a newer value.
func (b *base) finish(gen uint64, apply func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}

	apply()

	if b.trigger != nil {
		b.trigger.SetLabel(b.origLabel)
		b.trigger.SetEnabled(true)
	}
}

// pulse flashes the highlight marker and clears it after a short delay.
// Overlapping pulses restart the timer; there is no queue.
// Callers must hold b.mu.
func (b *base) pulse() {
	if b.hlTimer != nil {
		b.hlTimer.Stop()
	}
	b.display.SetHighlight(true)
	b.hlTimer = time.AfterFunc(highlightDelay, func() {
		b.display.SetHighlight(false)
	})
}

// fail writes the sentinel into every attached element.
// Callers must hold b.mu (via finish).
func (b *base) fail() {
	b.display.SetText(b.sentinel)
	b.display.SetTitle("")
	if b.distance != nil {
		b.distance.SetText(b.sentinel)
	}
}
