package widget

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/units"
)

// StackWidget polls the end-to-end stack metric and renders it in
// milliseconds.
type StackWidget struct {
	base
	client *Client
}

// NewStackWidget creates a stack latency widget.
func NewStackWidget(client *Client, display Sink, opts ...Option) (*StackWidget, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}

	w := &StackWidget{client: client}
	w.display = display
	w.sentinel = SentinelDash
	for _, opt := range opts {
		opt(&w.base)
	}
	return w, nil
}

// Refresh fetches one stack reading and updates the attached elements.
func (w *StackWidget) Refresh(ctx context.Context) {
	gen := w.begin()

	reading, err := w.client.StackLatency(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("stack latency fetch failed")
		w.finish(gen, w.fail)
		return
	}

	log.Debug().
		Float64("stack_ms", reading.ValueMS).
		Dur("rtt", reading.RTT).
		Msg("stack latency fetched")

	w.finish(gen, func() {
		w.display.SetText(units.Milliseconds(reading.ValueMS))
		if w.distance != nil {
			w.distance.SetText(units.FormatDistance(units.LightDistance(reading.ValueMS)))
		}
		w.pulse()
	})
}
