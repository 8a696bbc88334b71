package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/preceptress/neurocompute/internal/units"
)

// CacheWidget polls the cache metric and renders it into its display sink.
type CacheWidget struct {
	base
	client *Client
	style  Style
}

// NewCacheWidget creates a cache latency widget. The display sink is
// mandatory; construction fails without one so no handlers get attached to a
// missing element.
func NewCacheWidget(client *Client, style Style, display Sink, opts ...Option) (*CacheWidget, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}

	w := &CacheWidget{
		client: client,
		style:  style,
	}
	w.display = display
	w.sentinel = SentinelDash
	if style == StyleAutoRate {
		w.sentinel = SentinelErr
	}
	for _, opt := range opts {
		opt(&w.base)
	}
	return w, nil
}

// Refresh fetches one reading and updates the attached elements. Each call
// is an independent fetch; there are no retries and no cancellation of an
// earlier in-flight refresh, but a superseded refresh never overwrites a
// newer result.
func (w *CacheWidget) Refresh(ctx context.Context) {
	gen := w.begin()

	reading, err := w.client.CacheLatency(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cache latency fetch failed")
		w.finish(gen, w.fail)
		return
	}

	log.Debug().
		Float64("latency_ms", reading.ValueMS).
		Dur("rtt", reading.RTT).
		Msg("cache latency fetched")

	text, title, ms := renderCache(w.style, reading)
	w.finish(gen, func() {
		w.display.SetText(text)
		w.display.SetTitle(title)
		if w.distance != nil {
			w.distance.SetText(units.FormatDistance(units.LightDistance(ms)))
		}
		w.pulse()
	})
}

// renderCache maps a reading to display text, title text and the millisecond
// value used for the light-travel analogy.
func renderCache(style Style, reading Reading) (text, title string, ms float64) {
	switch style {
	case StyleAutoRate:
		ms = units.NormalizeCacheReading(reading.ValueMS)
		return units.Milliseconds(ms), "", ms
	default:
		ms = reading.ValueMS
		title = fmt.Sprintf("%g ms (server-reported), round trip %s",
			reading.ValueMS, reading.RTT.Round(time.Millisecond))
		return units.Nanoseconds(ms), title, ms
	}
}
