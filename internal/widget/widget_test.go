package widget

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	mu         sync.Mutex
	texts      []string
	title      string
	highlights []bool
}

func (f *fakeSink) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
}

func (f *fakeSink) SetTitle(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = title
}

func (f *fakeSink) SetHighlight(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.highlights = append(f.highlights, on)
}

func (f *fakeSink) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

func (f *fakeSink) lastTitle() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

type fakeTrigger struct {
	mu     sync.Mutex
	label  string
	events []string
}

func newFakeTrigger(label string) *fakeTrigger {
	return &fakeTrigger{label: label}
}

func (f *fakeTrigger) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if enabled {
		f.events = append(f.events, "enabled")
	} else {
		f.events = append(f.events, "disabled")
	}
}

func (f *fakeTrigger) SetLabel(label string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.label = label
	f.events = append(f.events, "label:"+label)
}

func (f *fakeTrigger) Label() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.label
}

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestCacheWidgetNanosStyle(t *testing.T) {
	ts := jsonServer(t, `{"latency_ms": 0.000123, "cached": false}`)

	display := &fakeSink{}
	distance := &fakeSink{}
	w, err := NewCacheWidget(NewClient(ts.URL, nil), StyleNanos, display, WithDistanceSink(distance))
	require.NoError(t, err)

	w.Refresh(context.Background())

	require.Equal(t, "123 ns", display.lastText())
	require.True(t, strings.HasPrefix(display.lastTitle(), "0.000123 ms (server-reported)"),
		"title %q should carry the server-reported value", display.lastTitle())
	// Light covers about 37 meters in 123 ns.
	require.Equal(t, "36.87 m", distance.lastText())
}

func TestCacheWidgetAutoRateStyle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "throughput figure inverted",
			body:     `{"latency_ms": 1500}`,
			expected: "0.667 ms",
		},
		{
			name:     "latency figure used as-is",
			body:     `{"latency_ms": 5}`,
			expected: "5.000 ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := jsonServer(t, tt.body)

			display := &fakeSink{}
			w, err := NewCacheWidget(NewClient(ts.URL, nil), StyleAutoRate, display)
			require.NoError(t, err)

			w.Refresh(context.Background())
			require.Equal(t, tt.expected, display.lastText())
		})
	}
}

func TestCacheWidgetMissingFieldRendersNaN(t *testing.T) {
	ts := jsonServer(t, `{"cached": true}`)

	display := &fakeSink{}
	w, err := NewCacheWidget(NewClient(ts.URL, nil), StyleNanos, display)
	require.NoError(t, err)

	w.Refresh(context.Background())
	require.Equal(t, "NaN ns", display.lastText())
}

func TestCacheWidgetFetchFailureWritesSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close() // every fetch now fails

	display := &fakeSink{}
	distance := &fakeSink{}
	trigger := newFakeTrigger("Refresh")
	w, err := NewCacheWidget(NewClient(url, nil), StyleNanos, display,
		WithDistanceSink(distance), WithTrigger(trigger))
	require.NoError(t, err)

	w.Refresh(context.Background())

	require.Equal(t, SentinelDash, display.lastText())
	require.Equal(t, SentinelDash, distance.lastText())
	require.Equal(t, "Refresh", trigger.Label())
	require.Equal(t, []string{"disabled", "label:measuring…", "label:Refresh", "enabled"}, trigger.events)
}

func TestCacheWidgetAutoRateSentinel(t *testing.T) {
	ts := jsonServer(t, `not json`)

	display := &fakeSink{}
	w, err := NewCacheWidget(NewClient(ts.URL, nil), StyleAutoRate, display)
	require.NoError(t, err)

	w.Refresh(context.Background())
	require.Equal(t, SentinelErr, display.lastText())
}

func TestStackWidget(t *testing.T) {
	ts := jsonServer(t, `{"stack_ms": 3.25, "timestamp": 1700000000.5}`)

	display := &fakeSink{}
	distance := &fakeSink{}
	w, err := NewStackWidget(NewClient(ts.URL, nil), display, WithDistanceSink(distance))
	require.NoError(t, err)

	w.Refresh(context.Background())

	require.Equal(t, "3.250 ms", display.lastText())
	// 3.25 ms of light travel is close to a thousand kilometers.
	require.Equal(t, "974.33 km", distance.lastText())
}

func TestStackWidgetMissingFieldIsZero(t *testing.T) {
	ts := jsonServer(t, `{"timestamp": 1700000000.5}`)

	display := &fakeSink{}
	w, err := NewStackWidget(NewClient(ts.URL, nil), display)
	require.NoError(t, err)

	w.Refresh(context.Background())
	require.Equal(t, "0.000 ms", display.lastText())
}

func TestMissingDisplayAbortsConstruction(t *testing.T) {
	_, err := NewCacheWidget(NewClient("http://localhost:0", nil), StyleNanos, nil)
	require.ErrorIs(t, err, ErrNoDisplay)

	_, err = NewStackWidget(NewClient("http://localhost:0", nil), nil)
	require.ErrorIs(t, err, ErrNoDisplay)
}

func TestSupersededRefreshDoesNotApply(t *testing.T) {
	display := &fakeSink{}
	b := &base{display: display, sentinel: SentinelDash}

	first := b.begin()
	second := b.begin()

	// The older in-flight refresh resolves last but must not win.
	b.finish(second, func() { display.SetText("newer") })
	b.finish(first, func() { display.SetText("stale") })

	require.Equal(t, "newer", display.lastText())
}

func TestHighlightPulseClears(t *testing.T) {
	ts := jsonServer(t, `{"latency_ms": 1}`)

	display := &fakeSink{}
	w, err := NewCacheWidget(NewClient(ts.URL, nil), StyleNanos, display)
	require.NoError(t, err)

	w.Refresh(context.Background())

	display.mu.Lock()
	require.Equal(t, []bool{true}, display.highlights)
	display.mu.Unlock()

	require.Eventually(t, func() bool {
		display.mu.Lock()
		defer display.mu.Unlock()
		return len(display.highlights) == 2 && !display.highlights[1]
	}, 2*time.Second, 10*time.Millisecond)
}
