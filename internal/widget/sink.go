package widget

import (
	"fmt"
	"io"
	"sync"
)

// Sink is a display element a widget writes into. Implementations must be
// safe for use from the highlight timer goroutine.
type Sink interface {
	SetText(text string)
	SetTitle(title string)
	SetHighlight(on bool)
}

// Trigger is an optional refresh control attached to a widget.
type Trigger interface {
	SetEnabled(enabled bool)
	SetLabel(label string)
	Label() string
}

// TerminalSink renders a labeled value line to a writer. Highlighted values
// are printed bold on ANSI terminals.
type TerminalSink struct {
	mu        sync.Mutex
	w         io.Writer
	name      string
	text      string
	title     string
	highlight bool
}

// NewTerminalSink creates a sink that prints to w under the given label.
func NewTerminalSink(w io.Writer, name string) *TerminalSink {
	return &TerminalSink{w: w, name: name}
}

func (s *TerminalSink) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.render()
}

func (s *TerminalSink) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *TerminalSink) SetHighlight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlight = on
}

func (s *TerminalSink) render() {
	line := fmt.Sprintf("%s: %s", s.name, s.text)
	if s.title != "" {
		line += fmt.Sprintf(" (%s)", s.title)
	}
	if s.highlight {
		line = "\033[1m" + line + "\033[0m"
	}
	fmt.Fprintln(s.w, line)
}
