// Package ui renders CLI progress on stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var frames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner displays an animated progress indicator. When the output is not a
// terminal it prints each distinct message on its own line instead.
type Spinner struct {
	mu       sync.Mutex
	out      io.Writer
	animate  bool
	interval time.Duration
	msg      string
	done     chan struct{}
	stopped  chan struct{}
}

// NewSpinner returns a stopped spinner writing to stderr.
func NewSpinner() *Spinner {
	return NewSpinnerTo(os.Stderr, isTerminal(os.Stderr))
}

// NewSpinnerTo returns a stopped spinner writing to out.
func NewSpinnerTo(out io.Writer, animate bool) *Spinner {
	return &Spinner{out: out, animate: animate, interval: 80 * time.Millisecond}
}

// Start begins the spinner animation with the given message.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.msg = msg
	if !s.animate {
		fmt.Fprintln(s.out, msg)
		return
	}
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.run(s.done, s.stopped)
}

// Update changes the message. Its signature matches platform.ProgressFunc.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg == s.msg {
		return
	}
	s.msg = msg
	if !s.animate {
		fmt.Fprintln(s.out, msg)
	}
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	done, stopped := s.done, s.stopped
	s.done, s.stopped = nil, nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	<-stopped
	fmt.Fprint(s.out, "\r\033[K")
}

func (s *Spinner) run(done, stopped chan struct{}) {
	defer close(stopped)
	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-tick.C:
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r\033[K%c %s", frames[i%len(frames)], s.msg)
			s.mu.Unlock()
		}
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
