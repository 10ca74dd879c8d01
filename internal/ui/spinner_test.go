package ui

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerPlainOutput(t *testing.T) {
	var out syncBuffer
	s := NewSpinnerTo(&out, false)

	s.Start("Fetching home page...")
	s.Update("Fetching home page...")
	s.Update("Extracted 40 products")
	s.Stop()

	require.Equal(t, "Fetching home page...\nExtracted 40 products\n", out.String())
}

func TestSpinnerAnimates(t *testing.T) {
	var out syncBuffer
	s := NewSpinnerTo(&out, true)
	s.interval = time.Millisecond

	s.Start("Working")
	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("Working"))
	}, time.Second, time.Millisecond)
	s.Stop()
	s.Stop()

	require.True(t, bytes.HasSuffix([]byte(out.String()), []byte("\r\033[K")))
}
