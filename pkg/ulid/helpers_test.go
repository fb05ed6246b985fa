package ulid

import (
	"errors"
	"sync/atomic"
)

// constReader fills every read with the same byte.
type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

type failingReader struct{}

var errEntropyUnavailable = errors.New("entropy unavailable")

func (failingReader) Read([]byte) (int, error) {
	return 0, errEntropyUnavailable
}

func fixedClock(ms int64) Clock {
	return func() int64 { return ms }
}

// manualClock is a clock tests can move in either direction.
type manualClock struct {
	ms atomic.Int64
}

func newManualClock(ms int64) *manualClock {
	c := &manualClock{}
	c.ms.Store(ms)
	return c
}

func (c *manualClock) Now() int64 { return c.ms.Load() }

func (c *manualClock) Set(ms int64) { c.ms.Store(ms) }

func (c *manualClock) Advance(d int64) { c.ms.Add(d) }
