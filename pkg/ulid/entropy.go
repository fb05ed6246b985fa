package ulid

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"
)

// Clock returns the current Unix time in milliseconds.
type Clock func() int64

// Now reads the system clock in milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// Timestamp converts t to Unix milliseconds.
func Timestamp(t time.Time) int64 {
	return t.UnixMilli()
}

// SecureEntropy returns the operating system's cryptographically secure source.
func SecureEntropy() io.Reader {
	return crand.Reader
}

// FastEntropy returns a ChaCha8 stream seeded once from crypto/rand. It is
// cheaper per read than SecureEntropy and safe for concurrent use, but its
// output is predictable to anyone who learns the seed.
func FastEntropy() io.Reader {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("ulid: seed fast entropy: %v", err))
	}
	return &lockedReader{r: rand.NewChaCha8(seed)}
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
