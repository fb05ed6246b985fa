package ulid

import (
	"io"
	"log/slog"
	"sync"
)

// MonotonicGenerator produces ULIDs that never decrease. When the clock has
// not advanced past the last issued timestamp, including when it moves
// backwards, the previous random field is incremented by one instead of
// drawing fresh randomness.
//
// Each instance guards its own state with a mutex, so one instance may be
// shared between goroutines. Separate instances share nothing and give no
// ordering guarantees relative to each other.
type MonotonicGenerator struct {
	mu      sync.Mutex
	clock   Clock
	entropy io.Reader
	logger  *slog.Logger

	last    ULID
	hasLast bool
}

// monotonicConfig holds construction settings for a MonotonicGenerator.
type monotonicConfig struct {
	clock   Clock
	entropy io.Reader
	logger  *slog.Logger
}

func defaultMonotonicConfig() monotonicConfig {
	return monotonicConfig{
		clock:   Now,
		entropy: SecureEntropy(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// MonotonicOption configures a MonotonicGenerator.
type MonotonicOption func(*monotonicConfig)

// WithClock replaces the system clock.
func WithClock(clock Clock) MonotonicOption {
	return func(c *monotonicConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithEntropy sets the randomness source used at the start of each millisecond.
func WithEntropy(entropy io.Reader) MonotonicOption {
	return func(c *monotonicConfig) {
		if entropy != nil {
			c.entropy = entropy
		}
	}
}

// WithSecureEntropy selects SecureEntropy when true and FastEntropy when false.
func WithSecureEntropy(secure bool) MonotonicOption {
	return func(c *monotonicConfig) {
		if secure {
			c.entropy = SecureEntropy()
		} else {
			c.entropy = FastEntropy()
		}
	}
}

// WithLogger sets the logger for clock regressions and overflows.
func WithLogger(logger *slog.Logger) MonotonicOption {
	return func(c *monotonicConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewMonotonicGenerator creates a generator using the system clock and
// SecureEntropy unless options say otherwise.
func NewMonotonicGenerator(opts ...MonotonicOption) *MonotonicGenerator {
	config := defaultMonotonicConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &MonotonicGenerator{
		clock:   config.clock,
		entropy: config.entropy,
		logger:  config.logger,
	}
}

// Next returns the next ULID in the sequence.
//
// If the clock reads later than the last issued timestamp a fresh ULID is
// built from it. Otherwise the result keeps the last timestamp and carries a
// random field one greater than before. ErrRandomOverflow is returned when
// that field is already all ones; the generator state is left untouched so a
// later call succeeds once the clock moves on.
func (g *MonotonicGenerator) Next() (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.clock()

	if !g.hasLast || ms > g.last.Timestamp() {
		var next ULID
		if err := fill(&next.b, ms, g.entropy); err != nil {
			return ULID{}, err
		}
		g.last = next
		g.hasLast = true
		return next, nil
	}

	if last := g.last.Timestamp(); ms < last {
		g.logger.Debug("clock regression, reusing last timestamp",
			slog.Int64("clock_ms", ms),
			slog.Int64("last_ms", last),
		)
	}

	next := g.last
	if !incrementEntropy(&next.b) {
		g.logger.Warn("random field exhausted within millisecond",
			slog.Int64("last_ms", g.last.Timestamp()),
		)
		return ULID{}, ErrRandomOverflow
	}
	g.last = next
	return next, nil
}

// incrementEntropy adds one to bytes 6..15 as a big-endian integer. It
// reports false, leaving b unchanged, if the field was all ones.
func incrementEntropy(b *[Size]byte) bool {
	for i := Size - 1; i >= timestampSize; i-- {
		if b[i] != 0xFF {
			b[i]++
			for j := i + 1; j < Size; j++ {
				b[j] = 0
			}
			return true
		}
	}
	return false
}
