package ulid

import (
	"fmt"
	"io"
)

// Generate builds a ULID from a millisecond timestamp and 10 bytes read from
// entropy. The random bytes are stored unmodified.
func Generate(ms int64, entropy io.Reader) (ULID, error) {
	var id ULID
	if err := fill(&id.b, ms, entropy); err != nil {
		return ULID{}, err
	}
	return id, nil
}

// New generates a ULID for the current time.
func New(entropy io.Reader) (ULID, error) {
	return Generate(Now(), entropy)
}

// Make generates a ULID for the current time from SecureEntropy. It panics
// only if the system randomness source fails.
func Make() ULID {
	id, err := New(SecureEntropy())
	if err != nil {
		panic(err)
	}
	return id
}

func fill(b *[Size]byte, ms int64, entropy io.Reader) error {
	if ms < 0 || ms > MaxTime {
		return &TimestampError{Timestamp: ms}
	}
	putTimestamp(b, ms)
	if _, err := io.ReadFull(entropy, b[timestampSize:]); err != nil {
		return fmt.Errorf("ulid: read entropy: %w", err)
	}
	return nil
}
