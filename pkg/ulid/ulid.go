package ulid

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	// MaxTime is the largest millisecond timestamp a ULID can hold (2^48 - 1).
	MaxTime int64 = 1<<48 - 1

	timestampSize = 6
	entropySize   = Size - timestampSize
)

var (
	// Min is the smallest ULID, all 128 bits clear.
	Min = MustParse("00000000000000000000000000")

	// Max is the largest ULID, all 128 bits set.
	Max = MustParse("7ZZZZZZZZZZZZZZZZZZZZZZZZZ")
)

// ULID is an immutable 128-bit identifier: a 48-bit big-endian millisecond
// timestamp followed by 80 bits of randomness. The zero value equals Min.
type ULID struct {
	b [Size]byte
}

// FromBytes builds a ULID from exactly 16 raw bytes.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != Size {
		return ULID{}, &LengthError{Want: Size, Got: len(b)}
	}
	var id ULID
	copy(id.b[:], b)
	return id, nil
}

// Parse decodes the 26-character text form. Codec errors are returned as is.
func Parse(s string) (ULID, error) {
	var id ULID
	if err := decode(&id.b, s); err != nil {
		return ULID{}, err
	}
	return id, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical upper-case text form.
func (id ULID) String() string {
	var dst [EncodedSize]byte
	encode(&dst, &id.b)
	return string(dst[:])
}

// Bytes returns a copy of the 16-byte representation.
func (id ULID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id.b[:])
	return b
}

// Compare returns -1, 0 or 1 by unsigned byte-wise comparison, which orders
// first by timestamp and then by the random field.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id.b[:], other.b[:])
}

// Timestamp returns the embedded Unix time in milliseconds.
func (id ULID) Timestamp() int64 {
	return timestampOf(&id.b)
}

// Time returns the embedded timestamp as a time.Time.
func (id ULID) Time() time.Time {
	return time.UnixMilli(id.Timestamp())
}

// Entropy returns a copy of the 10-byte random field.
func (id ULID) Entropy() []byte {
	e := make([]byte, entropySize)
	copy(e, id.b[timestampSize:])
	return e
}

// IsZero reports whether id equals Min.
func (id ULID) IsZero() bool {
	return id == ULID{}
}

func timestampOf(b *[Size]byte) int64 {
	var ts [8]byte
	copy(ts[2:], b[:timestampSize])
	return int64(binary.BigEndian.Uint64(ts[:]))
}

func putTimestamp(b *[Size]byte, ms int64) {
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(ms))
	copy(b[:timestampSize], ts[2:])
}
