package ulid

import (
	"encoding/binary"
	"unicode/utf8"
)

const (
	// Size is the length of a ULID in bytes.
	Size = 16

	// EncodedSize is the length of the canonical text form.
	EncodedSize = 26

	// Alphabet is Crockford's Base32 symbol set; a symbol's index is its 5-bit value.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	invalidSymbol = 0xFF
)

// decoding maps an input byte to its 5-bit value, or invalidSymbol.
// Lower-case letters map to the same value as their upper-case form.
// It is built in a var initializer so Min and Max can be parsed during
// package initialization.
var decoding = newDecodingTable()

func newDecodingTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+('a'-'A')] = byte(i)
		}
	}
	return t
}

// Encode converts 16 raw bytes into the 26-character Crockford Base32 form.
func Encode(b []byte) (string, error) {
	if len(b) != Size {
		return "", &LengthError{Want: Size, Got: len(b)}
	}
	var src [Size]byte
	copy(src[:], b)
	var dst [EncodedSize]byte
	encode(&dst, &src)
	return string(dst[:]), nil
}

// Decode converts a 26-character Crockford Base32 string into 16 raw bytes.
// Input is case-insensitive. The two high bits of the first symbol are
// padding and are discarded.
func Decode(s string) ([]byte, error) {
	var dst [Size]byte
	if err := decode(&dst, s); err != nil {
		return nil, err
	}
	return dst[:], nil
}

// encode treats src as one 128-bit big-endian integer and emits it five bits
// at a time, most significant group first. The first group only ever holds
// the top 3 bits since the implicit 2 padding bits above them are zero.
func encode(dst *[EncodedSize]byte, src *[Size]byte) {
	hi := binary.BigEndian.Uint64(src[:8])
	lo := binary.BigEndian.Uint64(src[8:])
	for i := range dst {
		shift := uint(5 * (EncodedSize - 1 - i))
		dst[i] = Alphabet[shr128(hi, lo, shift)&0x1F]
	}
}

func decode(dst *[Size]byte, s string) error {
	if len(s) != EncodedSize {
		return &LengthError{Want: EncodedSize, Got: len(s)}
	}
	var hi, lo uint64
	for i := 0; i < EncodedSize; i++ {
		v := decoding[s[i]]
		if v == invalidSymbol {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return &CharacterError{Char: r, Pos: i}
		}
		// Shifting 130 bits through a 128-bit accumulator drops the
		// front padding off the top of hi.
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}
	binary.BigEndian.PutUint64(dst[:8], hi)
	binary.BigEndian.PutUint64(dst[8:], lo)
	return nil
}

// shr128 returns the low 64 bits of (hi:lo) >> n.
func shr128(hi, lo uint64, n uint) uint64 {
	if n >= 64 {
		return hi >> (n - 64)
	}
	return lo>>n | hi<<(64-n)
}
