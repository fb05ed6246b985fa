package ulid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when raw bytes are not 16 long or text is not 26 characters.
	ErrInvalidLength = errors.New("ulid: invalid length")

	// ErrInvalidCharacter is returned when text contains a symbol outside the Crockford alphabet.
	ErrInvalidCharacter = errors.New("ulid: invalid character")

	// ErrTimestampOutOfRange is returned for timestamps below 0 or above MaxTime.
	ErrTimestampOutOfRange = errors.New("ulid: timestamp out of range")

	// ErrRandomOverflow is returned when a monotonic increment would wrap the 80-bit random field.
	ErrRandomOverflow = errors.New("ulid: monotonic random field overflow")
)

// LengthError reports an input of the wrong size.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("ulid: invalid length: want %d, got %d", e.Want, e.Got)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// CharacterError names the offending character and its byte offset in the input.
type CharacterError struct {
	Char rune
	Pos  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("ulid: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// TimestampError carries the rejected millisecond timestamp.
type TimestampError struct {
	Timestamp int64
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("ulid: timestamp %d out of range [0, %d]", e.Timestamp, MaxTime)
}

func (e *TimestampError) Is(target error) bool {
	return target == ErrTimestampOutOfRange
}
