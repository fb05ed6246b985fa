// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// A ULID is 16 bytes: a 48-bit big-endian Unix millisecond timestamp followed
// by 80 bits of randomness. Its text form is 26 Crockford Base32 characters
// that sort in the same order as the bytes:
//
//	 01EAWYQD59      KTN275S079C9ESX7
//	|----------|    |----------------|
//	 timestamp          randomness
//	  48 bits             80 bits
//
// Generate and New build independent identifiers from a timestamp and an
// io.Reader. MonotonicGenerator keeps the last identifier it issued and, when
// the clock has not advanced, increments its random field so identifiers from
// the same millisecond stay strictly ordered:
//
//	gen := ulid.NewMonotonicGenerator()
//	id, err := gen.Next()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 01J9...
//
// Parsing accepts lower-case input; String always returns upper case.
package ulid
