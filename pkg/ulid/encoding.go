package ulid

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. encoding/json uses it, so a
// ULID is written as a JSON string.
func (id ULID) MarshalText() ([]byte, error) {
	var dst [EncodedSize]byte
	encode(&dst, &id.b)
	return dst[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error id is unchanged.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the 16-byte layout.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. On error id is unchanged.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. ULIDs are stored as their text form so
// columns sort the same way as the identifiers.
func (id ULID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the text form as a string or byte
// slice, or the raw 16-byte form. NULL is rejected; use NullULID for
// nullable columns.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return errors.New("ulid: cannot scan NULL into ULID")
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("ulid: cannot scan %T into ULID", src)
	}
}

// NullULID represents a ULID that may be NULL.
type NullULID struct {
	ULID  ULID
	Valid bool
}

// Scan implements sql.Scanner.
func (n *NullULID) Scan(src any) error {
	if src == nil {
		n.ULID, n.Valid = ULID{}, false
		return nil
	}
	if err := n.ULID.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullULID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ULID.Value()
}

// MarshalJSON writes null for an invalid NullULID and the text form otherwise.
func (n NullULID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.ULID)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullULID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		n.ULID, n.Valid = ULID{}, false
		return nil
	}
	if err := json.Unmarshal(data, &n.ULID); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
