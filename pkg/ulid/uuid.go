package ulid

import "github.com/google/uuid"

// UUID reinterprets the 16 bytes as a UUID. No version or variant bits are
// set, so the result is generally not a valid RFC 9562 UUID, but it fits
// UUID-typed columns and APIs and converts back losslessly.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id.b)
}

// FromUUID reinterprets a UUID's 16 bytes as a ULID.
func FromUUID(u uuid.UUID) ULID {
	return ULID{b: u}
}
