// Package idgen hands out sortable string identifiers from one process-wide
// monotonic generator.
package idgen

import (
	"github.com/plaenen/ulid/pkg/ulid"
)

var generator = ulid.NewMonotonicGenerator()

// GenerateSortableID returns the next identifier in text form. Identifiers
// from the same process never sort below one issued earlier.
func GenerateSortableID() (string, error) {
	id, err := generator.Next()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// MustGenerateSortableID is like GenerateSortableID but panics on error.
func MustGenerateSortableID() string {
	id, err := GenerateSortableID()
	if err != nil {
		panic(err)
	}
	return id
}
