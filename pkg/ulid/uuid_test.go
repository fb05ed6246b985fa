package ulid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDInterop(t *testing.T) {
	id := MustParse(knownVector)

	u := id.UUID()
	assert.Equal(t, "0172b9eb-b4a9-9eaa-2397-203a589767a7", u.String())
	assert.Equal(t, id, FromUUID(u))

	parsed, err := uuid.Parse("0172b9eb-b4a9-9eaa-2397-203a589767a7")
	require.NoError(t, err)
	assert.Equal(t, knownVector, FromUUID(parsed).String())

	assert.Equal(t, uuid.Nil, Min.UUID())
	assert.Equal(t, Max, FromUUID(uuid.Max))
}
