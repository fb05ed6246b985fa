package ulidpb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/plaenen/ulid/pkg/ulid"
)

const vector = "01EAWYQD59KTN275S079C9ESX7"

func TestWireRoundTrip(t *testing.T) {
	id := ulid.MustParse(vector)

	data, err := proto.Marshal(ToProto(id))
	require.NoError(t, err)

	var msg wrapperspb.StringValue
	require.NoError(t, proto.Unmarshal(data, &msg))
	assert.Equal(t, vector, msg.GetValue())

	got, err := FromProto(&msg)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestJSONRoundTrip(t *testing.T) {
	id := ulid.MustParse(vector)

	data, err := protojson.Marshal(ToProto(id))
	require.NoError(t, err)
	assert.JSONEq(t, `"01EAWYQD59KTN275S079C9ESX7"`, string(data))

	var msg wrapperspb.StringValue
	require.NoError(t, protojson.Unmarshal([]byte(`"01eawyqd59ktn275s079c9esx7"`), &msg))
	got, err := FromProto(&msg)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestFromProtoErrors(t *testing.T) {
	_, err := FromProto(nil)
	assert.ErrorIs(t, err, ErrNilMessage)

	_, err = FromProto(wrapperspb.String(""))
	assert.ErrorIs(t, err, ulid.ErrInvalidLength)

	_, err = FromProto(wrapperspb.String("01EAWYQD59KTN275S079C9ESXL"))
	assert.ErrorIs(t, err, ulid.ErrInvalidCharacter)
}

func TestSlices(t *testing.T) {
	ids := []ulid.ULID{ulid.Min, ulid.MustParse(vector), ulid.Max}

	got, err := FromProtoSlice(ToProtoSlice(ids))
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	_, err = FromProtoSlice([]*wrapperspb.StringValue{ToProto(ulid.Min), nil})
	assert.ErrorIs(t, err, ErrNilMessage)

	empty, err := FromProtoSlice(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
