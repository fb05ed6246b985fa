// Package ulidpb carries ULIDs in protobuf messages as
// google.protobuf.StringValue holding the canonical text form.
package ulidpb

import (
	"errors"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/plaenen/ulid/pkg/ulid"
)

// ErrNilMessage is returned by FromProto for a nil message.
var ErrNilMessage = errors.New("ulidpb: nil message")

// ToProto wraps the text form of id.
func ToProto(id ulid.ULID) *wrapperspb.StringValue {
	return wrapperspb.String(id.String())
}

// FromProto parses the wrapped text form. Parse errors are returned unchanged.
func FromProto(v *wrapperspb.StringValue) (ulid.ULID, error) {
	if v == nil {
		return ulid.ULID{}, ErrNilMessage
	}
	return ulid.Parse(v.GetValue())
}

// ToProtoSlice wraps each identifier in order.
func ToProtoSlice(ids []ulid.ULID) []*wrapperspb.StringValue {
	out := make([]*wrapperspb.StringValue, len(ids))
	for i, id := range ids {
		out[i] = ToProto(id)
	}
	return out
}

// FromProtoSlice parses each message, stopping at the first error.
func FromProtoSlice(vs []*wrapperspb.StringValue) ([]ulid.ULID, error) {
	out := make([]ulid.ULID, len(vs))
	for i, v := range vs {
		id, err := FromProto(v)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
