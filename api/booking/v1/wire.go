// Package bookingv1 holds the wire types of booking.proto and the codec that
// moves them. The types are maintained by hand with protowire.
package bookingv1

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every type in this package.
type Message interface {
	MarshalWire() []byte
	UnmarshalWire(b []byte) error
}

// Codec speaks protobuf for Message values and falls back to the
// protobuf runtime for generated types.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.MarshalWire(), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("bookingv1: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("bookingv1: cannot unmarshal into %T", v)
}

func (Codec) Name() string { return "proto" }

type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// errInvalidUTF8 matches the protobuf runtime: proto3 strings must be UTF-8.
var errInvalidUTF8 = errors.New("bookingv1: string field contains invalid UTF-8")

func (f field) str() (string, error) {
	if !utf8.Valid(f.bytes) {
		return "", fmt.Errorf("field %d: %w", f.num, errInvalidUTF8)
	}
	return string(f.bytes), nil
}

func (f field) bool() bool { return f.typ == protowire.VarintType && f.varint != 0 }

// consumeFields walks b and hands every varint and length-delimited field to
// fn. Other wire types are skipped.
func consumeFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.varint = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.bytes = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.MarshalWire())
}

// appendTime writes t as a google.protobuf.Timestamp; zero times are omitted.
func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	ts := timestamppb.New(t)
	var inner []byte
	inner = appendInt(inner, 1, ts.Seconds)
	inner = appendInt(inner, 2, int64(ts.Nanos))
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func parseTime(b []byte) (time.Time, error) {
	ts := &timestamppb.Timestamp{}
	err := consumeFields(b, func(f field) error {
		switch f.num {
		case 1:
			ts.Seconds = int64(f.varint)
		case 2:
			ts.Nanos = int32(f.varint)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}
