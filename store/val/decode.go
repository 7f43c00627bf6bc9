// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package val

import (
	"bytes"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/store/scaled"
)

// ErrUnsupportedType is returned for wire types that have no Field shape.
var ErrUnsupportedType = errors.NewKind("sql type %s (%d) is not supported")

// ErrMalformedValue is returned when slot bytes cannot hold the value their
// type requires.
var ErrMalformedValue = errors.NewKind("malformed %s value: %s")

// OctetsCharset is the TEXT subtype of binary CHAR columns.
const OctetsCharset int16 = 1

// Desc is the part of a column descriptor needed to interpret its slot.
type Desc struct {
	Type    SQLType
	Scale   int16
	SubType int16
	Length  ByteSize
}

// Decode interprets |data| as a value of type |d|. Nullability is the
// caller's concern. TEXT values have trailing blanks and NULs removed unless
// the column holds octets; the padded bytes stay available from the slot
// itself (sqlda.Var.Data).
func (d Desc) Decode(data []byte) (Field, error) {
	switch d.Type {
	case TypeNull:
		return NullField(), nil

	case TypeText:
		if len(data) < int(d.Length) {
			return Field{}, ErrMalformedValue.New(d.Type, "slot shorter than declared length")
		}
		text := data[:d.Length]
		if d.SubType != OctetsCharset {
			text = bytes.TrimRight(text, " \x00")
		}
		return TextField(text), nil

	case TypeVarying:
		if len(data) < int(VaryingPrefix) {
			return Field{}, ErrMalformedValue.New(d.Type, "missing length prefix")
		}
		start := int(VaryingPrefix)
		end := start + int(ReadVaryingLen(data))
		if end > len(data) {
			return Field{}, ErrMalformedValue.New(d.Type, "length prefix exceeds slot")
		}
		return TextField(data[start:end]), nil
	}

	sz, ok := FixedSize(d.Type)
	if !ok {
		return Field{}, ErrUnsupportedType.New(d.Type, int16(d.Type))
	}
	if len(data) < int(sz) {
		return Field{}, ErrMalformedValue.New(d.Type, "slot shorter than encoding")
	}
	data = data[:sz]

	switch d.Type {
	case TypeShort:
		return Scaled16Field(scaled.New(readInt16(data), d.Scale)), nil
	case TypeLong:
		return Scaled32Field(scaled.New(readInt32(data), d.Scale)), nil
	case TypeInt64:
		return Scaled64Field(scaled.New(readInt64(data), d.Scale)), nil
	case TypeFloat:
		return FloatField(readFloat32(data)), nil
	case TypeDouble:
		return DoubleField(readFloat64(data)), nil
	case TypeTimestamp:
		return TimestampField(readTimestamp(data)), nil
	case TypeDate:
		return TimestampField(Timestamp{Date: readInt32(data)}), nil
	case TypeTime:
		return TimestampField(Timestamp{Time: readUint32(data)}), nil
	case TypeBlob, TypeArray:
		return BlobField(readQuad(data)), nil
	default:
		// QUAD has a width but no value shape
		return Field{}, ErrUnsupportedType.New(d.Type, int16(d.Type))
	}
}
