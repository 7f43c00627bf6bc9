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
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/store/scaled"
)

// ErrUnsupportedParam is returned for Go values with no wire encoding.
var ErrUnsupportedParam = errors.NewKind("no wire encoding for value of type %T")

// ErrParamRange is returned when a Go value does not fit the wire type chosen for it.
var ErrParamRange = errors.NewKind("value %v does not fit into %s")

var timeLayouts = []string{
	"2006-01-02 15:04:05.0000",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05.0000",
	"15:04:05",
}

// Encoded is a self describing parameter value.
type Encoded struct {
	Type  SQLType
	Scale int16
	Data  []byte
}

func encodeFixed(typ SQLType, scale int16, put func([]byte)) Encoded {
	sz, _ := FixedSize(typ)
	buf := make([]byte, sz)
	put(buf)
	return Encoded{Type: typ, Scale: scale, Data: buf}
}

func encodeShort(v int16, scale int16) Encoded {
	return encodeFixed(TypeShort, scale, func(b []byte) { writeInt16(b, v) })
}

func encodeLong(v int32, scale int16) Encoded {
	return encodeFixed(TypeLong, scale, func(b []byte) { writeInt32(b, v) })
}

func encodeInt64(v int64, scale int16) Encoded {
	return encodeFixed(TypeInt64, scale, func(b []byte) { writeInt64(b, v) })
}

// Encode picks the natural wire type for |v| and encodes it.
func Encode(v any) (Encoded, error) {
	switch v := v.(type) {
	case int8:
		return encodeShort(int16(v), 0), nil
	case uint8:
		return encodeShort(int16(v), 0), nil
	case int16:
		return encodeShort(v, 0), nil
	case uint16:
		return encodeLong(int32(v), 0), nil
	case int32:
		return encodeLong(v, 0), nil
	case uint32:
		return encodeInt64(int64(v), 0), nil
	case int:
		return encodeInt64(int64(v), 0), nil
	case int64:
		return encodeInt64(v, 0), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return Encoded{}, ErrParamRange.New(v, TypeInt64)
		}
		return encodeInt64(int64(v), 0), nil
	case uint64:
		if v > math.MaxInt64 {
			return Encoded{}, ErrParamRange.New(v, TypeInt64)
		}
		return encodeInt64(int64(v), 0), nil
	case scaled.Int[int16]:
		return encodeShort(v.Value, v.Scale), nil
	case scaled.Int[int32]:
		return encodeLong(v.Value, v.Scale), nil
	case scaled.Int[int64]:
		return encodeInt64(v.Value, v.Scale), nil
	case decimal.Decimal:
		exp := v.Exponent()
		if exp < math.MinInt16 || exp > math.MaxInt16 {
			return Encoded{}, ErrParamRange.New(v, TypeInt64)
		}
		s, err := scaled.FromDecimal[int64](v, int16(exp))
		if err != nil {
			return Encoded{}, ErrParamRange.New(v, TypeInt64)
		}
		return encodeInt64(s.Value, s.Scale), nil
	case float32:
		return encodeFixed(TypeFloat, 0, func(b []byte) { writeFloat32(b, v) }), nil
	case float64:
		return encodeFixed(TypeDouble, 0, func(b []byte) { writeFloat64(b, v) }), nil
	case string:
		return Encoded{Type: TypeText, Data: []byte(v)}, nil
	case []byte:
		return Encoded{Type: TypeText, Data: append([]byte(nil), v...)}, nil
	case Timestamp:
		return encodeFixed(TypeTimestamp, 0, func(b []byte) { writeTimestamp(b, v) }), nil
	case time.Time:
		ts := FromTime(v)
		return encodeFixed(TypeTimestamp, 0, func(b []byte) { writeTimestamp(b, ts) }), nil
	case BlobID:
		return encodeFixed(TypeBlob, 0, func(b []byte) { writeQuad(b, v) }), nil
	default:
		return Encoded{}, ErrUnsupportedParam.New(v)
	}
}

// Put encodes |v| into |slot| as a value of type |d|, converting as needed.
// Transports use it to fill fetched rows. TEXT values are blank padded to the
// declared length.
func (d Desc) Put(slot []byte, v any) error {
	switch d.Type {
	case TypeText, TypeVarying:
		b, err := textOf(v)
		if err != nil {
			return err
		}
		if len(b) > int(d.Length) {
			return ErrParamRange.New(string(b), fmt.Sprintf("%s(%d)", d.Type, d.Length))
		}
		if d.Type == TypeVarying {
			if len(slot) < int(VaryingPrefix)+len(b) {
				return ErrMalformedValue.New(d.Type, "slot shorter than value")
			}
			writeInt16(slot[:VaryingPrefix], int16(len(b)))
			copy(slot[VaryingPrefix:], b)
			return nil
		}
		if len(slot) < int(d.Length) {
			return ErrMalformedValue.New(d.Type, "slot shorter than declared length")
		}
		n := copy(slot, b)
		pad := byte(' ')
		if d.SubType == OctetsCharset {
			pad = 0
		}
		for i := n; i < int(d.Length); i++ {
			slot[i] = pad
		}
		return nil
	}

	sz, ok := FixedSize(d.Type)
	if !ok {
		return ErrUnsupportedType.New(d.Type, int16(d.Type))
	}
	if len(slot) < int(sz) {
		return ErrMalformedValue.New(d.Type, "slot shorter than encoding")
	}
	slot = slot[:sz]

	switch d.Type {
	case TypeShort:
		s, err := scaledOf[int16](v, d.Scale)
		if err != nil {
			return err
		}
		writeInt16(slot, s.Value)
	case TypeLong:
		s, err := scaledOf[int32](v, d.Scale)
		if err != nil {
			return err
		}
		writeInt32(slot, s.Value)
	case TypeInt64:
		s, err := scaledOf[int64](v, d.Scale)
		if err != nil {
			return err
		}
		writeInt64(slot, s.Value)
	case TypeFloat:
		f, err := floatOf(v)
		if err != nil {
			return err
		}
		if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return ErrParamRange.New(v, d.Type)
		}
		writeFloat32(slot, float32(f))
	case TypeDouble:
		f, err := floatOf(v)
		if err != nil {
			return err
		}
		writeFloat64(slot, f)
	case TypeTimestamp:
		ts, err := timestampOf(v)
		if err != nil {
			return err
		}
		writeTimestamp(slot, ts)
	case TypeDate:
		ts, err := timestampOf(v)
		if err != nil {
			return err
		}
		writeInt32(slot, ts.Date)
	case TypeTime:
		ts, err := timestampOf(v)
		if err != nil {
			return err
		}
		writeUint32(slot, ts.Time)
	case TypeBlob, TypeArray:
		id, ok := v.(BlobID)
		if !ok {
			return ErrUnsupportedParam.New(v)
		}
		writeQuad(slot, id)
	default:
		return ErrUnsupportedType.New(d.Type, int16(d.Type))
	}
	return nil
}

func textOf(v any) ([]byte, error) {
	switch v := v.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return []byte(fmt.Sprint(v)), nil
	default:
		return nil, ErrUnsupportedParam.New(v)
	}
}

func decimalOf(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case scaled.Int[int16]:
		return v.Decimal(), nil
	case scaled.Int[int32]:
		return v.Decimal(), nil
	case scaled.Int[int64]:
		return v.Decimal(), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, ErrNotANumber.New(v, "decimal")
		}
		return d, nil
	default:
		return decimal.Decimal{}, ErrUnsupportedParam.New(v)
	}
}

func scaledOf[T scaled.Signed](v any, scale int16) (scaled.Int[T], error) {
	d, err := decimalOf(v)
	if err != nil {
		return scaled.Int[T]{}, err
	}
	return scaled.FromDecimal[T](d, scale)
}

func floatOf(v any) (float64, error) {
	switch v := v.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	}
	d, err := decimalOf(v)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

func timestampOf(v any) (Timestamp, error) {
	switch v := v.(type) {
	case Timestamp:
		return v, nil
	case time.Time:
		return FromTime(v), nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				if layout[0] == '1' {
					// time only layouts parse into year 0
					return Timestamp{Time: FromTime(t).Time}, nil
				}
				return FromTime(t), nil
			}
		}
		return Timestamp{}, ErrUnsupportedParam.New(v)
	default:
		return Timestamp{}, ErrUnsupportedParam.New(v)
	}
}
