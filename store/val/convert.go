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
	stderrors "errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/store/scaled"
)

// ErrUnconvertible is returned when a Field cannot be converted to the requested type.
var ErrUnconvertible = errors.NewKind("can't convert %s to %s")

// ErrNotANumber is returned when text does not parse as a number.
var ErrNotANumber = errors.NewKind("can't convert string %q to %s: not a number")

// ErrOutOfRange is returned when text parses as a number that does not fit the destination.
var ErrOutOfRange = errors.NewKind("can't convert string %q to %s: value out of range")

// Convert converts |f| into T. Every Field kind has a defined outcome for
// every T: a value or an error naming both types.
func Convert[T any](f Field) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *Field:
		*p = f
	case *string:
		*p, err = toString(f)
	case *[]byte:
		*p, err = toBytes(f)
	case *int8:
		*p, err = toNumber[int8](f)
	case *int16:
		*p, err = toNumber[int16](f)
	case *int32:
		*p, err = toNumber[int32](f)
	case *int64:
		*p, err = toNumber[int64](f)
	case *int:
		*p, err = toNumber[int](f)
	case *uint8:
		*p, err = toNumber[uint8](f)
	case *uint16:
		*p, err = toNumber[uint16](f)
	case *uint32:
		*p, err = toNumber[uint32](f)
	case *uint64:
		*p, err = toNumber[uint64](f)
	case *uint:
		*p, err = toNumber[uint](f)
	case *float32:
		*p, err = toNumber[float32](f)
	case *float64:
		*p, err = toNumber[float64](f)
	case *decimal.Decimal:
		*p, err = toDecimal(f)
	case *time.Time:
		var ts Timestamp
		ts, err = toTimestamp(f)
		*p = ts.ToTime()
	case *Timestamp:
		*p, err = toTimestamp(f)
	case *BlobID:
		if id, ok := f.Blob(); ok {
			*p = id
		} else {
			err = unconvertible[T](f)
		}
	case *scaled.Int[int16]:
		*p, err = toScaled[int16](f)
	case *scaled.Int[int32]:
		*p, err = toScaled[int32](f)
	case *scaled.Int[int64]:
		*p, err = toScaled[int64](f)
	default:
		err = unconvertible[T](f)
	}

	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func unconvertible[T any](f Field) error {
	return ErrUnconvertible.New(f.kind, reflect.TypeFor[T]())
}

func toString(f Field) (string, error) {
	switch f.kind {
	case TextKind:
		return string(f.text), nil
	case Scaled16Kind, Scaled32Kind, Scaled64Kind:
		return scaled.New(f.num, f.scale).String(), nil
	case FloatKind:
		return strconv.FormatFloat(f.flt, 'f', -1, 32), nil
	case DoubleKind:
		return strconv.FormatFloat(f.flt, 'f', -1, 64), nil
	case TimestampKind:
		return f.ts.String(), nil
	case BlobKind:
		return f.blob.String(), nil
	default:
		return "", unconvertible[string](f)
	}
}

func toBytes(f Field) ([]byte, error) {
	if f.kind == TextKind {
		return append([]byte(nil), f.text...), nil
	}
	s, err := toString(f)
	if err != nil {
		return nil, unconvertible[[]byte](f)
	}
	return []byte(s), nil
}

func toNumber[N scaled.Number](f Field) (N, error) {
	switch f.kind {
	case Scaled16Kind:
		return scaled.Get[N](scaled.New(int16(f.num), f.scale))
	case Scaled32Kind:
		return scaled.Get[N](scaled.New(int32(f.num), f.scale))
	case Scaled64Kind:
		return scaled.Get[N](scaled.New(f.num, f.scale))
	case TextKind:
		return parseNumber[N](string(f.text))
	case FloatKind, DoubleKind:
		return fromFloat[N](f)
	default:
		return 0, unconvertible[N](f)
	}
}

// fromFloat only serves float destinations. A FLOAT widens to double, a
// DOUBLE narrows to float only when no precision is lost.
func fromFloat[N scaled.Number](f Field) (N, error) {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Float64:
		return N(f.flt), nil
	case reflect.Float32:
		if f.kind == FloatKind || float64(float32(f.flt)) == f.flt {
			return N(f.flt), nil
		}
	}
	return 0, unconvertible[N](f)
}

func parseNumber[N scaled.Number](s string) (N, error) {
	typ := reflect.TypeFor[N]()
	s = strings.TrimSpace(s)

	var out N
	var err error
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		var v float64
		v, err = strconv.ParseFloat(s, typ.Bits())
		out = N(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var v uint64
		v, err = strconv.ParseUint(s, 10, typ.Bits())
		out = N(v)
	default:
		var v int64
		v, err = strconv.ParseInt(s, 10, typ.Bits())
		out = N(v)
	}

	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange.New(s, typ)
		}
		return 0, ErrNotANumber.New(s, typ)
	}
	return out, nil
}

func toDecimal(f Field) (decimal.Decimal, error) {
	switch f.kind {
	case Scaled16Kind, Scaled32Kind, Scaled64Kind:
		return scaled.New(f.num, f.scale).Decimal(), nil
	case FloatKind:
		return decimal.NewFromFloat32(float32(f.flt)), nil
	case DoubleKind:
		return decimal.NewFromFloat(f.flt), nil
	case TextKind:
		s := strings.TrimSpace(string(f.text))
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, ErrNotANumber.New(s, "decimal.Decimal")
		}
		return d, nil
	default:
		return decimal.Decimal{}, unconvertible[decimal.Decimal](f)
	}
}

func toTimestamp(f Field) (Timestamp, error) {
	if ts, ok := f.Timestamp(); ok {
		return ts, nil
	}
	return Timestamp{}, unconvertible[Timestamp](f)
}

func toScaled[T scaled.Signed](f Field) (scaled.Int[T], error) {
	want := map[reflect.Kind]Kind{
		reflect.Int16: Scaled16Kind,
		reflect.Int32: Scaled32Kind,
		reflect.Int64: Scaled64Kind,
	}[reflect.TypeFor[T]().Kind()]
	if f.kind != want {
		return scaled.Int[T]{}, unconvertible[scaled.Int[T]](f)
	}
	return scaled.New(T(f.num), f.scale), nil
}
