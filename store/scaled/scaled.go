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

// Package scaled implements fixed point integers of the form value * 10^scale
// as they travel in SHORT, LONG and INT64 columns.
package scaled

import (
	"math"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrScale is returned when a scaled integer cannot be represented exactly in
// the requested destination type.
var ErrScale = errors.NewKind("scaled integer of type %q and scale %d does not fit into %q")

// ErrBufferTooSmall is returned when a rendering does not fit in the caller's buffer.
var ErrBufferTooSmall = errors.NewKind("buffer too small for scaled integer: need %d bytes, have %d")

// Signed is the set of storage types a scaled integer can be backed by.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Number is the set of destination types accepted by Get.
type Number interface {
	Signed | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~float32 | ~float64
}

// Int is the fixed point number Value * 10^Scale.
type Int[T Signed] struct {
	Value T
	Scale int16
}

func New[T Signed](v T, scale int16) Int[T] {
	return Int[T]{Value: v, Scale: scale}
}

// Get converts |s| into U. Destinations narrower than T are always rejected,
// whatever the value. A positive scale multiplies and fails on overflow, a
// negative scale divides and truncates toward zero. Float destinations keep
// the fractional part.
func Get[U Number, T Signed](s Int[T]) (U, error) {
	dst := reflect.TypeFor[U]()
	if dst.Size() < reflect.TypeFor[T]().Size() {
		return 0, s.errFor(dst)
	}

	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		return getFloat[U](s, dst)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return getUnsigned[U](s, dst)
	default:
		return getSigned[U](s, dst)
	}
}

func getSigned[U Number, T Signed](s Int[T], dst reflect.Type) (U, error) {
	hi := int64(math.MaxInt64 >> (64 - dst.Bits()))
	lo := -hi - 1

	v := int64(s.Value)
	for i := int16(0); i < s.Scale && v != 0; i++ {
		if v > hi/10 || v < lo/10 {
			return 0, s.errFor(dst)
		}
		v *= 10
	}
	for i := s.Scale; i < 0 && v != 0; i++ {
		v /= 10
	}
	return U(v), nil
}

func getUnsigned[U Number, T Signed](s Int[T], dst reflect.Type) (U, error) {
	hi := uint64(math.MaxUint64) >> (64 - dst.Bits())

	v := int64(s.Value)
	for i := s.Scale; i < 0 && v != 0; i++ {
		v /= 10
	}
	if v < 0 {
		return 0, s.errFor(dst)
	}

	u := uint64(v)
	for i := int16(0); i < s.Scale && u != 0; i++ {
		if u > hi/10 {
			return 0, s.errFor(dst)
		}
		u *= 10
	}
	return U(u), nil
}

func getFloat[U Number, T Signed](s Int[T], dst reflect.Type) (U, error) {
	f := float64(s.Value)
	if s.Scale > 0 {
		f *= math.Pow10(int(s.Scale))
	} else if s.Scale < 0 {
		f /= math.Pow10(int(-s.Scale))
	}

	r := U(f)
	if math.IsInf(float64(r), 0) {
		return 0, s.errFor(dst)
	}
	return r, nil
}

func (s Int[T]) errFor(dst reflect.Type) error {
	return ErrScale.New(reflect.TypeFor[T]().String(), s.Scale, dst.String())
}

// digits writes the decimal digits of |s.Value| without sign into |tmp|.
func (s Int[T]) digits(tmp *[20]byte) []byte {
	u := uint64(int64(s.Value))
	if s.Value < 0 {
		u = -u
	}
	return strconv.AppendUint(tmp[:0], u, 10)
}

// Len returns the number of bytes FormatTo needs to render |s|.
func (s Int[T]) Len() int {
	if s.Value == 0 {
		return 1
	}

	var tmp [20]byte
	n := len(s.digits(&tmp))
	l := n
	if s.Value < 0 {
		l++
	}
	if s.Scale > 0 {
		l += int(s.Scale)
	} else if s.Scale < 0 {
		frac := int(-s.Scale)
		if n <= frac {
			// leading zero plus padding
			l += frac - n + 1
		}
		l++
	}
	return l
}

// FormatTo renders the exact decimal form of |s| into the front of |buf| and
// returns the written prefix. It fails rather than truncate when len(buf) is
// shorter than Len().
func (s Int[T]) FormatTo(buf []byte) ([]byte, error) {
	need := s.Len()
	if len(buf) < need {
		return nil, ErrBufferTooSmall.New(need, len(buf))
	}

	out := buf[:0]
	if s.Value == 0 {
		return append(out, '0'), nil
	}

	var tmp [20]byte
	d := s.digits(&tmp)
	if s.Value < 0 {
		out = append(out, '-')
	}

	if s.Scale >= 0 {
		out = append(out, d...)
		for i := int16(0); i < s.Scale; i++ {
			out = append(out, '0')
		}
		return out, nil
	}

	frac := int(-s.Scale)
	if len(d) > frac {
		out = append(out, d[:len(d)-frac]...)
		out = append(out, '.')
		return append(out, d[len(d)-frac:]...), nil
	}

	out = append(out, '0', '.')
	for i := len(d); i < frac; i++ {
		out = append(out, '0')
	}
	return append(out, d...), nil
}

func (s Int[T]) String() string {
	out, err := s.FormatTo(make([]byte, s.Len()))
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Decimal returns |s| as an arbitrary precision decimal.
func (s Int[T]) Decimal() decimal.Decimal {
	return decimal.New(int64(s.Value), int32(s.Scale))
}

// FromDecimal returns the scaled integer with |scale| equal to |d|. It fails
// if |d| has more fractional digits than |scale| allows or overflows T.
func FromDecimal[T Signed](d decimal.Decimal, scale int16) (Int[T], error) {
	shifted := d.Shift(-int32(scale))
	if !shifted.IsInteger() {
		return Int[T]{}, ErrScale.New("decimal", scale, reflect.TypeFor[T]().String())
	}

	bits := reflect.TypeFor[T]().Bits()
	hi := decimal.NewFromInt(math.MaxInt64 >> (64 - bits))
	lo := hi.Neg().Sub(decimal.NewFromInt(1))
	if shifted.GreaterThan(hi) || shifted.LessThan(lo) {
		return Int[T]{}, ErrScale.New("decimal", scale, reflect.TypeFor[T]().String())
	}
	return Int[T]{Value: T(shifted.IntPart()), Scale: scale}, nil
}
