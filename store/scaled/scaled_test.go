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

package scaled

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNarrowingAlwaysFails(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, math.MaxInt32, math.MinInt32} {
		for _, scale := range []int16{-5, 0, 3} {
			_, err := Get[int16](New(v, scale))
			assert.True(t, ErrScale.Is(err), "value %d scale %d", v, scale)
			_, err = Get[uint8](New(v, scale))
			assert.True(t, ErrScale.Is(err))
			_, err = Get[float32](New(int64(v), scale))
			assert.True(t, ErrScale.Is(err))
		}
	}
}

func TestGetPositiveScale(t *testing.T) {
	tests := []struct {
		name  string
		value int16
		scale int16
		exp   int64
		fails bool
	}{
		{"zero scale", 1234, 0, 1234, false},
		{"one", 42, 1, 420, false},
		{"three", 42, 3, 42000, false},
		{"negative", -7, 2, -700, false},
		{"zero value", 0, 40, 0, false},
		{"overflow", math.MaxInt16, 16, 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := Get[int64](New(test.value, test.scale))
			if test.fails {
				assert.True(t, ErrScale.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.exp, v)
		})
	}
}

func TestGetOverflowBoundary(t *testing.T) {
	v, err := Get[int16](New[int16](3276, 1))
	require.NoError(t, err)
	assert.Equal(t, int16(32760), v)

	_, err = Get[int16](New[int16](3277, 1))
	assert.True(t, ErrScale.Is(err))

	v, err = Get[int16](New[int16](-3276, 1))
	require.NoError(t, err)
	assert.Equal(t, int16(-32760), v)

	_, err = Get[int16](New[int16](-3277, 1))
	assert.True(t, ErrScale.Is(err))

	_, err = Get[int64](New[int64](math.MaxInt64/10+1, 1))
	assert.True(t, ErrScale.Is(err))
}

func TestGetNegativeScaleTruncates(t *testing.T) {
	v, err := Get[int32](New[int32](1579, -1))
	require.NoError(t, err)
	assert.Equal(t, int32(157), v)

	v, err = Get[int32](New[int32](-1579, -1))
	require.NoError(t, err)
	assert.Equal(t, int32(-157), v)

	v, err = Get[int32](New[int32](1579, -5))
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)

	w, err := Get[int64](New[int16](math.MinInt16, -2))
	require.NoError(t, err)
	assert.Equal(t, int64(-327), w)
}

func TestGetUnsigned(t *testing.T) {
	v, err := Get[uint32](New[int32](12, 2))
	require.NoError(t, err)
	assert.Equal(t, uint32(1200), v)

	_, err = Get[uint64](New[int32](-12, 0))
	assert.True(t, ErrScale.Is(err))

	// truncates to zero before the sign matters
	u, err := Get[uint64](New[int32](-5, -1))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), u)

	_, err = Get[uint16](New[int16](6554, 1))
	assert.True(t, ErrScale.Is(err))
}

func TestGetFloat(t *testing.T) {
	f, err := Get[float64](New[int32](12345, -2))
	require.NoError(t, err)
	assert.Equal(t, 123.45, f)

	f, err = Get[float64](New[int64](-3, 2))
	require.NoError(t, err)
	assert.Equal(t, -300.0, f)

	g, err := Get[float32](New[int32](15, -1))
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), g)

	_, err = Get[float32](New[int32](math.MaxInt32, 32))
	assert.True(t, ErrScale.Is(err))
}

func TestErrScaleMessage(t *testing.T) {
	_, err := Get[int16](New[int32](1, 2))
	require.Error(t, err)
	assert.Equal(t, `scaled integer of type "int32" and scale 2 does not fit into "int16"`, err.Error())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value int64
		scale int16
		exp   string
	}{
		{1579, -1, "157.9"},
		{42, 3, "42000"},
		{42, -3, "0.042"},
		{42, -2, "0.42"},
		{-42, 0, "-42"},
		{-42, -3, "-0.042"},
		{1500, -2, "15.00"},
		{0, 0, "0"},
		{0, -4, "0"},
		{0, 7, "0"},
		{math.MinInt64, 0, "-9223372036854775808"},
		{math.MinInt64, -19, "-0.9223372036854775808"},
	}

	for _, test := range tests {
		t.Run(test.exp, func(t *testing.T) {
			s := New(test.value, test.scale)
			assert.Equal(t, test.exp, s.String())
			assert.Equal(t, len(test.exp), s.Len())
		})
	}
}

func TestFormatToCapacity(t *testing.T) {
	values := []Int[int32]{
		New[int32](1579, -1),
		New[int32](42, 3),
		New[int32](42, -3),
		New[int32](-42, 0),
		New[int32](math.MinInt32, -4),
	}

	for _, s := range values {
		need := s.Len()

		_, err := s.FormatTo(make([]byte, need-1))
		assert.True(t, ErrBufferTooSmall.Is(err), s.String())

		out, err := s.FormatTo(make([]byte, need))
		require.NoError(t, err)
		assert.Len(t, out, need)
	}

	out, err := New[int16](0, -3).FormatTo(make([]byte, 1))
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))

	_, err = New[int16](0, 0).FormatTo(nil)
	assert.True(t, ErrBufferTooSmall.Is(err))
}

func TestFormatMatchesDecimal(t *testing.T) {
	for _, v := range []int64{1, -1, 7, 99, -1001, 123456789, math.MaxInt32, math.MinInt32} {
		for scale := int16(-12); scale <= 6; scale++ {
			s := New(v, scale)
			d := s.Decimal()

			var exp string
			if scale < 0 {
				exp = d.StringFixed(int32(-scale))
			} else {
				exp = d.String()
			}
			assert.Equal(t, exp, s.String())

			parsed, err := decimal.NewFromString(s.String())
			require.NoError(t, err)
			assert.True(t, parsed.Equal(d), "%s != %s", parsed, d)
		}
	}
}

func TestFromDecimal(t *testing.T) {
	s, err := FromDecimal[int32](decimal.RequireFromString("123.45"), -2)
	require.NoError(t, err)
	assert.Equal(t, New[int32](12345, -2), s)

	s, err = FromDecimal[int32](decimal.RequireFromString("1.5"), -3)
	require.NoError(t, err)
	assert.Equal(t, New[int32](1500, -3), s)

	_, err = FromDecimal[int32](decimal.RequireFromString("1.555"), -2)
	assert.True(t, ErrScale.Is(err))

	_, err = FromDecimal[int16](decimal.RequireFromString("400"), -2)
	assert.True(t, ErrScale.Is(err))
}
