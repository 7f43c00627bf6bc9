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

package sqlda

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fbsqlda/store/val"
)

func shorts(t *testing.T, n int) *Area {
	cols := make([]Column, n)
	for i := range cols {
		cols[i] = Column{Type: val.TypeShort, Length: 2, Name: fmt.Sprintf("C%d", i)}
	}
	a := described(cols...)
	a.AllocData()
	for i := range cols {
		c := a.Column(i)
		require.NoError(t, c.Desc().Put(c.Data(), i))
	}
	return a
}

func TestVisit(t *testing.T) {
	a := described(
		Column{Type: val.TypeLong, Scale: -2, Length: 4, Name: "AMOUNT"},
		Column{Type: val.TypeText, Length: 10, Name: "NAME"},
	)
	a.AllocData()
	fill(t, a, "123.45", "hello")

	got, err := Visit[string](a, func(amount, name Var) string {
		s, err := Value[string](amount)
		require.NoError(t, err)
		n, err := Value[string](name)
		require.NoError(t, err)
		return s + " " + n
	})
	require.NoError(t, err)
	assert.Equal(t, "123.45 hello", got)

	_, err = Visit[string](a, func(amount Var) string { return "" })
	assert.True(t, ErrArityMismatch.Is(err))
	assert.Contains(t, err.Error(), "row has 2 columns")
	assert.Contains(t, err.Error(), "taking 1 arguments")

	_, err = Visit[string](a, func(x, y, z Var) string { return "" })
	assert.True(t, ErrArityMismatch.Is(err))

	// return type is part of the visitor shape
	_, err = Visit[int](a, func(x, y Var) string { return "" })
	assert.True(t, ErrArityMismatch.Is(err))

	_, err = Visit[string](a, "not a func")
	assert.True(t, ErrArityMismatch.Is(err))
	assert.Contains(t, err.Error(), "not a func")
}

func TestVisitPassesColumnsInOrder(t *testing.T) {
	for _, width := range []int{0, 1, 3, 9, 10, 11, 25, MaxVisitWidth} {
		t.Run(fmt.Sprint(width), func(t *testing.T) {
			a := shorts(t, width)

			got, err := Visit[[]int](a, func(cols ...Var) []int {
				out := make([]int, len(cols))
				for i, c := range cols {
					v, err := Value[int](c)
					require.NoError(t, err)
					out[i] = v
				}
				return out
			})
			require.NoError(t, err)
			require.Len(t, got, width)
			for i := range got {
				assert.Equal(t, i, got[i])
			}
		})
	}
}

func TestVisitFixedArities(t *testing.T) {
	n, err := Visit[int](shorts(t, 0), func() int { return 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	names, err := Visit[string](shorts(t, 3), func(a, b, c Var) string {
		return a.Name() + b.Name() + c.Name()
	})
	require.NoError(t, err)
	assert.Equal(t, "C0C1C2", names)

	sum, err := Visit[int](shorts(t, 10), func(c0, c1, c2, c3, c4, c5, c6, c7, c8, c9 Var) int {
		total := 0
		for _, c := range []Var{c0, c1, c2, c3, c4, c5, c6, c7, c8, c9} {
			v, err := Value[int](c)
			require.NoError(t, err)
			total += v
		}
		return total
	})
	require.NoError(t, err)
	assert.Equal(t, 45, sum)

	verr, err := Visit[error](shorts(t, 1), func(c Var) error {
		_, err := Value[int8](c)
		return err
	})
	require.NoError(t, err)
	assert.Error(t, verr)
}

func TestVisitTableShape(t *testing.T) {
	table := visitTable[int]()
	require.Len(t, *table, MaxVisitWidth+1)

	row := shorts(t, MaxVisitWidth).Vars()
	for i, entry := range table {
		_, ok := entry(func() int { return 0 }, row[:i])
		assert.Equal(t, i == 0, ok, "entry %d", i)
	}
}

func TestVisitTooWide(t *testing.T) {
	a := shorts(t, MaxVisitWidth+1)
	_, err := Visit[int](a, func(v Var) int { return 0 })
	assert.True(t, ErrArityMismatch.Is(err))

	// variadic visitors are not bound by the table
	n, err := Visit[int](a, func(vs ...Var) int { return len(vs) })
	require.NoError(t, err)
	assert.Equal(t, MaxVisitWidth+1, n)
}
