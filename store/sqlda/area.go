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

// Package sqlda maps a described XSQLDA column list onto one packed row
// buffer and reads and writes typed values through column views.
package sqlda

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/store/val"
)

var ErrIndexOutOfRange = errors.NewKind("index out of range, index %d >= size %d")

var ErrColumnNotFound = errors.NewKind("column %q not found")

var ErrParamCount = errors.NewKind("set: wrong number of parameters (should be %d, called with %d)")

// Area is an XSQLDA: a resizable list of column descriptors and the packed
// buffer holding one row of their values. An Area is not safe for
// concurrent use.
type Area struct {
	cols []Column
	// n is sqld, the number of columns the statement has. It may exceed
	// len(cols) after a describe into a too small Area.
	n   int
	buf []byte
	// gen invalidates outstanding Vars on every reallocation.
	gen uint64
}

// Slot is the computed location of one column inside the packed buffer.
type Slot struct {
	Data      int
	DataLen   int
	Indicator int
}

// New returns an Area with capacity for |capacity| descriptors and none in use.
func New(capacity int) *Area {
	a := &Area{}
	a.Reserve(capacity)
	return a
}

// Cap returns the number of allocated descriptors (sqln).
func (a *Area) Cap() int {
	return len(a.cols)
}

// Len returns the number of columns in use (sqld).
func (a *Area) Len() int {
	return a.n
}

// NeedsGrow reports whether the last describe found more columns than fit.
func (a *Area) NeedsGrow() bool {
	return a.n > len(a.cols)
}

// SetLen records the column count reported by a describe. It never
// reallocates, so |n| may exceed Cap until Reserve is called.
func (a *Area) SetLen(n int) {
	a.n = n
}

// Resize sets the number of columns in use, growing capacity when needed.
// Shrinking never reallocates.
func (a *Area) Resize(n int) {
	if n > a.Cap() {
		a.Reserve(n)
	}
	a.n = n
}

// Reserve replaces the descriptors with |n| zeroed ones and drops the data
// buffer. Every Var obtained before is invalidated.
func (a *Area) Reserve(n int) {
	a.cols = make([]Column, n)
	a.n = 0
	a.buf = nil
	a.gen++
}

func (a *Area) used() int {
	return min(a.n, len(a.cols))
}

// Column returns descriptor |i| for transports to fill. It panics if |i| is
// not below Cap.
func (a *Area) Column(i int) *Column {
	return &a.cols[i]
}

// AllocData lays out one packed buffer for the columns in use. Offsets are
// measured first in column order, each value rounded up to 2 bytes and
// followed by its 2 byte null indicator, then the buffer is allocated and
// every slot is bound into it. Every Var obtained before is invalidated.
func (a *Area) AllocData() {
	cols := a.cols[:a.used()]

	offset := 0
	for i := range cols {
		c := &cols[i]
		c.dataOff = offset
		offset += (c.slotSize() + 1) &^ 1
		c.indOff = offset
		offset += int(val.IndicatorSize)
	}

	a.buf = make([]byte, offset)
	for i := range cols {
		c := &cols[i]
		end := c.dataOff + c.slotSize()
		c.data = a.buf[c.dataOff:end:end]
		end = c.indOff + int(val.IndicatorSize)
		c.ind = a.buf[c.indOff:end:end]
		c.size, c.bound = 0, false
	}
	a.gen++
}

// DataSize returns the size of the packed buffer.
func (a *Area) DataSize() int {
	return len(a.buf)
}

// Buffer returns the packed buffer. Transports that fill a whole row at
// once write it directly.
func (a *Area) Buffer() []byte {
	return a.buf
}

// Layout returns the slot offsets computed by the last AllocData.
func (a *Area) Layout() []Slot {
	cols := a.cols[:a.used()]
	slots := make([]Slot, len(cols))
	for i := range cols {
		slots[i] = Slot{Data: cols[i].dataOff, DataLen: cols[i].slotSize(), Indicator: cols[i].indOff}
	}
	return slots
}

// Var returns the view of column |i| without checking it against Len. It
// panics if |i| is not below Cap.
func (a *Area) Var(i int) Var {
	_ = a.cols[i]
	return Var{area: a, idx: i, gen: a.gen}
}

// At returns the view of column |i|.
func (a *Area) At(i int) (Var, error) {
	if i < 0 || i >= a.used() {
		return Var{}, ErrIndexOutOfRange.New(i, a.used())
	}
	return a.Var(i), nil
}

// ByName returns the view of the first column named |name|.
func (a *Area) ByName(name string) (Var, error) {
	for i := range a.cols[:a.used()] {
		if a.cols[i].Name == name {
			return a.Var(i), nil
		}
	}
	return Var{}, ErrColumnNotFound.New(name)
}

// Vars returns views of every column in use.
func (a *Area) Vars() []Var {
	vars := make([]Var, a.used())
	for i := range vars {
		vars[i] = a.Var(i)
	}
	return vars
}

// All iterates the columns in use.
func (a *Area) All() iter.Seq2[int, Var] {
	return func(yield func(int, Var) bool) {
		for i := 0; i < a.used(); i++ {
			if !yield(i, a.Var(i)) {
				return
			}
		}
	}
}

// Tuple returns the views of the listed columns in the order given.
func (a *Area) Tuple(idx ...int) ([]Var, error) {
	vars := make([]Var, len(idx))
	for i, j := range idx {
		v, err := a.At(j)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return vars, nil
}

// Set binds |args| to the columns in use, positionally. Skip leaves a column
// as it is.
func (a *Area) Set(args ...any) error {
	if a.NeedsGrow() {
		return ErrIndexOutOfRange.New(a.Len()-1, a.Cap())
	}
	if len(args) != a.Len() {
		return ErrParamCount.New(a.Len(), len(args))
	}
	for i, arg := range args {
		if err := a.Var(i).Set(arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *Area) ColumnNames() []string {
	names := make([]string, a.used())
	for i := range names {
		names[i] = a.cols[i].Name
	}
	return names
}

// String dumps the descriptors for debugging.
func (a *Area) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "sqlda sqln=%d sqld=%d data=%s\n", a.Cap(), a.Len(), humanize.IBytes(uint64(len(a.buf))))
	for i := range a.cols[:a.used()] {
		c := &a.cols[i]
		null := ""
		if c.Nullable {
			null = " nullable"
		}
		fmt.Fprintf(&sb, "  [%d] %s %s(%d) scale=%d%s", i, c.Name, c.Type, c.Length, c.Scale, null)
		if c.Table != "" {
			fmt.Fprintf(&sb, " table=%s", c.Table)
		}
		if c.IsNull() {
			sb.WriteString(" NULL")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
