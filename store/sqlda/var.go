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
	"math"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/store/val"
)

var ErrNullValue = errors.NewKind("column %q is null")

// ErrStaleView is returned for a Var whose Area was reallocated after the
// Var was obtained.
var ErrStaleView = errors.NewKind("column view %d outlived a reallocation of its area")

type skip struct{}

// Skip passed to Set leaves the column as it is.
var Skip = skip{}

// Var is a view of one column of an Area. It does not own the column and
// must not be used after the Area is reallocated by Reserve, Resize or
// AllocData. Metadata accessors panic on a stale Var, value accessors
// return ErrStaleView.
type Var struct {
	area *Area
	idx  int
	gen  uint64
}

// Valid reports whether the Var still refers to a live column.
func (v Var) Valid() bool {
	return v.area != nil && v.gen == v.area.gen
}

func (v Var) column() (*Column, error) {
	if !v.Valid() {
		return nil, ErrStaleView.New(v.idx)
	}
	return &v.area.cols[v.idx], nil
}

func (v Var) mustColumn() *Column {
	c, err := v.column()
	if err != nil {
		panic(err)
	}
	return c
}

func (v Var) Index() int {
	return v.idx
}

func (v Var) Name() string {
	return v.mustColumn().Name
}

func (v Var) Alias() string {
	return v.mustColumn().Alias
}

func (v Var) Table() string {
	return v.mustColumn().Table
}

func (v Var) Owner() string {
	return v.mustColumn().Owner
}

// Type returns the wire type without the nullable flag.
func (v Var) Type() val.SQLType {
	return v.mustColumn().Type
}

func (v Var) Scale() int16 {
	return v.mustColumn().Scale
}

func (v Var) Nullable() bool {
	return v.mustColumn().Nullable
}

// Length returns the declared maximum length.
func (v Var) Length() val.ByteSize {
	return v.mustColumn().Length
}

// Size returns the length of the value bound by Set, or the declared
// length if nothing was bound.
func (v Var) Size() val.ByteSize {
	return v.mustColumn().Size()
}

// IsNull reports whether the column is nullable and its indicator is negative.
func (v Var) IsNull() bool {
	return v.mustColumn().IsNull()
}

// AsVariant decodes the column. A null column decodes to a null Field.
func (v Var) AsVariant() (val.Field, error) {
	c, err := v.column()
	if err != nil {
		return val.Field{}, err
	}
	if c.IsNull() {
		return val.NullField(), nil
	}
	return c.Desc().Decode(c.data)
}

// Value decodes the column of |v| into T. It fails with ErrNullValue if
// the column is null.
func Value[T any](v Var) (T, error) {
	var zero T
	c, err := v.column()
	if err != nil {
		return zero, err
	}
	if c.IsNull() {
		return zero, ErrNullValue.New(c.Name)
	}
	f, err := v.AsVariant()
	if err != nil {
		return zero, err
	}
	return val.Convert[T](f)
}

// ValueOr is Value with |def| returned for a null column.
func ValueOr[T any](v Var, def T) (T, error) {
	c, err := v.column()
	if err != nil {
		return def, err
	}
	if c.IsNull() {
		return def, nil
	}
	return Value[T](v)
}

// Set binds |x| to the column. The column type and scale become those of
// |x|, Size reports its encoded length and Length keeps the declared
// length. A nil |x| binds NULL and Skip leaves the column untouched.
func (v Var) Set(x any) error {
	c, err := v.column()
	if err != nil {
		return err
	}

	switch x.(type) {
	case skip:
		return nil
	case nil:
		c.Type, c.Nullable = val.TypeNull, true
		c.data, c.size, c.bound = nil, 0, true
		c.SetNull(true)
		return nil
	}

	enc, err := val.Encode(x)
	if err != nil {
		return err
	}
	if len(enc.Data) > math.MaxUint16 {
		return val.ErrParamRange.New(fmt.Sprintf("%d bytes", len(enc.Data)), enc.Type)
	}

	c.Type, c.Scale = enc.Type, enc.Scale
	c.data, c.size, c.bound = enc.Data, val.ByteSize(len(enc.Data)), true
	c.SetNull(false)
	return nil
}

// Data returns the bytes of the bound or fetched value.
func (v Var) Data() []byte {
	return v.mustColumn().Data()
}

func (v Var) String() string {
	if !v.Valid() {
		return "<stale>"
	}
	f, err := v.AsVariant()
	if err != nil {
		return fmt.Sprintf("<%s>", err.Error())
	}
	return f.String()
}
