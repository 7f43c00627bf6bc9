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
	"github.com/dolthub/fbsqlda/store/val"
)

// Column is one XSQLVAR. Describe fills its descriptor, AllocData lays out
// its slot and fetch writes the slot bytes.
type Column struct {
	Type     val.SQLType
	Nullable bool
	Scale    int16
	SubType  int16
	// Length is the declared maximum length in bytes (sqllen).
	Length val.ByteSize

	Name  string
	Alias string
	Table string
	Owner string

	data []byte
	ind  []byte

	// size is the encoded length of a value bound by Var.Set.
	size  val.ByteSize
	bound bool

	// offsets recorded by the AllocData measuring pass
	dataOff int
	indOff  int
}

// SetRawType sets Type and Nullable from a raw sqltype.
func (c *Column) SetRawType(raw int16) {
	c.Type, c.Nullable = val.ParseSQLType(raw)
}

func (c *Column) RawType() int16 {
	return c.Type.Raw(c.Nullable)
}

// Desc describes the current value: a value bound by Var.Set is read with
// its own length, a fetched one with the declared length.
func (c *Column) Desc() val.Desc {
	return val.Desc{Type: c.Type, Scale: c.Scale, SubType: c.SubType, Length: c.Size()}
}

// Data returns the bytes holding the value. A fetched TEXT value is the
// whole declared length, padding included.
func (c *Column) Data() []byte {
	return c.data
}

// Indicator returns the 2 byte null indicator, nil before AllocData or Set.
func (c *Column) Indicator() []byte {
	return c.ind
}

func (c *Column) IsNull() bool {
	return c.Nullable && len(c.ind) == int(val.IndicatorSize) && val.ReadIndicator(c.ind) < 0
}

// SetNull writes the null indicator.
func (c *Column) SetNull(null bool) {
	c.ensureIndicator()
	if null {
		val.WriteIndicator(c.ind, -1)
	} else {
		val.WriteIndicator(c.ind, 0)
	}
}

// Size returns the length of the bound value, or the declared length when
// nothing has been bound.
func (c *Column) Size() val.ByteSize {
	if c.bound {
		return c.size
	}
	return c.Length
}

func (c *Column) ensureIndicator() {
	if c.ind == nil {
		c.ind = make([]byte, val.IndicatorSize)
	}
}

// slotSize is the value width AllocData reserves before alignment.
func (c *Column) slotSize() int {
	n := int(c.Length)
	if c.Type == val.TypeVarying {
		n += int(val.VaryingPrefix)
	}
	return n
}
