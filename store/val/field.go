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
	"strconv"

	"github.com/dolthub/fbsqlda/store/scaled"
)

// Kind identifies the shape held by a Field.
type Kind uint8

const (
	NullKind Kind = iota
	TextKind
	Scaled16Kind
	Scaled32Kind
	Scaled64Kind
	FloatKind
	DoubleKind
	TimestampKind
	BlobKind
)

var kindNames = [...]string{
	NullKind:      "null",
	TextKind:      "text",
	Scaled16Kind:  "scaled int16",
	Scaled32Kind:  "scaled int32",
	Scaled64Kind:  "scaled int64",
	FloatKind:     "float",
	DoubleKind:    "double",
	TimestampKind: "timestamp",
	BlobKind:      "blob",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Field is one decoded column value. Text fields borrow the row buffer and
// are only valid until the next fetch or reallocation.
type Field struct {
	kind  Kind
	text  []byte
	num   int64
	scale int16
	flt   float64
	ts    Timestamp
	blob  BlobID
}

func NullField() Field {
	return Field{kind: NullKind}
}

func TextField(b []byte) Field {
	return Field{kind: TextKind, text: b}
}

func Scaled16Field(s scaled.Int[int16]) Field {
	return Field{kind: Scaled16Kind, num: int64(s.Value), scale: s.Scale}
}

func Scaled32Field(s scaled.Int[int32]) Field {
	return Field{kind: Scaled32Kind, num: int64(s.Value), scale: s.Scale}
}

func Scaled64Field(s scaled.Int[int64]) Field {
	return Field{kind: Scaled64Kind, num: s.Value, scale: s.Scale}
}

func FloatField(f float32) Field {
	return Field{kind: FloatKind, flt: float64(f)}
}

func DoubleField(f float64) Field {
	return Field{kind: DoubleKind, flt: f}
}

func TimestampField(ts Timestamp) Field {
	return Field{kind: TimestampKind, ts: ts}
}

func BlobField(id BlobID) Field {
	return Field{kind: BlobKind, blob: id}
}

func (f Field) Kind() Kind {
	return f.kind
}

func (f Field) IsNull() bool {
	return f.kind == NullKind
}

func (f Field) Text() ([]byte, bool) {
	return f.text, f.kind == TextKind
}

func (f Field) Scaled16() (scaled.Int[int16], bool) {
	return scaled.New(int16(f.num), f.scale), f.kind == Scaled16Kind
}

func (f Field) Scaled32() (scaled.Int[int32], bool) {
	return scaled.New(int32(f.num), f.scale), f.kind == Scaled32Kind
}

func (f Field) Scaled64() (scaled.Int[int64], bool) {
	return scaled.New(f.num, f.scale), f.kind == Scaled64Kind
}

func (f Field) Float() (float32, bool) {
	return float32(f.flt), f.kind == FloatKind
}

func (f Field) Double() (float64, bool) {
	return f.flt, f.kind == DoubleKind
}

func (f Field) Timestamp() (Timestamp, bool) {
	return f.ts, f.kind == TimestampKind
}

func (f Field) Blob() (BlobID, bool) {
	return f.blob, f.kind == BlobKind
}

// String renders |f| for display. Errors render as their message.
func (f Field) String() string {
	if f.kind == NullKind {
		return "NULL"
	}
	s, err := toString(f)
	if err != nil {
		return fmt.Sprintf("<%s>", err.Error())
	}
	return s
}
