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
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// SQLType is the wire type tag of an XSQLVAR with the nullable bit cleared.
type SQLType int16

const (
	TypeVarying   SQLType = 448
	TypeText      SQLType = 452
	TypeDouble    SQLType = 480
	TypeFloat     SQLType = 482
	TypeLong      SQLType = 496
	TypeShort     SQLType = 500
	TypeTimestamp SQLType = 510
	TypeBlob      SQLType = 520
	TypeDFloat    SQLType = 530
	TypeArray     SQLType = 540
	TypeQuad      SQLType = 550
	TypeTime      SQLType = 560
	TypeDate      SQLType = 570
	TypeInt64     SQLType = 580
	TypeBoolean   SQLType = 32764
	TypeNull      SQLType = 32766
)

var typeNames = map[SQLType]string{
	TypeVarying:   "VARYING",
	TypeText:      "TEXT",
	TypeDouble:    "DOUBLE",
	TypeFloat:     "FLOAT",
	TypeLong:      "LONG",
	TypeShort:     "SHORT",
	TypeTimestamp: "TIMESTAMP",
	TypeBlob:      "BLOB",
	TypeDFloat:    "D_FLOAT",
	TypeArray:     "ARRAY",
	TypeQuad:      "QUAD",
	TypeTime:      "TYPE_TIME",
	TypeDate:      "TYPE_DATE",
	TypeInt64:     "INT64",
	TypeBoolean:   "BOOLEAN",
	TypeNull:      "NULL",
}

// ParseSQLType splits a raw sqltype into its tag and nullable flag.
func ParseSQLType(raw int16) (typ SQLType, nullable bool) {
	return SQLType(raw &^ 1), raw&1 == 1
}

// Raw returns the sqltype for |t| with the nullable bit set as requested.
func (t SQLType) Raw(nullable bool) int16 {
	if nullable {
		return int16(t) | 1
	}
	return int16(t)
}

var sqlNames = map[string]SQLType{
	"CHAR":             TypeText,
	"VARCHAR":          TypeVarying,
	"SMALLINT":         TypeShort,
	"INTEGER":          TypeLong,
	"BIGINT":           TypeInt64,
	"DOUBLE PRECISION": TypeDouble,
	"DATE":             TypeDate,
	"TIME":             TypeTime,
}

// ParseTypeName returns the type named |name|, as printed by String or as
// spelled in SQL.
func ParseTypeName(name string) (SQLType, bool) {
	if t, ok := sqlNames[strings.ToUpper(name)]; ok {
		return t, true
	}
	for t, n := range typeNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

func (t SQLType) IsKnown() bool {
	_, ok := typeNames[t]
	return ok
}

func (t SQLType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int16(t))
}

type ByteSize uint16

const (
	int16Size     ByteSize = 2
	int32Size     ByteSize = 4
	uint32Size    ByteSize = 4
	int64Size     ByteSize = 8
	float32Size   ByteSize = 4
	float64Size   ByteSize = 8
	timestampSize ByteSize = 8
	dateSize      ByteSize = 4
	timeSize      ByteSize = 4
	quadSize      ByteSize = 8

	// VaryingPrefix is the actual-length prefix ahead of VARYING bytes.
	VaryingPrefix ByteSize = 2
	// IndicatorSize is the width of a null indicator.
	IndicatorSize ByteSize = 2
)

// FixedSize returns the encoded width of fixed size types.
func FixedSize(t SQLType) (ByteSize, bool) {
	switch t {
	case TypeShort:
		return int16Size, true
	case TypeLong:
		return int32Size, true
	case TypeInt64:
		return int64Size, true
	case TypeFloat:
		return float32Size, true
	case TypeDouble:
		return float64Size, true
	case TypeTimestamp:
		return timestampSize, true
	case TypeDate:
		return dateSize, true
	case TypeTime:
		return timeSize, true
	case TypeBlob, TypeArray, TypeQuad:
		return quadSize, true
	default:
		return 0, false
	}
}

func readInt16(val []byte) int16 {
	expectSize(val, int16Size)
	return int16(binary.LittleEndian.Uint16(val))
}

func writeInt16(buf []byte, val int16) {
	expectSize(buf, int16Size)
	binary.LittleEndian.PutUint16(buf, uint16(val))
}

func readInt32(val []byte) int32 {
	expectSize(val, int32Size)
	return int32(binary.LittleEndian.Uint32(val))
}

func writeInt32(buf []byte, val int32) {
	expectSize(buf, int32Size)
	binary.LittleEndian.PutUint32(buf, uint32(val))
}

func readUint32(val []byte) uint32 {
	expectSize(val, uint32Size)
	return binary.LittleEndian.Uint32(val)
}

func writeUint32(buf []byte, val uint32) {
	expectSize(buf, uint32Size)
	binary.LittleEndian.PutUint32(buf, val)
}

func readInt64(val []byte) int64 {
	expectSize(val, int64Size)
	return int64(binary.LittleEndian.Uint64(val))
}

func writeInt64(buf []byte, val int64) {
	expectSize(buf, int64Size)
	binary.LittleEndian.PutUint64(buf, uint64(val))
}

func readFloat32(val []byte) float32 {
	expectSize(val, float32Size)
	return math.Float32frombits(readUint32(val))
}

func writeFloat32(buf []byte, val float32) {
	expectSize(buf, float32Size)
	writeUint32(buf, math.Float32bits(val))
}

func readFloat64(val []byte) float64 {
	expectSize(val, float64Size)
	return math.Float64frombits(binary.LittleEndian.Uint64(val))
}

func writeFloat64(buf []byte, val float64) {
	expectSize(buf, float64Size)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(val))
}

func readTimestamp(val []byte) Timestamp {
	expectSize(val, timestampSize)
	return Timestamp{Date: readInt32(val[:4]), Time: readUint32(val[4:])}
}

func writeTimestamp(buf []byte, val Timestamp) {
	expectSize(buf, timestampSize)
	writeInt32(buf[:4], val.Date)
	writeUint32(buf[4:], val.Time)
}

func readQuad(val []byte) BlobID {
	expectSize(val, quadSize)
	return BlobID{High: readInt32(val[:4]), Low: readUint32(val[4:])}
}

func writeQuad(buf []byte, val BlobID) {
	expectSize(buf, quadSize)
	writeInt32(buf[:4], val.High)
	writeUint32(buf[4:], val.Low)
}

// ReadIndicator decodes a null indicator slot.
func ReadIndicator(buf []byte) int16 {
	return readInt16(buf)
}

func WriteIndicator(buf []byte, ind int16) {
	writeInt16(buf, ind)
}

// ReadVaryingLen decodes the actual-length prefix of a VARYING slot.
func ReadVaryingLen(buf []byte) ByteSize {
	return ByteSize(binary.LittleEndian.Uint16(buf[:VaryingPrefix]))
}

func expectSize(buf []byte, sz ByteSize) {
	if ByteSize(len(buf)) != sz {
		panic("byte slice is not of expected size")
	}
}
