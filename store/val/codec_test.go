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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSQLType(t *testing.T) {
	typ, nullable := ParseSQLType(497)
	assert.Equal(t, TypeLong, typ)
	assert.True(t, nullable)

	typ, nullable = ParseSQLType(452)
	assert.Equal(t, TypeText, typ)
	assert.False(t, nullable)

	assert.Equal(t, int16(449), TypeVarying.Raw(true))
	assert.Equal(t, int16(448), TypeVarying.Raw(false))

	assert.True(t, TypeInt64.IsKnown())
	assert.False(t, SQLType(12).IsKnown())
	assert.Equal(t, "INT64", TypeInt64.String())
	assert.Equal(t, "UNKNOWN(12)", SQLType(12).String())
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  SQLType
		ok   bool
	}{
		{"VARYING", TypeVarying, true},
		{"int64", TypeInt64, true},
		{"Type_Date", TypeDate, true},
		{"varchar", TypeVarying, true},
		{"CHAR", TypeText, true},
		{"integer", TypeLong, true},
		{"double precision", TypeDouble, true},
		{"TIME", TypeTime, true},
		{"NUMBER", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		typ, ok := ParseTypeName(test.name)
		assert.Equal(t, test.ok, ok, test.name)
		assert.Equal(t, test.typ, typ, test.name)
	}

	for typ := range typeNames {
		parsed, ok := ParseTypeName(typ.String())
		require.True(t, ok)
		assert.Equal(t, typ, parsed)
	}
}

func TestFixedSize(t *testing.T) {
	tests := []struct {
		typ SQLType
		sz  ByteSize
		ok  bool
	}{
		{TypeShort, 2, true},
		{TypeLong, 4, true},
		{TypeInt64, 8, true},
		{TypeFloat, 4, true},
		{TypeDouble, 8, true},
		{TypeTimestamp, 8, true},
		{TypeDate, 4, true},
		{TypeTime, 4, true},
		{TypeBlob, 8, true},
		{TypeArray, 8, true},
		{TypeText, 0, false},
		{TypeVarying, 0, false},
	}
	for _, test := range tests {
		t.Run(test.typ.String(), func(t *testing.T) {
			sz, ok := FixedSize(test.typ)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.sz, sz)
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	writeInt16(buf[:2], -2)
	assert.Equal(t, []byte{0xfe, 0xff}, buf[:2])
	assert.Equal(t, int16(-2), readInt16(buf[:2]))

	writeTimestamp(buf, Timestamp{Date: 60468, Time: 7})
	assert.Equal(t, Timestamp{Date: 60468, Time: 7}, readTimestamp(buf))

	writeQuad(buf, BlobID{High: -1, Low: 42})
	assert.Equal(t, BlobID{High: -1, Low: 42}, readQuad(buf))

	assert.Panics(t, func() { readInt32(buf) })
}

func TestTimestamp(t *testing.T) {
	const unix = 1717797970
	ts := FromUnix(unix)
	assert.Equal(t, int32(60468), ts.Date)
	assert.Equal(t, uint32((22*3600+6*60+10)*10000), ts.Time)
	assert.Equal(t, int64(unix), ts.Unix())
	assert.Equal(t, "2024-06-07 22:06:10.000", ts.String())

	ts.Time += 1234
	assert.Equal(t, uint32(123), ts.Millis())
	assert.Equal(t, time.Date(2024, 6, 7, 22, 6, 10, 123400000, time.UTC), ts.ToTime())
	assert.Equal(t, ts, FromTime(ts.ToTime()))

	old := Timestamp{Date: 100, Time: 50000}
	assert.Equal(t, int64(5), old.Unix())
	assert.Equal(t, 1859, old.ToTime().Year())

	pre := FromUnix(-1)
	assert.Equal(t, Timestamp{Date: unixEpochDay - 1, Time: (secondsPerDay - 1) * ticksPerSecond}, pre)
	assert.Equal(t, "1969-12-31 23:59:59.000", pre.String())
	assert.Equal(t, FromTime(time.Unix(-86401, 0)), FromUnix(-86401))
	assert.Equal(t, Timestamp{Date: unixEpochDay - 1}, FromUnix(-secondsPerDay))

	before := time.Date(1960, 2, 29, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, before, FromTime(before).ToTime())
	assert.Equal(t, int64(0), FromTime(before).Unix()/86400)
}

func TestBlobID(t *testing.T) {
	assert.True(t, BlobID{}.IsZero())
	assert.Equal(t, "0000008a:0000002a", BlobID{High: 138, Low: 42}.String())
}
