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
	"time"
)

const (
	// unixEpochDay is 1970-01-01 counted in days from 1858-11-17.
	unixEpochDay  = 40587
	secondsPerDay = 86400

	// ticksPerSecond is the resolution of Timestamp.Time.
	ticksPerSecond = 10000
	nanosPerTick   = int64(time.Second / ticksPerSecond)

	timestampFormat = "2006-01-02 15:04:05.000"
)

// Timestamp is an ISC_TIMESTAMP: whole days since 1858-11-17 and ten
// thousandths of a second since midnight. DATE columns decode with Time left
// zero and TIME columns with Date left zero.
type Timestamp struct {
	Date int32
	Time uint32
}

// FromUnix converts seconds since 1970-01-01 UTC.
func FromUnix(t int64) Timestamp {
	return FromTime(time.Unix(t, 0))
}

// FromTime converts |t| in UTC, keeping sub second precision down to one tick.
func FromTime(t time.Time) Timestamp {
	t = t.UTC()
	days := t.Unix() / secondsPerDay
	secs := t.Unix() % secondsPerDay
	if secs < 0 {
		days--
		secs += secondsPerDay
	}
	return Timestamp{
		Date: int32(days + unixEpochDay),
		Time: uint32(secs)*ticksPerSecond + uint32(int64(t.Nanosecond())/nanosPerTick),
	}
}

func Now() Timestamp {
	return FromTime(time.Now())
}

// Unix returns seconds since 1970-01-01 UTC. Dates before 1970 clamp to day zero.
func (ts Timestamp) Unix() int64 {
	days := int64(ts.Date) - unixEpochDay
	if days < 0 {
		days = 0
	}
	return days*secondsPerDay + int64(ts.Time/ticksPerSecond)
}

// ToTime returns |ts| as a UTC time.
func (ts Timestamp) ToTime() time.Time {
	secs := (int64(ts.Date)-unixEpochDay)*secondsPerDay + int64(ts.Time/ticksPerSecond)
	nanos := int64(ts.Time%ticksPerSecond) * nanosPerTick
	return time.Unix(secs, nanos).UTC()
}

// Millis returns the millisecond part of the time of day.
func (ts Timestamp) Millis() uint32 {
	return (ts.Time / 10) % 1000
}

func (ts Timestamp) String() string {
	return ts.ToTime().Format(timestampFormat)
}

// BlobID is the ISC_QUAD handle of a BLOB or ARRAY value.
type BlobID struct {
	High int32
	Low  uint32
}

func (b BlobID) IsZero() bool {
	return b.High == 0 && b.Low == 0
}

func (b BlobID) String() string {
	return fmt.Sprintf("%08x:%08x", uint32(b.High), b.Low)
}
