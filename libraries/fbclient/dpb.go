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

package fbclient

import (
	"gopkg.in/src-d/go-errors.v1"
)

// Database parameter buffer tags.
const (
	DPBVersion1       byte = 1
	DPBUserName       byte = 28
	DPBPassword       byte = 29
	DPBCharset        byte = 48
	DPBConnectTimeout byte = 57
	DPBRoleName       byte = 60
	DPBDialect        byte = 63
)

var ErrDPBValue = errors.NewKind("dpb parameter %d: %s")

var ErrMalformedDPB = errors.NewKind("malformed dpb at offset %d: %s")

type paramKind uint8

const (
	flagParam paramKind = iota
	stringParam
	intParam
)

// DPBParam is one database connection parameter.
type DPBParam struct {
	Tag  byte
	kind paramKind
	Str  string
	Int  int
}

func FlagParam(tag byte) DPBParam {
	return DPBParam{Tag: tag, kind: flagParam}
}

func StringParam(tag byte, s string) DPBParam {
	return DPBParam{Tag: tag, kind: stringParam, Str: s}
}

func IntParam(tag byte, v int) DPBParam {
	return DPBParam{Tag: tag, kind: intParam, Int: v}
}

func (p DPBParam) pack(buf []byte) ([]byte, error) {
	switch p.kind {
	case stringParam:
		if len(p.Str) > 255 {
			return nil, ErrDPBValue.New(p.Tag, "string longer than 255 bytes")
		}
		buf = append(buf, p.Tag, byte(len(p.Str)))
		return append(buf, p.Str...), nil
	case intParam:
		if p.Int < 0 || p.Int > 255 {
			return nil, ErrDPBValue.New(p.Tag, "integer outside 0..255")
		}
		return append(buf, p.Tag, byte(p.Int)), nil
	default:
		return append(buf, p.Tag), nil
	}
}

// PackDPB builds a version 1 parameter buffer: a flag packs as its tag, a
// string as tag, length and bytes, an integer as tag and one byte.
func PackDPB(params ...DPBParam) ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, DPBVersion1)

	var err error
	for _, p := range params {
		if buf, err = p.pack(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// dpbKinds lists how the tags this package writes are packed.
var dpbKinds = map[byte]paramKind{
	DPBUserName:       stringParam,
	DPBPassword:       stringParam,
	DPBCharset:        stringParam,
	DPBRoleName:       stringParam,
	DPBConnectTimeout: intParam,
	DPBDialect:        intParam,
}

// ParseDPB decodes a buffer built by PackDPB. Tags it does not know are
// read as flags.
func ParseDPB(b []byte) ([]DPBParam, error) {
	if len(b) == 0 || b[0] != DPBVersion1 {
		return nil, ErrMalformedDPB.New(0, "missing version")
	}

	var params []DPBParam
	for i := 1; i < len(b); {
		tag := b[i]
		switch dpbKinds[tag] {
		case stringParam:
			if i+1 >= len(b) || i+2+int(b[i+1]) > len(b) {
				return nil, ErrMalformedDPB.New(i, "truncated string")
			}
			n := int(b[i+1])
			params = append(params, StringParam(tag, string(b[i+2:i+2+n])))
			i += 2 + n
		case intParam:
			if i+1 >= len(b) {
				return nil, ErrMalformedDPB.New(i, "truncated integer")
			}
			params = append(params, IntParam(tag, int(b[i+1])))
			i += 2
		default:
			params = append(params, FlagParam(tag))
			i++
		}
	}
	return params, nil
}

// Lookup returns the first parameter with |tag|.
func Lookup(params []DPBParam, tag byte) (DPBParam, bool) {
	for _, p := range params {
		if p.Tag == tag {
			return p, true
		}
	}
	return DPBParam{}, false
}
