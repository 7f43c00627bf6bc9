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

package clientcfg

import (
	"os"

	"gopkg.in/src-d/go-errors.v1"
)

var ErrEnvUnset = errors.NewKind("environment variable %q is not set")

var ErrEnvSyntax = errors.NewKind("bad environment placeholder at byte %d: %s")

// expandEnv replaces placeholders in |data| with environment values:
//   - ${VAR} is VAR's value, an error if VAR is unset or empty
//   - ${VAR:-default} is VAR's value, or default with its own placeholders expanded
//   - $$ is a literal '$'
//
// A '$' followed by anything else is kept as is.
func expandEnv(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '$' || i+1 == len(data) {
			out = append(out, data[i])
			continue
		}

		switch data[i+1] {
		case '$':
			out = append(out, '$')
			i++
		case '{':
			end, err := closingBrace(data, i)
			if err != nil {
				return nil, err
			}
			if out, err = expandPlaceholder(out, data[i+2:end], i); err != nil {
				return nil, err
			}
			i = end
		default:
			out = append(out, '$')
		}
	}
	return out, nil
}

func closingBrace(data []byte, start int) (int, error) {
	for j := start + 2; j < len(data); j++ {
		if data[j] == '}' {
			return j, nil
		}
	}
	return 0, ErrEnvSyntax.New(start, "unterminated")
}

func expandPlaceholder(out, expr []byte, at int) ([]byte, error) {
	name, def, hasDef := expr, []byte(nil), false
	for k := 0; k+1 < len(expr); k++ {
		if expr[k] == ':' && expr[k+1] == '-' {
			name, def, hasDef = expr[:k], expr[k+2:], true
			break
		}
	}
	if !validEnvName(name) {
		return nil, ErrEnvSyntax.New(at, "invalid variable name \""+string(name)+"\"")
	}

	if v, ok := os.LookupEnv(string(name)); ok && v != "" {
		return append(out, v...), nil
	}
	if !hasDef {
		return nil, ErrEnvUnset.New(string(name))
	}
	d, err := expandEnv(def)
	if err != nil {
		return nil, err
	}
	return append(out, d...), nil
}

func validEnvName(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for i, c := range b {
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
