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

package memserver

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/fbsqlda/store/val"
)

// Fixture is the content served by a Server.
type Fixture struct {
	Users      []UserFixture      `yaml:"users,omitempty"`
	Statements []StatementFixture `yaml:"statements"`
	Blobs      []BlobFixture      `yaml:"blobs,omitempty"`
}

type UserFixture struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// StatementFixture is one statement the server can prepare. Rows hold one
// value per column, nil for NULL.
type StatementFixture struct {
	SQL     string          `yaml:"sql"`
	Params  []ColumnFixture `yaml:"params,omitempty"`
	Columns []ColumnFixture `yaml:"columns,omitempty"`
	Rows    [][]interface{} `yaml:"rows,omitempty"`
}

type ColumnFixture struct {
	Name     string `yaml:"name"`
	Alias    string `yaml:"alias,omitempty"`
	Table    string `yaml:"table,omitempty"`
	Owner    string `yaml:"owner,omitempty"`
	Type     string `yaml:"type"`
	Length   *int   `yaml:"length,omitempty"`
	Scale    int16  `yaml:"scale,omitempty"`
	SubType  int16  `yaml:"subtype,omitempty"`
	Nullable bool   `yaml:"nullable,omitempty"`
}

type BlobFixture struct {
	ID   uint32 `yaml:"id"`
	Data string `yaml:"data"`
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading fixture %s", path)
	}
	fx, err := ParseFixture(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %s", path)
	}
	return fx, nil
}

// ParseFixture decodes and validates a YAML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.UnmarshalStrict(data, &fx); err != nil {
		return nil, err
	}
	if err := fx.validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixture) validate() error {
	for _, st := range fx.Statements {
		for _, c := range append(append([]ColumnFixture(nil), st.Params...), st.Columns...) {
			if _, err := c.desc(); err != nil {
				return errors.Wrapf(err, "statement %q", st.SQL)
			}
		}
		for i, row := range st.Rows {
			if len(row) != len(st.Columns) {
				return errors.Errorf("statement %q: row %d has %d values for %d columns", st.SQL, i, len(row), len(st.Columns))
			}
		}
	}
	return nil
}

func (c ColumnFixture) desc() (val.Desc, error) {
	typ, ok := val.ParseTypeName(c.Type)
	if !ok {
		return val.Desc{}, errors.Errorf("column %s: unknown type %q", c.Name, c.Type)
	}

	d := val.Desc{Type: typ, Scale: c.Scale, SubType: c.SubType}
	if sz, ok := val.FixedSize(typ); ok {
		d.Length = sz
	}
	if c.Length != nil {
		d.Length = val.ByteSize(*c.Length)
	} else if typ == val.TypeText || typ == val.TypeVarying {
		return val.Desc{}, errors.Errorf("column %s: %s needs a length", c.Name, typ)
	}
	return d, nil
}

func (fx *Fixture) statement(sql string) (*StatementFixture, bool) {
	want := normalizeSQL(sql)
	for i := range fx.Statements {
		if normalizeSQL(fx.Statements[i].SQL) == want {
			return &fx.Statements[i], true
		}
	}
	return nil, false
}

func normalizeSQL(sql string) string {
	return strings.ToLower(strings.Join(strings.Fields(sql), " "))
}
