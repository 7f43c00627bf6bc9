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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/store/sqlda"
	"github.com/dolthub/fbsqlda/store/val"
)

func TestParseFixture(t *testing.T) {
	fx, err := ParseFixture([]byte(`
statements:
  - sql: select a, b from t
    columns:
      - {name: A, type: SHORT, scale: -1}
      - {name: B, type: char, length: 3}
    rows:
      - [1.5, abc]
`))
	require.NoError(t, err)
	require.Len(t, fx.Statements, 1)

	d, err := fx.Statements[0].Columns[0].desc()
	require.NoError(t, err)
	assert.Equal(t, val.Desc{Type: val.TypeShort, Scale: -1, Length: 2}, d)

	st, ok := fx.statement("SELECT a,  b\n\tFROM t")
	require.True(t, ok)
	assert.Equal(t, "select a, b from t", st.SQL)
	_, ok = fx.statement("select a from t")
	assert.False(t, ok)
}

func TestParseFixtureErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{
			name: "unknown type",
			yaml: "statements: [{sql: x, columns: [{name: A, type: NUMBER}]}]",
			msg:  `unknown type "NUMBER"`,
		},
		{
			name: "text without length",
			yaml: "statements: [{sql: x, columns: [{name: A, type: VARCHAR}]}]",
			msg:  "needs a length",
		},
		{
			name: "short row",
			yaml: "statements: [{sql: x, columns: [{name: A, type: LONG}], rows: [[]]}]",
			msg:  "row 0 has 0 values for 1 columns",
		},
		{
			name: "unknown key",
			yaml: "statement: []",
			msg:  "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixture([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statements: []\n"), 0644))
	fx, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Empty(t, fx.Statements)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStatementCursor(t *testing.T) {
	ctx := context.Background()
	fx, err := ParseFixture([]byte(`
statements:
  - sql: select n from t
    columns:
      - {name: N, type: SMALLINT}
    rows:
      - [7]
`))
	require.NoError(t, err)
	srv := New(fx, nil)
	dpb, err := fbclient.PackDPB()
	require.NoError(t, err)
	conn, err := srv.Attach(ctx, dpb)
	require.NoError(t, err)

	out := sqlda.New(1)
	stmt, err := conn.Prepare(ctx, "select n from t", out)
	require.NoError(t, err)
	out.AllocData()

	_, err = stmt.Fetch(ctx, out)
	assert.True(t, ErrCursor.Is(err))

	require.NoError(t, stmt.Execute(ctx, nil))
	assert.True(t, ErrCursor.Is(stmt.Execute(ctx, nil)))

	ok, err := stmt.Fetch(ctx, out)
	require.NoError(t, err)
	require.True(t, ok)
	n, err := sqlda.Value[int16](out.Var(0))
	require.NoError(t, err)
	assert.Equal(t, int16(7), n)

	ok, err = stmt.Fetch(ctx, out)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, stmt.CloseCursor(ctx))
	assert.True(t, ErrCursor.Is(stmt.CloseCursor(ctx)))

	require.NoError(t, stmt.Close(ctx))
	assert.True(t, ErrClosed.Is(stmt.Execute(ctx, nil)))

	require.NoError(t, conn.Close(ctx))
	_, err = conn.Prepare(ctx, "select n from t", out)
	assert.True(t, ErrClosed.Is(err))
}
