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

package fbclient_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/libraries/fbclient/memserver"
	"github.com/dolthub/fbsqlda/store/sqlda"
	"github.com/dolthub/fbsqlda/store/val"
)

const empSelect = "select id, name, amount, hired, code, note from emp where dept = ?"

const fixtureYAML = `
users:
  - name: sysdba
    password: masterkey
statements:
  - sql: select id, name, amount, hired, code, note from emp where dept = ?
    params:
      - {name: DEPT, type: LONG}
    columns:
      - {name: ID, type: LONG, table: EMP}
      - {name: NAME, type: VARYING, length: 20, nullable: true, table: EMP}
      - {name: AMOUNT, type: INT64, scale: -2, table: EMP}
      - {name: HIRED, type: TIMESTAMP, table: EMP}
      - {name: CODE, type: TEXT, length: 4, table: EMP}
      - {name: NOTE, type: BLOB, nullable: true, table: EMP}
    rows:
      - [1, alice, "123.45", "2024-06-07 22:06:10", AB, 1]
      - [2, null, 0.5, "2020-01-01", CDEF, null]
  - sql: select name from country
    columns:
      - {name: NAME, type: VARYING, length: 10}
    rows:
      - [Finland]
      - [Estonia]
      - [Latvia]
  - sql: update emp set name = ? where id = ?
    params:
      - {name: NAME, type: VARYING, length: 20}
      - {name: ID, type: LONG}
blobs:
  - id: 1
    data: "the quick brown fox jumps over the lazy dog, the quick brown fox jumps over the lazy dog"
`

func attach(t *testing.T) (*memserver.Server, *memserver.Conn) {
	fx, err := memserver.ParseFixture([]byte(fixtureYAML))
	require.NoError(t, err)
	srv := memserver.New(fx, nil)

	dpb, err := fbclient.PackDPB(
		fbclient.StringParam(fbclient.DPBUserName, "sysdba"),
		fbclient.StringParam(fbclient.DPBPassword, "masterkey"),
	)
	require.NoError(t, err)
	conn, err := srv.Attach(context.Background(), dpb)
	require.NoError(t, err)
	return srv, conn
}

func TestPrepareGrowsFields(t *testing.T) {
	_, conn := attach(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	q := fbclient.NewQuery(conn, empSelect, fbclient.Options{Logger: logrus.NewEntry(logger)})
	require.NoError(t, q.Prepare(context.Background()))

	assert.Equal(t, 6, q.Fields().Cap())
	assert.Equal(t, 6, q.Fields().Len())
	assert.Equal(t, []string{"ID", "NAME", "AMOUNT", "HIRED", "CODE", "NOTE"}, q.ColumnNames())
	assert.NotZero(t, q.Fields().DataSize())

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "increasing fields from 5 to 6")

	// a second prepare is a no-op
	require.NoError(t, q.Prepare(context.Background()))
	assert.Equal(t, 6, q.Fields().Cap())
}

func TestPrepareWithoutGrowth(t *testing.T) {
	_, conn := attach(t)
	q := fbclient.NewQuery(conn, "SELECT name\n FROM country", fbclient.Options{InitialFields: 8})
	require.NoError(t, q.Prepare(context.Background()))
	assert.Equal(t, 8, q.Fields().Cap())
	assert.Equal(t, 1, q.Fields().Len())
}

func TestExecuteAndIterate(t *testing.T) {
	ctx := context.Background()
	srv, conn := attach(t)
	q := fbclient.NewQuery(conn, empSelect, fbclient.Options{})
	require.NoError(t, q.Execute(ctx, 10))

	require.True(t, q.Next(ctx))
	row := q.Row()

	id, err := sqlda.Value[int](row.Var(0))
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	name, err := row.ByName("NAME")
	require.NoError(t, err)
	s, err := sqlda.Value[string](name)
	require.NoError(t, err)
	assert.Equal(t, "alice", s)

	amount, err := sqlda.Value[string](row.Var(2))
	require.NoError(t, err)
	assert.Equal(t, "123.45", amount)

	hired, err := sqlda.Value[val.Timestamp](row.Var(3))
	require.NoError(t, err)
	assert.Equal(t, int64(1717797970), hired.Unix())

	code, err := sqlda.Value[string](row.Var(4))
	require.NoError(t, err)
	assert.Equal(t, "AB", code)

	note, err := sqlda.Value[val.BlobID](row.Var(5))
	require.NoError(t, err)
	assert.Equal(t, val.BlobID{Low: 1}, note)

	require.True(t, q.Next(ctx))
	assert.True(t, row.Var(1).IsNull())
	s, err = sqlda.ValueOr(row.Var(1), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", s)
	amount, err = sqlda.Value[string](row.Var(2))
	require.NoError(t, err)
	assert.Equal(t, "0.50", amount)

	assert.False(t, q.Next(ctx))
	assert.NoError(t, q.Err())
	assert.False(t, q.Next(ctx))

	require.Len(t, srv.Executions(), 1)
	assert.Equal(t, []string{"10"}, srv.Executions()[0].Params)

	// the cursor was closed at the end so the statement runs again
	require.NoError(t, q.Execute(ctx, 11))
	assert.True(t, q.Next(ctx))
	require.NoError(t, q.Close(ctx))
}

func TestForEach(t *testing.T) {
	ctx := context.Background()
	_, conn := attach(t)
	q := fbclient.NewQuery(conn, "select name from country", fbclient.Options{})
	require.NoError(t, q.Execute(ctx))

	var names []string
	err := q.ForEach(ctx, func(name sqlda.Var) error {
		s, err := sqlda.Value[string](name)
		names = append(names, s)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Finland", "Estonia", "Latvia"}, names)

	require.NoError(t, q.Execute(ctx))
	err = q.ForEach(ctx, func(a, b sqlda.Var) error { return nil })
	assert.True(t, sqlda.ErrArityMismatch.Is(err))

	// a callback error stops the iteration and closes the cursor
	require.NoError(t, q.Execute(ctx))
	stop := errors.New("stop")
	calls := 0
	err = q.ForEach(ctx, func(cols ...sqlda.Var) error {
		calls++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, calls)
	assert.False(t, q.Next(ctx))
}

func TestParams(t *testing.T) {
	ctx := context.Background()
	srv, conn := attach(t)
	q := fbclient.NewQuery(conn, "update emp set name = ? where id = ?", fbclient.Options{})

	params, err := q.Params(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, params.Cap())
	assert.Equal(t, 2, params.Len())
	assert.Equal(t, val.ByteSize(20), params.Var(0).Length())

	name, err := params.ByName("NAME")
	require.NoError(t, err)
	require.NoError(t, name.Set("bob"))
	require.NoError(t, params.Var(1).Set(int32(3)))
	assert.Equal(t, val.ByteSize(3), name.Size())
	assert.Equal(t, val.ByteSize(20), name.Length())

	require.NoError(t, q.Execute(ctx))
	require.NoError(t, q.Execute(ctx, sqlda.Skip, 4))
	require.NoError(t, q.Execute(ctx, nil, 5))

	err = q.Execute(ctx, 1)
	assert.True(t, sqlda.ErrParamCount.Is(err))

	execs := srv.Executions()
	require.Len(t, execs, 3)
	assert.Equal(t, []string{"bob", "3"}, execs[0].Params)
	assert.Equal(t, []string{"bob", "4"}, execs[1].Params)
	assert.Equal(t, []string{"NULL", "5"}, execs[2].Params)

	// no cursor for statements without output
	assert.False(t, q.Next(ctx))
}

func TestUnboundParams(t *testing.T) {
	_, conn := attach(t)
	q := fbclient.NewQuery(conn, empSelect, fbclient.Options{})
	err := q.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, memserver.ErrParams.Is(errors.Cause(err)))
}

func TestUnknownStatement(t *testing.T) {
	_, conn := attach(t)
	q := fbclient.NewQuery(conn, "select 1 from rdb$database", fbclient.Options{})
	err := q.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, memserver.ErrUnknownStatement.Is(errors.Cause(err)))
	assert.Contains(t, err.Error(), "prepare")
}

func TestLogin(t *testing.T) {
	fx, err := memserver.ParseFixture([]byte(fixtureYAML))
	require.NoError(t, err)
	srv := memserver.New(fx, nil)

	dpb, err := fbclient.PackDPB(
		fbclient.StringParam(fbclient.DPBUserName, "sysdba"),
		fbclient.StringParam(fbclient.DPBPassword, "wrong"),
	)
	require.NoError(t, err)
	_, err = srv.Attach(context.Background(), dpb)
	assert.True(t, memserver.ErrLoginFailed.Is(err))
}

func TestBlobs(t *testing.T) {
	ctx := context.Background()
	srv, conn := attach(t)

	b, err := conn.OpenBlob(ctx, val.BlobID{Low: 1})
	require.NoError(t, err)
	data, err := fbclient.ReadBlob(ctx, b, 0)
	require.NoError(t, err)
	assert.Equal(t, fx(t).Blobs[0].Data, string(data))
	require.NoError(t, b.Close(ctx))

	b, err = conn.OpenBlob(ctx, val.BlobID{Low: 1})
	require.NoError(t, err)
	r := fbclient.NewBlobReader(ctx, b, 7)
	small := make([]byte, 3)
	n, err := r.Read(small)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "the", string(small))
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, fx(t).Blobs[0].Data[3:], string(rest))
	n, err = r.Read(small)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	_, err = conn.OpenBlob(ctx, val.BlobID{Low: 99})
	assert.True(t, memserver.ErrBlobNotFound.Is(err))

	w, err := conn.CreateBlob(ctx)
	require.NoError(t, err)
	big := bytes.Repeat([]byte("0123456789"), 7000)
	require.NoError(t, fbclient.WriteBlob(ctx, w, big))
	require.NoError(t, w.Close(ctx))
	stored, ok := srv.Blob(w.ID())
	require.True(t, ok)
	assert.Equal(t, big, stored)
}

func fx(t *testing.T) *memserver.Fixture {
	f, err := memserver.ParseFixture([]byte(fixtureYAML))
	require.NoError(t, err)
	return f
}
