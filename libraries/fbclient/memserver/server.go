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

// Package memserver is an in memory protocol layer serving canned
// statements from a fixture. It fills and consumes XSQLDA areas the way a
// database client library does.
package memserver

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/store/sqlda"
	"github.com/dolthub/fbsqlda/store/val"
)

var ErrLoginFailed = goerrors.NewKind("login failed for user %q")

var ErrUnknownStatement = goerrors.NewKind("statement is not part of the fixture: %s")

var ErrCursor = goerrors.NewKind("cursor error: %s")

var ErrParams = goerrors.NewKind("parameter error: %s")

var ErrBlobNotFound = goerrors.NewKind("blob %s not found")

var ErrClosed = goerrors.NewKind("%s is closed")

// Execution records the parameters a statement was executed with, rendered
// as text, "NULL" for nulls.
type Execution struct {
	SQL    string
	Params []string
}

// Server serves one Fixture to any number of connections.
type Server struct {
	fx  *Fixture
	log *logrus.Entry

	mu       sync.Mutex
	blobs    map[val.BlobID][]byte
	nextBlob uint32
	executed []Execution
}

func New(fx *Fixture, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		fx:    fx,
		log:   log.WithField("server", "memserver"),
		blobs: make(map[val.BlobID][]byte),
	}
	for _, b := range fx.Blobs {
		s.blobs[val.BlobID{Low: b.ID}] = []byte(b.Data)
		s.nextBlob = max(s.nextBlob, b.ID)
	}
	return s
}

// Attach opens a connection, checking the credentials in |dpb| when the
// fixture lists users.
func (s *Server) Attach(ctx context.Context, dpb []byte) (*Conn, error) {
	params, err := fbclient.ParseDPB(dpb)
	if err != nil {
		return nil, err
	}

	user, _ := fbclient.Lookup(params, fbclient.DPBUserName)
	if len(s.fx.Users) > 0 {
		pass, _ := fbclient.Lookup(params, fbclient.DPBPassword)
		ok := false
		for _, u := range s.fx.Users {
			if u.Name == user.Str && u.Password == pass.Str {
				ok = true
				break
			}
		}
		if !ok {
			return nil, ErrLoginFailed.New(user.Str)
		}
	}

	s.log.WithField("user", user.Str).Debug("attached")
	return &Conn{srv: s}, nil
}

// Executions returns every execution so far.
func (s *Server) Executions() []Execution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Execution(nil), s.executed...)
}

// Blob returns the stored content of |id|.
func (s *Server) Blob(id val.BlobID) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[id]
	return b, ok
}

// Conn is a connection to a Server.
type Conn struct {
	srv    *Server
	closed bool
}

var _ fbclient.BlobConn = (*Conn)(nil)

func (c *Conn) Prepare(ctx context.Context, sql string, out *sqlda.Area) (fbclient.Statement, error) {
	if c.closed {
		return nil, ErrClosed.New("connection")
	}
	st, ok := c.srv.fx.statement(sql)
	if !ok {
		return nil, ErrUnknownStatement.New(sql)
	}
	stmt := &Statement{srv: c.srv, fx: st}
	if err := stmt.Describe(ctx, out); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (c *Conn) Close(ctx context.Context) error {
	c.closed = true
	return nil
}

func (c *Conn) OpenBlob(ctx context.Context, id val.BlobID) (fbclient.Blob, error) {
	data, ok := c.srv.Blob(id)
	if !ok {
		return nil, ErrBlobNotFound.New(id)
	}
	return &Blob{srv: c.srv, id: id, data: data}, nil
}

func (c *Conn) CreateBlob(ctx context.Context) (fbclient.Blob, error) {
	c.srv.mu.Lock()
	defer c.srv.mu.Unlock()
	c.srv.nextBlob++
	return &Blob{srv: c.srv, id: val.BlobID{Low: c.srv.nextBlob}, writing: true}, nil
}

// Statement is a prepared fixture statement.
type Statement struct {
	srv    *Server
	fx     *StatementFixture
	row    int
	open   bool
	closed bool
}

var _ fbclient.Statement = (*Statement)(nil)

func describe(area *sqlda.Area, cols []ColumnFixture) error {
	area.SetLen(len(cols))
	for i := 0; i < min(len(cols), area.Cap()); i++ {
		d, err := cols[i].desc()
		if err != nil {
			return err
		}
		c := area.Column(i)
		c.Type, c.Nullable = d.Type, cols[i].Nullable
		c.Scale, c.SubType, c.Length = d.Scale, d.SubType, d.Length
		c.Name, c.Alias = cols[i].Name, cols[i].Alias
		c.Table, c.Owner = cols[i].Table, cols[i].Owner
		if c.Alias == "" {
			c.Alias = c.Name
		}
	}
	return nil
}

func (s *Statement) Describe(ctx context.Context, out *sqlda.Area) error {
	return describe(out, s.fx.Columns)
}

func (s *Statement) DescribeBind(ctx context.Context, in *sqlda.Area) error {
	return describe(in, s.fx.Params)
}

func (s *Statement) Execute(ctx context.Context, in *sqlda.Area) error {
	if s.closed {
		return ErrClosed.New("statement")
	}
	if s.open {
		return ErrCursor.New("attempt to reopen an open cursor")
	}

	exec := Execution{SQL: s.fx.SQL}
	if len(s.fx.Params) > 0 {
		if in == nil || in.Len() != len(s.fx.Params) {
			return ErrParams.New("statement expects parameters that were not bound")
		}
		for _, v := range in.Vars() {
			if v.Type() != val.TypeNull && v.Data() == nil {
				return ErrParams.New("parameter " + v.Name() + " has no value")
			}
			exec.Params = append(exec.Params, v.String())
		}
	}

	s.srv.mu.Lock()
	s.srv.executed = append(s.srv.executed, exec)
	s.srv.mu.Unlock()

	s.row = 0
	s.open = len(s.fx.Columns) > 0
	return nil
}

func (s *Statement) Fetch(ctx context.Context, out *sqlda.Area) (bool, error) {
	if !s.open {
		return false, ErrCursor.New("fetch on a closed cursor")
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.row >= len(s.fx.Rows) {
		return false, nil
	}

	row := s.fx.Rows[s.row]
	if out.Len() != len(row) || out.DataSize() == 0 && len(row) > 0 {
		return false, ErrCursor.New("output area does not match the statement")
	}
	for i, v := range row {
		c := out.Column(i)
		if v == nil {
			if !c.Nullable {
				return false, ErrCursor.New("null in not nullable column " + c.Name)
			}
			c.SetNull(true)
			continue
		}
		if err := c.Desc().Put(c.Data(), fixtureValue(c.Type, v)); err != nil {
			return false, err
		}
		c.SetNull(false)
	}
	s.row++
	return true, nil
}

// fixtureValue maps YAML scalars onto the Go types Put expects for |typ|.
func fixtureValue(typ val.SQLType, v interface{}) interface{} {
	if typ == val.TypeBlob || typ == val.TypeArray {
		if id, ok := v.(int); ok {
			return val.BlobID{Low: uint32(id)}
		}
	}
	return v
}

func (s *Statement) CloseCursor(ctx context.Context) error {
	if !s.open {
		return ErrCursor.New("cursor is not open")
	}
	s.open = false
	return nil
}

func (s *Statement) Close(ctx context.Context) error {
	s.open = false
	s.closed = true
	return nil
}

// Blob is an open blob handle.
type Blob struct {
	srv     *Server
	id      val.BlobID
	data    []byte
	off     int
	writing bool
	closed  bool
}

var _ fbclient.Blob = (*Blob)(nil)

func (b *Blob) ID() val.BlobID {
	return b.id
}

func (b *Blob) GetSegment(ctx context.Context, buf []byte) (int, error) {
	if b.closed {
		return 0, ErrClosed.New("blob")
	}
	n := copy(buf, b.data[b.off:])
	b.off += n
	return n, nil
}

func (b *Blob) PutSegment(ctx context.Context, seg []byte) error {
	if b.closed || !b.writing {
		return ErrClosed.New("blob for writing")
	}
	b.data = append(b.data, seg...)
	return nil
}

func (b *Blob) Close(ctx context.Context) error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.writing {
		b.srv.mu.Lock()
		b.srv.blobs[b.id] = b.data
		b.srv.mu.Unlock()
	}
	return nil
}
