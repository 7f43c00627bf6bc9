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
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/fbsqlda/store/sqlda"
)

const (
	// DefaultInitialFields is the output capacity used for the first describe.
	DefaultInitialFields = 5
	// DefaultParamHint is the input capacity used for the first bind describe.
	DefaultParamHint = 1
)

type Options struct {
	InitialFields int
	ParamHint     int
	Logger        *logrus.Entry
}

// Query is a statement and its parameter and row areas. A Query is not safe
// for concurrent use.
type Query struct {
	conn Conn
	sql  string
	opts Options
	log  *logrus.Entry

	stmt   Statement
	params *sqlda.Area
	fields *sqlda.Area

	cursor bool
	err    error
}

func NewQuery(conn Conn, sql string, opts Options) *Query {
	if opts.InitialFields <= 0 {
		opts.InitialFields = DefaultInitialFields
	}
	if opts.ParamHint <= 0 {
		opts.ParamHint = DefaultParamHint
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Query{
		conn:   conn,
		sql:    sql,
		opts:   opts,
		log:    log.WithField("query", sql),
		fields: sqlda.New(opts.InitialFields),
	}
}

// Prepare prepares the statement and lays out the row buffer. It runs once.
func (q *Query) Prepare(ctx context.Context) error {
	if q.stmt != nil {
		return nil
	}

	stmt, err := q.conn.Prepare(ctx, q.sql, q.fields)
	if err != nil {
		return errors.Wrap(err, "prepare")
	}
	q.stmt = stmt

	if q.fields.NeedsGrow() {
		q.log.Debugf("increasing fields from %d to %d", q.fields.Cap(), q.fields.Len())
		q.fields.Reserve(q.fields.Len())
		if err := stmt.Describe(ctx, q.fields); err != nil {
			return errors.Wrap(err, "describe")
		}
	}

	if q.fields.Len() > 0 {
		q.fields.AllocData()
	}
	q.log.WithField("fields", q.fields.Len()).Debug("prepared")
	return nil
}

// Params returns the input parameters, describing them on first use with
// room for |hint| parameters.
func (q *Query) Params(ctx context.Context, hint int) (*sqlda.Area, error) {
	if q.params != nil {
		return q.params, nil
	}
	if err := q.Prepare(ctx); err != nil {
		return nil, err
	}

	params := sqlda.New(max(hint, 1))
	if err := q.stmt.DescribeBind(ctx, params); err != nil {
		return nil, errors.Wrap(err, "describe bind")
	}
	if params.NeedsGrow() {
		q.log.Debugf("increasing params from %d to %d", params.Cap(), params.Len())
		params.Reserve(params.Len())
		if err := q.stmt.DescribeBind(ctx, params); err != nil {
			return nil, errors.Wrap(err, "describe bind")
		}
	}

	q.params = params
	return params, nil
}

// Fields returns the output row. Its views are valid until the next Prepare.
func (q *Query) Fields() *sqlda.Area {
	return q.fields
}

// Execute runs the statement. |args| are bound positionally and must match
// the parameter count, Skip keeping the value bound earlier through Params.
// With no |args| the parameters bound through Params are sent as they are.
func (q *Query) Execute(ctx context.Context, args ...any) error {
	if err := q.Prepare(ctx); err != nil {
		return err
	}
	if q.cursor {
		if err := q.CloseCursor(ctx); err != nil {
			return err
		}
	}

	in := q.params
	if len(args) > 0 {
		params, err := q.Params(ctx, len(args))
		if err != nil {
			return err
		}
		if err := params.Set(args...); err != nil {
			return err
		}
		in = params
	}

	if err := q.stmt.Execute(ctx, in); err != nil {
		return errors.Wrap(err, "execute")
	}
	q.log.WithField("params", len(args)).Debug("executed")

	q.cursor = q.fields.Len() > 0
	q.err = nil
	return nil
}

// Next fetches the next row into Fields. It returns false when the rows are
// exhausted or fetching failed, see Err. The cursor is closed on the way out.
func (q *Query) Next(ctx context.Context) bool {
	if !q.cursor {
		return false
	}

	ok, err := q.stmt.Fetch(ctx, q.fields)
	if err != nil {
		q.err = errors.Wrap(err, "fetch")
	}
	if err != nil || !ok {
		if cerr := q.CloseCursor(ctx); cerr != nil && q.err == nil {
			q.err = cerr
		}
		return false
	}
	q.log.Trace("fetched row")
	return true
}

// Row returns the current row.
func (q *Query) Row() *sqlda.Area {
	return q.fields
}

// Err returns the error that stopped Next, if any.
func (q *Query) Err() error {
	return q.err
}

// ForEach visits every remaining row with |cb|, a func(sqlda.Var, ...) error
// taking one Var per column or a func(...sqlda.Var) error. It stops at the
// first error.
func (q *Query) ForEach(ctx context.Context, cb any) error {
	for q.Next(ctx) {
		cberr, err := sqlda.Visit[error](q.fields, cb)
		if err == nil {
			err = cberr
		}
		if err != nil {
			if cerr := q.CloseCursor(ctx); cerr != nil {
				q.log.WithError(cerr).Warn("closing cursor")
			}
			return err
		}
	}
	return q.Err()
}

func (q *Query) ColumnNames() []string {
	return q.fields.ColumnNames()
}

// CloseCursor abandons the remaining rows.
func (q *Query) CloseCursor(ctx context.Context) error {
	if !q.cursor {
		return nil
	}
	q.cursor = false
	if err := q.stmt.CloseCursor(ctx); err != nil {
		return errors.Wrap(err, "close cursor")
	}
	q.log.Debug("cursor closed")
	return nil
}

// Close releases the statement.
func (q *Query) Close(ctx context.Context) error {
	if q.stmt == nil {
		return nil
	}
	if err := q.CloseCursor(ctx); err != nil {
		return err
	}
	stmt := q.stmt
	q.stmt = nil
	return errors.Wrap(stmt.Close(ctx), "close statement")
}
