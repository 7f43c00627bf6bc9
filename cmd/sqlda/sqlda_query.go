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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"

	"github.com/dolthub/fbsqlda/cmd/util"
	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/store/sqlda"
)

func sqldaQuery(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	query := app.Command("query", "executes a statement and prints the rows it returns")
	sql := query.Arg("sql", "statement to execute").Required().String()
	args := query.Arg("params", "parameter values, bound as text; NULL binds a null").Strings()

	return query, func(ctx context.Context, input string) int {
		return util.Report(cli.errOut, runQuery(ctx, cli, *sql, *args), cli.verbose)
	}
}

func runQuery(ctx context.Context, e *env, sql string, args []string) error {
	conn, err := e.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	q := fbclient.NewQuery(conn, sql, e.cfg.QueryOptions(e.log))
	defer q.Close(ctx)

	params := make([]any, len(args))
	for i, a := range args {
		if a == "NULL" {
			params[i] = nil
		} else {
			params[i] = a
		}
	}
	if err := q.Execute(ctx, params...); err != nil {
		return util.BuildIf(err, "could not execute %q", sql)
	}

	names := q.ColumnNames()
	if len(names) == 0 {
		fmt.Fprintln(e.out, "ok")
		return nil
	}

	table := [][]cell{plainCells(names)}
	err = q.ForEach(ctx, func(cols ...sqlda.Var) error {
		row := make([]cell, len(cols))
		for i, c := range cols {
			if c.IsNull() {
				row[i] = cell{text: "NULL", null: true}
			} else {
				row[i] = cell{text: c.String()}
			}
		}
		table = append(table, row)
		return nil
	})
	if err != nil {
		return util.BuildIf(err, "could not fetch rows of %q", sql)
	}
	if err := writeTable(e.out, table); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "(%d rows)\n", len(table)-1)
	return nil
}

type cell struct {
	text string
	null bool
}

func plainCells(texts []string) []cell {
	cells := make([]cell, len(texts))
	for i, t := range texts {
		cells[i] = cell{text: t}
	}
	return cells
}

// writeTable aligns |rows| on the width of their plain text and colors NULL
// cells afterwards, so escape codes never count toward a column width.
func writeTable(w io.Writer, rows [][]cell) error {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(c.text))
		}
	}

	null := color.New(color.FgYellow)
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for i, c := range row {
			if c.null {
				sb.WriteString(null.Sprint(c.text))
			} else {
				sb.WriteString(c.text)
			}
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text)+2))
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
