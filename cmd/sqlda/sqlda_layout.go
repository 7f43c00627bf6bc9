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
	"text/tabwriter"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"

	"github.com/dolthub/fbsqlda/cmd/util"
	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/store/sqlda"
)

func sqldaLayout(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	layout := app.Command("layout", "prints the parameter descriptors and the row buffer layout of a statement")
	sql := layout.Arg("sql", "statement to prepare").Required().String()

	return layout, func(ctx context.Context, input string) int {
		return util.Report(cli.errOut, runLayout(ctx, cli, *sql), cli.verbose)
	}
}

func runLayout(ctx context.Context, e *env, sql string) error {
	conn, err := e.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	opts := e.cfg.QueryOptions(e.log)
	q := fbclient.NewQuery(conn, sql, opts)
	defer q.Close(ctx)
	params, err := q.Params(ctx, opts.ParamHint)
	if err != nil {
		return util.BuildIf(err, "could not prepare %q", sql)
	}

	if params.Len() > 0 {
		fmt.Fprintf(e.out, "params: %d\n", params.Len())
		tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tTYPE\tSCALE\tLENGTH")
		for i, v := range params.All() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", i, v.Name(), describeType(v), v.Scale(), v.Length())
		}
		tw.Flush()
	}

	fields := q.Fields()
	fmt.Fprintf(e.out, "fields: %d, data %s\n", fields.Len(), humanize.IBytes(uint64(fields.DataSize())))
	if fields.Len() == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTYPE\tSCALE\tLENGTH\tDATA\tIND")
	slots := fields.Layout()
	for i, v := range fields.All() {
		s := slots[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d+%d\t%d\n", i, v.Alias(), describeType(v), v.Scale(), v.Length(), s.Data, s.DataLen, s.Indicator)
	}
	return tw.Flush()
}

func describeType(v sqlda.Var) string {
	if v.Nullable() {
		return v.Type().String() + " NULL"
	}
	return v.Type().String()
}
