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
	"io"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"

	"github.com/dolthub/fbsqlda/cmd/util"
	"github.com/dolthub/fbsqlda/libraries/fbclient"
	"github.com/dolthub/fbsqlda/store/val"
)

func sqldaBlob(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	blob := app.Command("blob", "writes the content of a blob to stdout")
	id := blob.Arg("id", "blob id, the low word of the quad").Required().Uint32()

	return blob, func(ctx context.Context, input string) int {
		return util.Report(cli.errOut, runBlob(ctx, cli, val.BlobID{Low: *id}), cli.verbose)
	}
}

func runBlob(ctx context.Context, e *env, id val.BlobID) error {
	conn, err := e.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	b, err := conn.OpenBlob(ctx, id)
	if err != nil {
		return util.BuildIf(err, "could not open blob %s", id)
	}
	defer b.Close(ctx)

	n, err := io.Copy(e.out, fbclient.NewBlobReader(ctx, b, e.cfg.BlobSegmentSize()))
	if err != nil {
		return util.BuildIf(err, "could not read blob %s", id)
	}
	e.log.WithField("blob", id.String()).Debugf("read %s", humanize.Bytes(uint64(n)))
	return nil
}
