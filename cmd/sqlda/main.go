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
	"os"

	"github.com/attic-labs/kingpin"
	"github.com/pkg/errors"

	"github.com/dolthub/fbsqlda/cmd/util"
)

var kingpinCommands = []util.KingpinCommand{
	sqldaLayout,
	sqldaQuery,
	sqldaRender,
	sqldaBlob,
}

var errNoFixture = errors.New("fixture not set")

func main() {
	kingpin.EnableFileExpansion = false
	app := kingpin.New("sqlda", "Inspects XSQLDA layouts and runs statements against a fixture server.")
	app.HelpFlag.Short('h')

	// global flags
	cfgPath := app.Flag("config", "client config file").Short('c').String()
	fixture := app.Flag("fixture", "statement fixture to serve, overrides connection.path").Short('f').String()
	verbose := app.Flag("verbose", "show more").Short('v').Bool()

	handlers := map[string]util.KingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(app)
		handlers[command.FullCommand()] = handler
	}

	input := kingpin.MustParse(app.Parse(os.Args[1:]))

	e, err := newEnv(*cfgPath, *fixture, *verbose, os.Stdout, os.Stderr)
	if err != nil {
		os.Exit(util.Report(os.Stderr, err, *verbose))
	}
	cli = e

	os.Exit(handlers[input](context.Background(), input))
}
