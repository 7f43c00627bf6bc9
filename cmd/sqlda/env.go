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

	"github.com/sirupsen/logrus"

	"github.com/dolthub/fbsqlda/cmd/util"
	"github.com/dolthub/fbsqlda/libraries/clientcfg"
	"github.com/dolthub/fbsqlda/libraries/fbclient/memserver"
)

// env is what every command runs with, set up once the flags are parsed.
type env struct {
	cfg     *clientcfg.YAMLConfig
	log     *logrus.Entry
	fixture string
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

var cli *env

func newEnv(cfgPath, fixture string, verbose bool, out, errOut io.Writer) (*env, error) {
	cfg, err := clientcfg.Load(cfgPath)
	if err != nil {
		return nil, util.BuildIf(err, "could not load config %s", cfgPath)
	}

	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetLevel(lvl)

	if fixture == "" {
		fixture = cfg.Path()
	}

	return &env{
		cfg:     cfg,
		log:     logrus.NewEntry(logger),
		fixture: fixture,
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}, nil
}

// connect attaches to the fixture server with the configured credentials.
func (e *env) connect(ctx context.Context) (*memserver.Conn, error) {
	if e.fixture == "" {
		return nil, util.BuildIf(errNoFixture, "no fixture given, use --fixture or connection.path")
	}
	fx, err := memserver.LoadFixture(e.fixture)
	if err != nil {
		return nil, util.BuildIf(err, "could not load fixture %s", e.fixture)
	}
	dpb, err := e.cfg.DPB()
	if err != nil {
		return nil, util.BuildIf(err, "bad connection parameters")
	}
	conn, err := memserver.New(fx, e.log).Attach(ctx, dpb)
	if err != nil {
		return nil, util.BuildIf(err, "could not attach to %s", e.fixture)
	}
	return conn, nil
}
