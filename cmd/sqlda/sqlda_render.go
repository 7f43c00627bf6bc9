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
	"strconv"

	"github.com/attic-labs/kingpin"
	"github.com/pkg/errors"

	"github.com/dolthub/fbsqlda/cmd/util"
	"github.com/dolthub/fbsqlda/store/scaled"
)

func sqldaRender(app *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	render := app.Command("render", "prints a scaled integer as a decimal string")
	width := render.Flag("type", "wire type of the value").Default("int64").Enum("short", "long", "int64")
	value := render.Arg("value", "unscaled integer value").Required().String()
	scale := render.Arg("scale", "decimal exponent").Required().Int16()

	return render, func(ctx context.Context, input string) int {
		s, err := renderScaled(*width, *value, *scale)
		if err == nil {
			fmt.Fprintln(cli.out, s)
		}
		return util.Report(cli.errOut, err, cli.verbose)
	}
}

func renderScaled(width, value string, scale int16) (string, error) {
	bits := map[string]int{"short": 16, "long": 32, "int64": 64}[width]
	if bits == 0 {
		return "", errors.Errorf("unknown type %q", width)
	}
	v, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		return "", util.BuildIf(err, "%q is not a %d bit integer", value, bits)
	}

	switch bits {
	case 16:
		return scaled.New(int16(v), scale).String(), nil
	case 32:
		return scaled.New(int32(v), scale).String(), nil
	default:
		return scaled.New(v, scale).String(), nil
	}
}
