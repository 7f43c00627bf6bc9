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
//
// This file incorporates work covered by the following copyright and
// permission notice:
//
// Copyright 2017 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package util

import (
	"context"

	"github.com/attic-labs/kingpin"
)

// KingpinHandler runs the command selected by |input|, the full command
// name, and returns the process exit code.
type KingpinHandler func(ctx context.Context, input string) (exitCode int)

// KingpinCommand declares a command, its flags and its arguments on the
// application.
type KingpinCommand func(*kingpin.Application) (*kingpin.CmdClause, KingpinHandler)
