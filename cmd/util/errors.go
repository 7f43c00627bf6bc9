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

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// CmdError is a command failure: a short message for the user and the
// error behind it.
type CmdError struct {
	DisplayMsg string
	cause      error
}

// BuildIf returns nil if |err| is nil, and a CmdError wrapping it otherwise.
func BuildIf(err error, dispFmt string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := dispFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(dispFmt, args...)
	}
	return &CmdError{DisplayMsg: msg, cause: err}
}

func (e *CmdError) Error() string {
	return color.RedString(e.DisplayMsg)
}

func (e *CmdError) Unwrap() error {
	return e.cause
}

// Verbose adds the cause below the message.
func (e *CmdError) Verbose() string {
	if e.cause == nil {
		return e.Error()
	}
	lines := strings.Split(e.cause.Error(), "\n")
	return e.Error() + "\ncause:\n\t\t" + strings.Join(lines, "\n\t\t")
}

// Report writes |err| to |w| and returns the exit code for it, 0 for nil.
func Report(w io.Writer, err error, verbose bool) int {
	if err == nil {
		return 0
	}
	cerr, ok := err.(*CmdError)
	switch {
	case ok && verbose:
		fmt.Fprintln(w, cerr.Verbose())
	case ok:
		fmt.Fprintln(w, cerr.Error())
	default:
		fmt.Fprintln(w, color.RedString(err.Error()))
	}
	return 1
}
