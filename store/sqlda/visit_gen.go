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

//go:build ignore

// visit_gen writes the fixed arity dispatch table used by Visit.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxWidth = 50

const header = `// Copyright 2026 Dolthub, Inc.
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

// Code generated by visit_gen.go; DO NOT EDIT.

package sqlda
`

func main() {
	out := flag.String("out", "visit_table.go", "output file")
	flag.Parse()

	buf := bytes.Buffer{}
	buf.WriteString(header)
	buf.WriteString("\nfunc visitTable[R any]() *[MaxVisitWidth + 1]visitFunc[R] {\n")
	buf.WriteString("\treturn &[MaxVisitWidth + 1]visitFunc[R]{\n")
	for i := 0; i <= maxWidth; i++ {
		fmt.Fprintf(&buf, "\t\tvisit%d[R],\n", i)
	}
	buf.WriteString("\t}\n}\n")

	for i := 0; i <= maxWidth; i++ {
		params := make([]string, i)
		args := make([]string, i)
		for j := range params {
			params[j] = "Var"
			args[j] = fmt.Sprintf("row[%d]", j)
		}
		fmt.Fprintf(&buf, "\nfunc visit%d[R any](cb any, row []Var) (R, bool) {\n", i)
		fmt.Fprintf(&buf, "\tf, ok := cb.(func(%s) R)\n", strings.Join(params, ", "))
		buf.WriteString("\tif !ok {\n\t\tvar zero R\n\t\treturn zero, false\n\t}\n")
		fmt.Fprintf(&buf, "\treturn f(%s), true\n}\n", strings.Join(args, ", "))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}
