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

package sqlda

import (
	"fmt"
	"reflect"

	"gopkg.in/src-d/go-errors.v1"
)

//go:generate go run visit_gen.go -out visit_table.go

// MaxVisitWidth is the widest row Visit dispatches to a fixed arity visitor.
const MaxVisitWidth = 50

var ErrArityMismatch = errors.NewKind("wrong number of arguments: row has %d columns, visitor is %s")

// visitFunc calls |cb| with exactly as many Vars as its table index. It
// returns false if |cb| does not take that many.
type visitFunc[R any] func(cb any, row []Var) (R, bool)

// Visit calls |cb| with one Var per column of |a|, in order, and returns its
// result. |cb| is a func(Var, ..., Var) R taking exactly Len() Vars, or a
// variadic func(...Var) R which accepts any width.
func Visit[R any](a *Area, cb any) (R, error) {
	row := a.Vars()
	if f, ok := cb.(func(...Var) R); ok {
		return f(row...), nil
	}

	var zero R
	if len(row) > MaxVisitWidth {
		return zero, ErrArityMismatch.New(len(row), describeVisitor(cb))
	}

	table := visitTable[R]()
	r, ok := table[len(row)](cb, row)
	if !ok {
		return zero, ErrArityMismatch.New(len(row), describeVisitor(cb))
	}
	return r, nil
}

func describeVisitor(cb any) string {
	t := reflect.TypeOf(cb)
	if t == nil || t.Kind() != reflect.Func {
		return fmt.Sprintf("%T (not a func)", cb)
	}
	return fmt.Sprintf("%s taking %d arguments", t, t.NumIn())
}
