// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"strings"

	"github.com/consensys/go-zircon/pkg/util/field"
)

// TypedExpressionList represents an expression yielding several values at
// once.  The only such expression in the grammar is a call to a function with
// multiple returns.
type TypedExpressionList[F field.Element[F]] interface {
	// Types returns the value kinds yielded by this expression list.
	Types() []Type
	// Check whether two expression lists are structurally equivalent.
	Equals(l TypedExpressionList[F]) bool
	// String returns a source-like representation of this expression list.
	String() string
}

// ExpressionListCall represents an invocation of a named function yielding
// multiple values, bound simultaneously by an enclosing MultipleDefinition.
type ExpressionListCall[F field.Element[F]] struct {
	Name        string
	Arguments   []TypedExpression[F]
	ReturnTypes []Type
}

// NewExpressionListCall constructs a multi-value function invocation.
func NewExpressionListCall[F field.Element[F]](name string, arguments []TypedExpression[F],
	returns []Type) TypedExpressionList[F] {
	//
	return &ExpressionListCall[F]{name, arguments, returns}
}

// Types implementation for the TypedExpressionList interface.
func (e *ExpressionListCall[F]) Types() []Type {
	return e.ReturnTypes
}

// Equals implementation for the TypedExpressionList interface.
func (e *ExpressionListCall[F]) Equals(l TypedExpressionList[F]) bool {
	if l, ok := l.(*ExpressionListCall[F]); ok {
		return e.Name == l.Name && EqualsAll(e.Arguments, l.Arguments)
	}
	//
	return false
}

func (e *ExpressionListCall[F]) String() string {
	var builder strings.Builder
	//
	builder.WriteString(e.Name)
	builder.WriteString("(")
	//
	for i, arg := range e.Arguments {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
