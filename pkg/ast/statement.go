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
	"fmt"
	"strings"

	"github.com/consensys/go-zircon/pkg/util/field"
)

// TypedStatement represents a single statement in a function body.
// Statements execute strictly top to bottom; their order is significant and
// is never changed by any middle-end rewrite.
type TypedStatement[F field.Element[F]] interface {
	// Check whether two statements are structurally equivalent.
	Equals(s TypedStatement[F]) bool
	// String returns a source-like representation of this statement.
	String() string
}

// StatementsEqual determines whether two statement sequences are structurally
// equivalent, element for element.
func StatementsEqual[F field.Element[F]](lhs []TypedStatement[F], rhs []TypedStatement[F]) bool {
	if len(lhs) == len(rhs) {
		for i := range len(lhs) {
			if !lhs[i].Equals(rhs[i]) {
				return false
			}
		}
		//
		return true
	}
	//
	return false
}

// ============================================================================
// Declaration
// ============================================================================

// Declaration introduces a variable without giving it a value.
type Declaration[F field.Element[F]] struct {
	Var Variable
}

// NewDeclaration constructs a declaration of a given variable.
func NewDeclaration[F field.Element[F]](v Variable) TypedStatement[F] {
	return &Declaration[F]{v}
}

// Equals implementation for the TypedStatement interface.
func (s *Declaration[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*Declaration[F]); ok {
		return s.Var == o.Var
	}
	//
	return false
}

func (s *Declaration[F]) String() string {
	return s.Var.String()
}

// ============================================================================
// Definition
// ============================================================================

// Definition assigns the value of a single expression to a variable.
type Definition[F field.Element[F]] struct {
	Var   Variable
	Value TypedExpression[F]
}

// NewDefinition constructs an assignment of a given expression to a variable.
func NewDefinition[F field.Element[F]](v Variable, value TypedExpression[F]) TypedStatement[F] {
	return &Definition[F]{v, value}
}

// Equals implementation for the TypedStatement interface.
func (s *Definition[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*Definition[F]); ok {
		return s.Var == o.Var && s.Value.Equals(o.Value)
	}
	//
	return false
}

func (s *Definition[F]) String() string {
	return fmt.Sprintf("%s = %s", s.Var.Name, s.Value)
}

// ============================================================================
// MultipleDefinition
// ============================================================================

// MultipleDefinition binds several variables simultaneously from the multiple
// return values of a single function call.
type MultipleDefinition[F field.Element[F]] struct {
	Vars []Variable
	Call TypedExpressionList[F]
}

// NewMultipleDefinition constructs a simultaneous binding of several
// variables from one multi-value call.
func NewMultipleDefinition[F field.Element[F]](vars []Variable, call TypedExpressionList[F]) TypedStatement[F] {
	return &MultipleDefinition[F]{vars, call}
}

// Equals implementation for the TypedStatement interface.
func (s *MultipleDefinition[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*MultipleDefinition[F]); ok {
		if len(s.Vars) != len(o.Vars) {
			return false
		}
		//
		for i := range len(s.Vars) {
			if s.Vars[i] != o.Vars[i] {
				return false
			}
		}
		//
		return s.Call.Equals(o.Call)
	}
	//
	return false
}

func (s *MultipleDefinition[F]) String() string {
	var builder strings.Builder
	//
	for i, v := range s.Vars {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(v.Name)
	}
	//
	builder.WriteString(" = ")
	builder.WriteString(s.Call.String())
	//
	return builder.String()
}

// ============================================================================
// Return
// ============================================================================

// Return yields one or more values from the enclosing function.
type Return[F field.Element[F]] struct {
	Values []TypedExpression[F]
}

// NewReturn constructs a return of one or more values.
func NewReturn[F field.Element[F]](values ...TypedExpression[F]) TypedStatement[F] {
	return &Return[F]{values}
}

// Equals implementation for the TypedStatement interface.
func (s *Return[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*Return[F]); ok {
		return EqualsAll(s.Values, o.Values)
	}
	//
	return false
}

func (s *Return[F]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("return ")
	//
	for i, e := range s.Values {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	return builder.String()
}

// ============================================================================
// Condition
// ============================================================================

// Condition asserts that two expressions evaluate to the same value at
// runtime.  Assertions always survive the middle end, even when both sides
// are compile-time constants.
type Condition[F field.Element[F]] struct {
	Left, Right TypedExpression[F]
}

// NewCondition constructs an equality assertion between two expressions.
func NewCondition[F field.Element[F]](left, right TypedExpression[F]) TypedStatement[F] {
	return &Condition[F]{left, right}
}

// Equals implementation for the TypedStatement interface.
func (s *Condition[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*Condition[F]); ok {
		return s.Left.Equals(o.Left) && s.Right.Equals(o.Right)
	}
	//
	return false
}

func (s *Condition[F]) String() string {
	return fmt.Sprintf("%s == %s", s.Left, s.Right)
}

// ============================================================================
// For
// ============================================================================

// For represents a bounded iteration over a field-valued index.  Loops are
// eliminated by unrolling before any middle-end pass runs; encountering one
// downstream of unrolling is a contract violation, not a user error.
type For[F field.Element[F]] struct {
	Var   Variable
	Start F
	End   F
	Body  []TypedStatement[F]
}

// NewFor constructs a bounded iteration over a field-valued index.
func NewFor[F field.Element[F]](v Variable, start, end F, body []TypedStatement[F]) TypedStatement[F] {
	return &For[F]{v, start, end, body}
}

// Equals implementation for the TypedStatement interface.
func (s *For[F]) Equals(o TypedStatement[F]) bool {
	if o, ok := o.(*For[F]); ok {
		return s.Var == o.Var && s.Start.Cmp(o.Start) == 0 && s.End.Cmp(o.End) == 0 &&
			StatementsEqual(s.Body, o.Body)
	}
	//
	return false
}

func (s *For[F]) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("for %s in %s..%s do ", s.Var.Name, s.Start, s.End))
	//
	for i, stmt := range s.Body {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(stmt.String())
	}
	//
	builder.WriteString(" endfor")
	//
	return builder.String()
}
