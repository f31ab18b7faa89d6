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
	"github.com/consensys/go-zircon/pkg/util/field"
)

// TypedExpression represents an arbitrary expression in a well-typed program.
// An expression is either field-element valued or boolean valued (see
// FieldElementExpression and BooleanExpression below).  Expressions form
// immutable trees where each node exclusively owns its children.
type TypedExpression[F field.Element[F]] interface {
	// Type returns the value kind of this expression.
	Type() Type
	// Check whether two expressions are structurally equivalent.
	Equals(e TypedExpression[F]) bool
	// String returns a source-like representation of this expression.
	String() string
}

// FieldElementExpression represents an expression evaluating to an element of
// the underlying prime field.
type FieldElementExpression[F field.Element[F]] interface {
	TypedExpression[F]
	// AsConstant returns the value of this expression if it is a literal, or
	// nil otherwise.  Observe that this does not attempt any evaluation: a
	// foldable-but-unfolded expression such as (1 + 2) is not a literal.
	AsConstant() *F
}

// BooleanExpression represents an expression evaluating to a truth value.
// There are no boolean connectives in the grammar; boolean expressions only
// arise from comparisons of field operands, literals and identifiers.
type BooleanExpression[F field.Element[F]] interface {
	TypedExpression[F]
	// AsBool returns the value of this expression if it is a literal, or nil
	// otherwise.
	AsBool() *bool
}

// EqualsAll determines whether all of the expressions on the left-hand side
// match those on the right-hand side.  The number of expressions on both sides
// must also match.
func EqualsAll[F field.Element[F]](lhs []TypedExpression[F], rhs []TypedExpression[F]) bool {
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

// IsLiteral checks whether a given expression is a compile-time constant,
// that is a field Number or boolean Value node.
func IsLiteral[F field.Element[F]](e TypedExpression[F]) bool {
	switch e := e.(type) {
	case FieldElementExpression[F]:
		return e.AsConstant() != nil
	case BooleanExpression[F]:
		return e.AsBool() != nil
	}
	//
	return false
}
