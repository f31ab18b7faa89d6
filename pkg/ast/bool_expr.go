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

	"github.com/consensys/go-zircon/pkg/util/field"
)

// ============================================================================
// Value
// ============================================================================

// Value represents a boolean literal.
type Value[F field.Element[F]] struct {
	Value bool
}

// NewValue constructs a boolean literal from a given truth value.
func NewValue[F field.Element[F]](value bool) BooleanExpression[F] {
	return &Value[F]{Value: value}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Value[F]) AsBool() *bool {
	return &e.Value
}

// Type implementation for the TypedExpression interface.
func (e *Value[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Value[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Value[F]); ok {
		return e.Value == o.Value
	}
	//
	return false
}

func (e *Value[F]) String() string {
	return fmt.Sprintf("%t", e.Value)
}

// ============================================================================
// BoolIdentifier
// ============================================================================

// BoolIdentifier represents a reference to a boolean variable.
type BoolIdentifier[F field.Element[F]] struct {
	Name string
}

// NewBoolIdentifier constructs a reference to a boolean variable.
func NewBoolIdentifier[F field.Element[F]](name string) BooleanExpression[F] {
	return &BoolIdentifier[F]{Name: name}
}

// AsBool implementation for the BooleanExpression interface.
func (e *BoolIdentifier[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *BoolIdentifier[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *BoolIdentifier[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*BoolIdentifier[F]); ok {
		return e.Name == o.Name
	}
	//
	return false
}

func (e *BoolIdentifier[F]) String() string {
	return e.Name
}

// ============================================================================
// Eq
// ============================================================================

// Eq represents an equality comparison of two field expressions.
type Eq[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewEq constructs an equality comparison of two field expressions.
func NewEq[F field.Element[F]](left, right FieldElementExpression[F]) BooleanExpression[F] {
	return &Eq[F]{left, right}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Eq[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Eq[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Eq[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Eq[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Eq[F]) String() string {
	return fmt.Sprintf("(%s == %s)", e.Left, e.Right)
}

// ============================================================================
// Lt
// ============================================================================

// Lt represents a strict less-than comparison of two field expressions, using
// the total order induced by the canonical integer representatives.
type Lt[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewLt constructs a strict less-than comparison of two field expressions.
func NewLt[F field.Element[F]](left, right FieldElementExpression[F]) BooleanExpression[F] {
	return &Lt[F]{left, right}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Lt[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Lt[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Lt[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Lt[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Lt[F]) String() string {
	return fmt.Sprintf("(%s < %s)", e.Left, e.Right)
}

// ============================================================================
// Le
// ============================================================================

// Le represents a less-than-or-equal comparison of two field expressions.
type Le[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewLe constructs a less-than-or-equal comparison of two field expressions.
func NewLe[F field.Element[F]](left, right FieldElementExpression[F]) BooleanExpression[F] {
	return &Le[F]{left, right}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Le[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Le[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Le[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Le[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Le[F]) String() string {
	return fmt.Sprintf("(%s <= %s)", e.Left, e.Right)
}

// ============================================================================
// Gt
// ============================================================================

// Gt represents a strict greater-than comparison of two field expressions.
type Gt[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewGt constructs a strict greater-than comparison of two field expressions.
func NewGt[F field.Element[F]](left, right FieldElementExpression[F]) BooleanExpression[F] {
	return &Gt[F]{left, right}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Gt[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Gt[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Gt[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Gt[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Gt[F]) String() string {
	return fmt.Sprintf("(%s > %s)", e.Left, e.Right)
}

// ============================================================================
// Ge
// ============================================================================

// Ge represents a greater-than-or-equal comparison of two field expressions.
type Ge[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewGe constructs a greater-than-or-equal comparison of two field expressions.
func NewGe[F field.Element[F]](left, right FieldElementExpression[F]) BooleanExpression[F] {
	return &Ge[F]{left, right}
}

// AsBool implementation for the BooleanExpression interface.
func (e *Ge[F]) AsBool() *bool {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Ge[F]) Type() Type {
	return BOOLEAN
}

// Equals implementation for the TypedExpression interface.
func (e *Ge[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Ge[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Ge[F]) String() string {
	return fmt.Sprintf("(%s >= %s)", e.Left, e.Right)
}
