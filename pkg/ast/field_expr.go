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

// ============================================================================
// Number
// ============================================================================

// Number represents a field element literal.
type Number[F field.Element[F]] struct {
	Value F
}

// NewNumber constructs a field element literal from a given value.
func NewNumber[F field.Element[F]](value F) FieldElementExpression[F] {
	return &Number[F]{Value: value}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Number[F]) AsConstant() *F {
	return &e.Value
}

// Type implementation for the TypedExpression interface.
func (e *Number[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Number[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Number[F]); ok {
		return e.Value.Cmp(o.Value) == 0
	}
	//
	return false
}

func (e *Number[F]) String() string {
	return e.Value.String()
}

// ============================================================================
// Identifier
// ============================================================================

// Identifier represents a reference to a field element variable.
type Identifier[F field.Element[F]] struct {
	Name string
}

// NewIdentifier constructs a reference to a field element variable.
func NewIdentifier[F field.Element[F]](name string) FieldElementExpression[F] {
	return &Identifier[F]{Name: name}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Identifier[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Identifier[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Identifier[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Identifier[F]); ok {
		return e.Name == o.Name
	}
	//
	return false
}

func (e *Identifier[F]) String() string {
	return e.Name
}

// ============================================================================
// Add
// ============================================================================

// Add represents the sum of two field expressions.
type Add[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewAdd constructs the sum of two field expressions.
func NewAdd[F field.Element[F]](left, right FieldElementExpression[F]) FieldElementExpression[F] {
	return &Add[F]{left, right}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Add[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Add[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Add[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Add[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Add[F]) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

// ============================================================================
// Sub
// ============================================================================

// Sub represents the difference of two field expressions.
type Sub[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewSub constructs the difference of two field expressions.
func NewSub[F field.Element[F]](left, right FieldElementExpression[F]) FieldElementExpression[F] {
	return &Sub[F]{left, right}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Sub[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Sub[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Sub[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Sub[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Sub[F]) String() string {
	return fmt.Sprintf("(%s - %s)", e.Left, e.Right)
}

// ============================================================================
// Mult
// ============================================================================

// Mult represents the product of two field expressions.
type Mult[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewMult constructs the product of two field expressions.
func NewMult[F field.Element[F]](left, right FieldElementExpression[F]) FieldElementExpression[F] {
	return &Mult[F]{left, right}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Mult[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Mult[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Mult[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Mult[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Mult[F]) String() string {
	return fmt.Sprintf("(%s * %s)", e.Left, e.Right)
}

// ============================================================================
// Div
// ============================================================================

// Div represents the quotient of two field expressions, where division is
// multiplication by the inverse of the right-hand side.
type Div[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewDiv constructs the quotient of two field expressions.
func NewDiv[F field.Element[F]](left, right FieldElementExpression[F]) FieldElementExpression[F] {
	return &Div[F]{left, right}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Div[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Div[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Div[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Div[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Div[F]) String() string {
	return fmt.Sprintf("(%s / %s)", e.Left, e.Right)
}

// ============================================================================
// Pow
// ============================================================================

// Pow represents a field expression raised to a given power.
type Pow[F field.Element[F]] struct {
	Left, Right FieldElementExpression[F]
}

// NewPow constructs a field expression raised to a given power.
func NewPow[F field.Element[F]](left, right FieldElementExpression[F]) FieldElementExpression[F] {
	return &Pow[F]{left, right}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *Pow[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *Pow[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *Pow[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*Pow[F]); ok {
		return e.Left.Equals(o.Left) && e.Right.Equals(o.Right)
	}
	//
	return false
}

func (e *Pow[F]) String() string {
	return fmt.Sprintf("(%s ** %s)", e.Left, e.Right)
}

// ============================================================================
// IfElse
// ============================================================================

// IfElse represents a conditional field expression, selecting between two
// field-valued branches based on a boolean condition.
type IfElse[F field.Element[F]] struct {
	Condition   BooleanExpression[F]
	Consequence FieldElementExpression[F]
	Alternative FieldElementExpression[F]
}

// NewIfElse constructs a conditional field expression.
func NewIfElse[F field.Element[F]](condition BooleanExpression[F], consequence,
	alternative FieldElementExpression[F]) FieldElementExpression[F] {
	//
	return &IfElse[F]{condition, consequence, alternative}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *IfElse[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *IfElse[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *IfElse[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*IfElse[F]); ok {
		return e.Condition.Equals(o.Condition) && e.Consequence.Equals(o.Consequence) &&
			e.Alternative.Equals(o.Alternative)
	}
	//
	return false
}

func (e *IfElse[F]) String() string {
	return fmt.Sprintf("if %s then %s else %s fi", e.Condition, e.Consequence, e.Alternative)
}

// ============================================================================
// FunctionCall
// ============================================================================

// FunctionCall represents an invocation of a named function yielding a single
// field element.  Calls are entirely opaque to the middle end: only their
// arguments can be rewritten, never the call itself.
type FunctionCall[F field.Element[F]] struct {
	Name      string
	Arguments []TypedExpression[F]
}

// NewFunctionCall constructs an invocation of a named function.
func NewFunctionCall[F field.Element[F]](name string, arguments ...TypedExpression[F]) FieldElementExpression[F] {
	return &FunctionCall[F]{name, arguments}
}

// AsConstant implementation for the FieldElementExpression interface.
func (e *FunctionCall[F]) AsConstant() *F {
	return nil
}

// Type implementation for the TypedExpression interface.
func (e *FunctionCall[F]) Type() Type {
	return FIELD_ELEMENT
}

// Equals implementation for the TypedExpression interface.
func (e *FunctionCall[F]) Equals(o TypedExpression[F]) bool {
	if o, ok := o.(*FunctionCall[F]); ok {
		return e.Name == o.Name && EqualsAll(e.Arguments, o.Arguments)
	}
	//
	return false
}

func (e *FunctionCall[F]) String() string {
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
