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
	"testing"

	"github.com/consensys/go-zircon/pkg/util/field"
	"github.com/consensys/go-zircon/pkg/util/field/bn254"
	"github.com/stretchr/testify/assert"
)

type F = bn254.Element

func num(val uint64) FieldElementExpression[F] {
	return NewNumber(field.Uint64[F](val))
}

func TestExprEquals(t *testing.T) {
	var (
		sum  = NewAdd(num(1), NewIdentifier[F]("x"))
		sum2 = NewAdd(num(1), NewIdentifier[F]("x"))
	)
	//
	assert.True(t, sum.Equals(sum2))
	// Operand order matters
	assert.False(t, sum.Equals(NewAdd(NewIdentifier[F]("x"), num(1))))
	// Operator identity matters
	assert.False(t, sum.Equals(NewSub(num(1), NewIdentifier[F]("x"))))
	assert.False(t, NewLt[F](num(1), num(2)).Equals(NewLe[F](num(1), num(2))))
	// Kind matters: a field identifier is not a boolean one
	assert.False(t, NewIdentifier[F]("x").Equals(NewBoolIdentifier[F]("x")))
}

func TestExprEqualsNested(t *testing.T) {
	build := func() FieldElementExpression[F] {
		return NewIfElse(
			NewEq[F](NewIdentifier[F]("x"), num(0)),
			NewPow(num(2), num(8)),
			NewDiv(NewIdentifier[F]("x"), num(2)))
	}
	//
	assert.True(t, build().Equals(build()))
}

func TestExprString(t *testing.T) {
	assert.Equal(t, "(1 + 2)", NewAdd(num(1), num(2)).String())
	assert.Equal(t, "(x - 1)", NewSub(NewIdentifier[F]("x"), num(1)).String())
	assert.Equal(t, "(2 * x)", NewMult(num(2), NewIdentifier[F]("x")).String())
	assert.Equal(t, "(4 / 2)", NewDiv(num(4), num(2)).String())
	assert.Equal(t, "(2 ** 8)", NewPow(num(2), num(8)).String())
	assert.Equal(t, "(x == 0)", NewEq[F](NewIdentifier[F]("x"), num(0)).String())
	assert.Equal(t, "(x < y)", NewLt[F](NewIdentifier[F]("x"), NewIdentifier[F]("y")).String())
	assert.Equal(t, "true", NewValue[F](true).String())
	assert.Equal(t, "if b then 1 else 0 fi",
		NewIfElse(NewBoolIdentifier[F]("b"), num(1), num(0)).String())
	assert.Equal(t, "foo(1, x)", NewFunctionCall[F]("foo", num(1), NewIdentifier[F]("x")).String())
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, IsLiteral[F](num(1)))
	assert.True(t, IsLiteral[F](NewValue[F](false)))
	// Foldable is not literal
	assert.False(t, IsLiteral[F](NewAdd(num(1), num(2))))
	assert.False(t, IsLiteral[F](NewIdentifier[F]("x")))
	assert.False(t, IsLiteral[F](NewEq[F](num(1), num(1))))
}

func TestAsConstant(t *testing.T) {
	c := num(5).AsConstant()
	//
	assert.NotNil(t, c)
	assert.True(t, (*c).IsUint64() && (*c).Uint64() == 5)
	//
	assert.Nil(t, NewAdd(num(1), num(2)).AsConstant())
	assert.Nil(t, NewFunctionCall[F]("foo").AsConstant())
}

func TestExprType(t *testing.T) {
	assert.Equal(t, FIELD_ELEMENT, num(0).Type())
	assert.Equal(t, FIELD_ELEMENT, NewIfElse(NewValue[F](true), num(1), num(0)).Type())
	assert.Equal(t, BOOLEAN, NewValue[F](true).Type())
	assert.Equal(t, BOOLEAN, NewGe[F](num(1), num(0)).Type())
}

func TestVariableKeys(t *testing.T) {
	// Variables of the same name but different kinds are distinct map keys.
	env := map[Variable]bool{
		FieldVariable("x"): true,
	}
	//
	assert.True(t, env[FieldVariable("x")])
	assert.False(t, env[BoolVariable("x")])
}

func TestStatementEquals(t *testing.T) {
	var (
		x   = FieldVariable("x")
		def = NewDefinition[F](x, num(2))
	)
	//
	assert.True(t, def.Equals(NewDefinition[F](x, num(2))))
	assert.False(t, def.Equals(NewDefinition[F](x, num(3))))
	assert.False(t, def.Equals(NewDeclaration[F](x)))
	//
	ret := NewReturn[F](num(1), num(2))
	assert.True(t, ret.Equals(NewReturn[F](num(1), num(2))))
	assert.False(t, ret.Equals(NewReturn[F](num(1))))
}

func TestStatementString(t *testing.T) {
	assert.Equal(t, "x = (1 + 2)",
		NewDefinition[F](FieldVariable("x"), NewAdd(num(1), num(2))).String())
	assert.Equal(t, "return x",
		NewReturn[F](NewIdentifier[F]("x")).String())
	assert.Equal(t, "x == 1",
		NewCondition[F](NewIdentifier[F]("x"), num(1)).String())
	//
	call := NewExpressionListCall("foo",
		[]TypedExpression[F]{num(1)}, []Type{FIELD_ELEMENT, FIELD_ELEMENT})
	assert.Equal(t, "a, b = foo(1)",
		NewMultipleDefinition([]Variable{FieldVariable("a"), FieldVariable("b")}, call).String())
}
