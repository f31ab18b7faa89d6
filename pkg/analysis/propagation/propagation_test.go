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
package propagation

import (
	"errors"
	"testing"

	"github.com/consensys/go-zircon/pkg/ast"
	"github.com/consensys/go-zircon/pkg/util/field"
	"github.com/consensys/go-zircon/pkg/util/field/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type F = bn254.Element

func num(val uint64) ast.FieldElementExpression[F] {
	return ast.NewNumber(field.Uint64[F](val))
}

func fresh() *propagator[F] {
	return &propagator[F]{constants: make(map[ast.Variable]ast.TypedExpression[F])}
}

// ============================================================================
// Field expressions
// ============================================================================

func TestFoldAdd(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewAdd(num(2), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(5)))
}

func TestFoldSub(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewSub(num(3), num(2)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(1)))
}

func TestFoldSubWraps(t *testing.T) {
	// 2 - 3 wraps around to p - 1, never a negative value.
	e, err := fresh().fieldExpression(ast.NewSub(num(2), num(3)))
	//
	require.NoError(t, err)
	//
	expected := ast.NewNumber(field.Zero[F]().Sub(field.One[F]()))
	assert.True(t, e.Equals(expected))
}

func TestFoldMult(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewMult(num(3), num(2)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(6)))
}

func TestFoldDiv(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewDiv(num(6), num(2)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(3)))
}

func TestFoldDivInexact(t *testing.T) {
	// Field division is multiplication by the inverse, hence (1 / 2) * 2 = 1.
	e, err := fresh().fieldExpression(ast.NewMult(ast.NewDiv(num(1), num(2)), num(2)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(1)))
}

func TestFoldDivByZero(t *testing.T) {
	_, err := fresh().fieldExpression(ast.NewDiv(num(1), ast.NewSub(num(4), num(4))))
	//
	require.Error(t, err)
	//
	var ferr *Error[F]
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, DIVISION_BY_ZERO, ferr.Code())
	assert.Equal(t, "division by zero: (1 / 0)", err.Error())
}

func TestFoldPow(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewPow(num(2), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(8)))
}

func TestFoldPowZeroExponent(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewPow(num(7), num(0)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(1)))
}

func TestFoldPowExponentTooLarge(t *testing.T) {
	_, err := fresh().fieldExpression(ast.NewPow(num(2), num(MaxExponent+1)))
	//
	require.Error(t, err)
	//
	var ferr *Error[F]
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, EXPONENT_OUT_OF_BOUNDS, ferr.Code())
}

func TestFoldPowExponentNotSmall(t *testing.T) {
	// p - 1 is a unit, but far too large to be interpreted as an exponent.
	exponent := ast.NewNumber(field.Zero[F]().Sub(field.One[F]()))
	//
	_, err := fresh().fieldExpression(ast.NewPow(num(2), exponent))
	//
	require.Error(t, err)
	//
	var ferr *Error[F]
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, EXPONENT_OUT_OF_BOUNDS, ferr.Code())
}

func TestFoldIfElseTrue(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewIfElse(ast.NewValue[F](true), num(2), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(2)))
}

func TestFoldIfElseFalse(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewIfElse(ast.NewValue[F](false), num(2), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(3)))
}

func TestFoldIfElseUnresolved(t *testing.T) {
	// Condition does not fold, but both branches do.
	cond := ast.NewLt[F](ast.NewIdentifier[F]("x"), num(10))
	e, err := fresh().fieldExpression(ast.NewIfElse(cond, ast.NewAdd(num(1), num(1)), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewIfElse(cond, num(2), num(3))))
}

func TestFunctionCallOpaque(t *testing.T) {
	// Arguments fold, but the call itself never does.
	e, err := fresh().fieldExpression(ast.NewFunctionCall[F]("foo", ast.NewAdd(num(2), num(3))))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewFunctionCall[F]("foo", num(5))))
}

func TestIdentifierSubstitution(t *testing.T) {
	p := fresh()
	p.constants[ast.FieldVariable("x")] = num(2)
	//
	e, err := p.fieldExpression(ast.NewAdd(ast.NewIdentifier[F]("x"), num(3)))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(num(5)))
}

func TestUnknownIdentifierUnchanged(t *testing.T) {
	e, err := fresh().fieldExpression(ast.NewIdentifier[F]("x"))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewIdentifier[F]("x")))
}

func TestNonFoldPreservesOperator(t *testing.T) {
	var (
		x   = ast.NewIdentifier[F]("x")
		sum = ast.NewAdd(num(1), num(1))
	)
	// One operand folds, the other does not: same operator, folded children.
	e, err := fresh().fieldExpression(ast.NewMult(x, sum))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewMult(x, num(2))))
	// Specifically a Mult node, not anything else.
	_, ok := e.(*ast.Mult[F])
	assert.True(t, ok)
}

// ============================================================================
// Boolean expressions
// ============================================================================

func TestFoldEq(t *testing.T) {
	checkComparison(t, ast.NewEq[F](num(2), num(2)), true)
	checkComparison(t, ast.NewEq[F](num(4), num(2)), false)
}

func TestFoldLt(t *testing.T) {
	checkComparison(t, ast.NewLt[F](num(2), num(4)), true)
	checkComparison(t, ast.NewLt[F](num(4), num(2)), false)
}

func TestFoldLe(t *testing.T) {
	checkComparison(t, ast.NewLe[F](num(2), num(2)), true)
	checkComparison(t, ast.NewLe[F](num(4), num(2)), false)
}

func TestFoldGt(t *testing.T) {
	checkComparison(t, ast.NewGt[F](num(5), num(4)), true)
	checkComparison(t, ast.NewGt[F](num(4), num(5)), false)
}

func TestFoldGe(t *testing.T) {
	checkComparison(t, ast.NewGe[F](num(5), num(5)), true)
	checkComparison(t, ast.NewGe[F](num(4), num(5)), false)
}

func TestBoolIdentifierSubstitution(t *testing.T) {
	p := fresh()
	p.constants[ast.BoolVariable("b")] = ast.NewValue[F](true)
	//
	e, err := p.booleanExpression(ast.NewBoolIdentifier[F]("b"))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewValue[F](true)))
}

func TestComparisonNonFold(t *testing.T) {
	x := ast.NewIdentifier[F]("x")
	//
	e, err := fresh().booleanExpression(ast.NewEq[F](x, ast.NewAdd(num(1), num(2))))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewEq[F](x, num(3))))
}

func checkComparison(t *testing.T, e ast.BooleanExpression[F], expected bool) {
	actual, err := fresh().booleanExpression(e)
	//
	require.NoError(t, err)
	assert.True(t, actual.Equals(ast.NewValue[F](expected)), "folding %s", e)
}

// ============================================================================
// Statements
// ============================================================================

func TestDeclarationRetained(t *testing.T) {
	s := ast.NewDeclaration[F](ast.FieldVariable("x"))
	//
	ns, keep, err := fresh().statement(s)
	//
	require.NoError(t, err)
	assert.True(t, keep)
	assert.True(t, ns.Equals(s))
}

func TestConstantDefinitionEliminated(t *testing.T) {
	p := fresh()
	//
	_, keep, err := p.statement(ast.NewDefinition[F](ast.FieldVariable("x"), num(2)))
	//
	require.NoError(t, err)
	assert.False(t, keep)
	// Binding now visible to later statements.
	assert.True(t, p.constants[ast.FieldVariable("x")].Equals(num(2)))
}

func TestNonConstantDefinitionRetained(t *testing.T) {
	var (
		p = fresh()
		e = ast.NewAdd(ast.NewIdentifier[F]("y"), num(1))
	)
	//
	ns, keep, err := p.statement(ast.NewDefinition[F](ast.FieldVariable("x"), e))
	//
	require.NoError(t, err)
	assert.True(t, keep)
	assert.True(t, ns.Equals(ast.NewDefinition[F](ast.FieldVariable("x"), e)))
	// Environment untouched.
	assert.Empty(t, p.constants)
}

func TestConditionRetainedWhenConstant(t *testing.T) {
	// Both sides fold, and the assertion is provably false; it is still
	// retained for the downstream checker to reject.
	s := ast.NewCondition[F](ast.NewAdd(num(1), num(1)), num(3))
	//
	ns, keep, err := fresh().statement(s)
	//
	require.NoError(t, err)
	assert.True(t, keep)
	assert.True(t, ns.Equals(ast.NewCondition[F](num(2), num(3))))
}

func TestMultipleDefinitionRetained(t *testing.T) {
	var (
		p    = fresh()
		vars = []ast.Variable{ast.FieldVariable("a"), ast.FieldVariable("b")}
		call = ast.NewExpressionListCall("foo",
			[]ast.TypedExpression[F]{ast.NewAdd(num(1), num(1))},
			[]ast.Type{ast.FIELD_ELEMENT, ast.FIELD_ELEMENT})
	)
	//
	ns, keep, err := p.statement(ast.NewMultipleDefinition(vars, call))
	//
	require.NoError(t, err)
	assert.True(t, keep)
	// Arguments folded, bound variables never recorded as constants.
	expected := ast.NewExpressionListCall("foo",
		[]ast.TypedExpression[F]{num(2)},
		[]ast.Type{ast.FIELD_ELEMENT, ast.FIELD_ELEMENT})
	assert.True(t, ns.Equals(ast.NewMultipleDefinition(vars, expected)))
	assert.Empty(t, p.constants)
}

func TestLoopPanics(t *testing.T) {
	s := ast.NewFor[F](ast.FieldVariable("i"), field.Zero[F](), field.Uint64[F](10), nil)
	//
	assert.Panics(t, func() {
		_, _, _ = fresh().statement(s)
	})
}

// ============================================================================
// Functions & programs
// ============================================================================

func TestEliminationRoundTrip(t *testing.T) {
	var (
		x  = ast.FieldVariable("x")
		y  = ast.FieldVariable("y")
		fn = ast.TypedFunction[F]{
			Name:        "main",
			ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{
				ast.NewDefinition[F](x, num(2)),
				ast.NewDefinition[F](y, ast.NewAdd(ast.NewIdentifier[F]("x"), num(3))),
				ast.NewReturn[F](ast.NewIdentifier[F]("y")),
			},
		}
	)
	//
	nfn, err := Function(fn, nil)
	//
	require.NoError(t, err)
	require.Len(t, nfn.Statements, 1)
	assert.True(t, nfn.Statements[0].Equals(ast.NewReturn[F](num(5))))
}

func TestScopeIsolation(t *testing.T) {
	var (
		x = ast.FieldVariable("x")
		f = ast.TypedFunction[F]{
			Name:        "f",
			ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{
				ast.NewDefinition[F](x, num(2)),
				ast.NewReturn[F](ast.NewIdentifier[F]("x")),
			},
		}
		// Declares the same name, but its value is a parameter, hence
		// unknown.
		g = ast.TypedFunction[F]{
			Name:        "g",
			Parameters:  []ast.Parameter{ast.NewParameter(x)},
			ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{
				ast.NewReturn[F](ast.NewIdentifier[F]("x")),
			},
		}
	)
	//
	np, err := Program(ast.NewTypedProgram(f, g))
	//
	require.NoError(t, err)
	// f's return folded to a literal
	assert.True(t, np.Functions[0].Statements[0].Equals(ast.NewReturn[F](num(2))))
	// g's x must be untouched by f's binding
	assert.True(t, np.Functions[1].Statements[0].Equals(ast.NewReturn[F](ast.NewIdentifier[F]("x"))))
}

func TestBooleanDefinitionEliminated(t *testing.T) {
	var (
		b  = ast.BoolVariable("b")
		fn = ast.TypedFunction[F]{
			Name:        "main",
			ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{
				ast.NewDefinition[F](b, ast.NewEq[F](num(2), num(2))),
				ast.NewReturn[F](ast.NewIfElse(ast.NewBoolIdentifier[F]("b"), num(1), num(0))),
			},
		}
	)
	//
	nfn, err := Function(fn, nil)
	//
	require.NoError(t, err)
	require.Len(t, nfn.Statements, 1)
	assert.True(t, nfn.Statements[0].Equals(ast.NewReturn[F](num(1))))
}

func TestKindQualifiedKeysDistinct(t *testing.T) {
	// The same surface name bound as a boolean must not satisfy a field
	// identifier lookup.
	p := fresh()
	p.constants[ast.BoolVariable("x")] = ast.NewValue[F](true)
	//
	e, err := p.fieldExpression(ast.NewIdentifier[F]("x"))
	//
	require.NoError(t, err)
	assert.True(t, e.Equals(ast.NewIdentifier[F]("x")))
}

func TestKindMismatchPanics(t *testing.T) {
	// A boolean expression stored under a field key is an upstream bug.
	p := fresh()
	p.constants[ast.FieldVariable("x")] = ast.NewValue[F](true)
	//
	assert.Panics(t, func() {
		_, _ = p.fieldExpression(ast.NewIdentifier[F]("x"))
	})
}

func TestIdempotence(t *testing.T) {
	var (
		x  = ast.FieldVariable("x")
		fn = ast.TypedFunction[F]{
			Name:        "main",
			Parameters:  []ast.Parameter{ast.NewPrivateParameter(ast.FieldVariable("w"))},
			ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{
				ast.NewDefinition[F](x, num(2)),
				ast.NewCondition[F](ast.NewIdentifier[F]("w"), ast.NewIdentifier[F]("x")),
				ast.NewReturn[F](ast.NewMult(ast.NewIdentifier[F]("w"), ast.NewIdentifier[F]("x"))),
			},
		}
	)
	//
	once, err := Program(ast.NewTypedProgram(fn))
	require.NoError(t, err)
	//
	twice, err := Program(once)
	require.NoError(t, err)
	//
	assert.True(t, once.Equals(&twice))
}

func TestDriverPreservesOrderAndSignatures(t *testing.T) {
	var (
		f = ast.TypedFunction[F]{Name: "f", ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
			Statements: []ast.TypedStatement[F]{ast.NewReturn[F](num(1))}}
		g = ast.TypedFunction[F]{Name: "g", ReturnTypes: []ast.Type{ast.BOOLEAN},
			Statements: []ast.TypedStatement[F]{ast.NewReturn[F](ast.NewValue[F](true))}}
	)
	//
	np, err := Program(ast.NewTypedProgram(f, g))
	//
	require.NoError(t, err)
	require.Len(t, np.Functions, 2)
	assert.Equal(t, "f", np.Functions[0].Name)
	assert.Equal(t, "g", np.Functions[1].Name)
	assert.Equal(t, []ast.Type{ast.FIELD_ELEMENT}, np.Functions[0].ReturnTypes)
	assert.Equal(t, []ast.Type{ast.BOOLEAN}, np.Functions[1].ReturnTypes)
}

func TestProgramErrorPropagates(t *testing.T) {
	fn := ast.TypedFunction[F]{
		Name:        "main",
		ReturnTypes: []ast.Type{ast.FIELD_ELEMENT},
		Statements: []ast.TypedStatement[F]{
			ast.NewReturn[F](ast.NewDiv(num(1), num(0))),
		},
	}
	//
	_, err := Program(ast.NewTypedProgram(fn))
	//
	require.Error(t, err)
	//
	var ferr *Error[F]
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, DIVISION_BY_ZERO, ferr.Code())
}
