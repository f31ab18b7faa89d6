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

// Package propagation implements constant propagation over well-typed,
// loop-free programs.  The pass folds every sub-expression whose operands are
// all compile-time literals down to a single literal, substitutes variables
// proven to hold literals at each use site, and eliminates the definitions of
// such variables from the statement stream.  It performs no algebraic
// simplification: a binary operator folds only when both operands are
// already literals.
package propagation

import (
	"fmt"

	"github.com/consensys/go-zircon/pkg/ast"
	"github.com/consensys/go-zircon/pkg/util/field"
	log "github.com/sirupsen/logrus"
)

// MaxExponent bounds the exponents this pass is willing to fold.  Downstream
// flattening materialises one constraint per multiplication, so anything
// beyond this is already far past a usable circuit size.
const MaxExponent uint64 = 1 << 20

// Program applies constant propagation to an entire program, processing
// functions in declaration order.  Each function is propagated against a
// fresh constant environment, so nothing ever leaks across function
// boundaries.  Functions already propagated are made available (read-only) to
// those which follow.
func Program[F field.Element[F]](p ast.TypedProgram[F]) (ast.TypedProgram[F], error) {
	var functions []ast.TypedFunction[F]
	//
	for _, fn := range p.Functions {
		nfn, err := Function(fn, functions)
		// Sanity check for errors
		if err != nil {
			return ast.TypedProgram[F]{}, err
		}
		//
		functions = append(functions, nfn)
	}
	//
	return ast.TypedProgram[F]{Functions: functions}, nil
}

// Function applies constant propagation to a single function body, given a
// read-only view of the functions propagated before it.  Statements whose
// right-hand side folds to a literal are dropped from the output sequence;
// everything else is retained in order, with its expressions rewritten.
func Function[F field.Element[F]](fn ast.TypedFunction[F],
	functions []ast.TypedFunction[F]) (ast.TypedFunction[F], error) {
	//
	var (
		p = &propagator[F]{
			constants: make(map[ast.Variable]ast.TypedExpression[F]),
			functions: functions,
		}
		statements = make([]ast.TypedStatement[F], 0, len(fn.Statements))
	)
	//
	for _, s := range fn.Statements {
		ns, keep, err := p.statement(s)
		// Sanity check for errors
		if err != nil {
			return ast.TypedFunction[F]{}, err
		} else if keep {
			statements = append(statements, ns)
		}
	}
	//
	log.Debugf("propagated function %s: %d statements in, %d out, %d constants found",
		fn.Name, len(fn.Statements), len(statements), len(p.constants))
	// Replace statement list, leaving signature untouched.
	fn.Statements = statements
	//
	return fn, nil
}

// propagator threads the state needed whilst propagating one function body:
// the constant environment owned by statement processing, and the read-only
// list of previously propagated functions.  Expression propagation never
// writes to the environment; only Definition processing inserts into it.
type propagator[F field.Element[F]] struct {
	constants map[ast.Variable]ast.TypedExpression[F]
	functions []ast.TypedFunction[F]
}

// Statement processing.  Returns the rewritten statement along with a flag
// indicating whether it should be retained in the output sequence.
func (p *propagator[F]) statement(s ast.TypedStatement[F]) (ast.TypedStatement[F], bool, error) {
	switch s := s.(type) {
	case *ast.Declaration[F]:
		// Carries no value, hence nothing to do.
		return s, true, nil
	case *ast.Definition[F]:
		return p.definition(s)
	case *ast.MultipleDefinition[F]:
		// A call's return values are never known constants, so the bound
		// variables stay out of the environment.
		call, err := p.expressionList(s.Call)
		//
		return ast.NewMultipleDefinition(s.Vars, call), true, err
	case *ast.Return[F]:
		values, err := p.expressions(s.Values)
		//
		return &ast.Return[F]{Values: values}, true, err
	case *ast.Condition[F]:
		// An assertion over two known-unequal literals could be rejected
		// here; that is left for the downstream constraint checker.
		left, err := p.expression(s.Left)
		//
		if err != nil {
			return nil, false, err
		}
		//
		right, err := p.expression(s.Right)
		//
		return ast.NewCondition(left, right), true, err
	case *ast.For[F]:
		panic("loop construct encountered (loops must be unrolled before propagation)")
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown statement: %s", s))
}

// Definition processing.  When the right-hand side folds to a literal, the
// binding is recorded in the environment and the statement is eliminated;
// otherwise the statement is retained with its rewritten right-hand side.
// Observe that a non-constant definition never invalidates unrelated entries.
func (p *propagator[F]) definition(s *ast.Definition[F]) (ast.TypedStatement[F], bool, error) {
	value, err := p.expression(s.Value)
	//
	if err != nil {
		return nil, false, err
	} else if ast.IsLiteral(value) {
		p.constants[s.Var] = value
		//
		return nil, false, nil
	}
	//
	return ast.NewDefinition(s.Var, value), true, nil
}

// Expression propagation.  This is purely functional: it reads the constant
// environment but never writes to it, and produces a new expression of the
// same kind as its input.
func (p *propagator[F]) expression(e ast.TypedExpression[F]) (ast.TypedExpression[F], error) {
	switch e := e.(type) {
	case ast.FieldElementExpression[F]:
		return p.fieldExpression(e)
	case ast.BooleanExpression[F]:
		return p.booleanExpression(e)
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown expression: %s", e))
}

func (p *propagator[F]) expressions(es []ast.TypedExpression[F]) ([]ast.TypedExpression[F], error) {
	nes := make([]ast.TypedExpression[F], len(es))
	//
	for i, e := range es {
		ne, err := p.expression(e)
		//
		if err != nil {
			return nil, err
		}
		//
		nes[i] = ne
	}
	//
	return nes, nil
}

//nolint:gocyclo
func (p *propagator[F]) fieldExpression(e ast.FieldElementExpression[F]) (ast.FieldElementExpression[F], error) {
	switch e := e.(type) {
	case *ast.Number[F]:
		return e, nil
	case *ast.Identifier[F]:
		return p.fieldIdentifier(e), nil
	case *ast.Add[F]:
		return p.foldBinary(e.Left, e.Right, func(l, r F) F { return l.Add(r) }, ast.NewAdd)
	case *ast.Sub[F]:
		return p.foldBinary(e.Left, e.Right, func(l, r F) F { return l.Sub(r) }, ast.NewSub)
	case *ast.Mult[F]:
		return p.foldBinary(e.Left, e.Right, func(l, r F) F { return l.Mul(r) }, ast.NewMult)
	case *ast.Div[F]:
		return p.div(e)
	case *ast.Pow[F]:
		return p.pow(e)
	case *ast.IfElse[F]:
		return p.ifElse(e)
	case *ast.FunctionCall[F]:
		// Calls are opaque: only their arguments are rewritten, regardless of
		// whether every argument folds to a literal.
		arguments, err := p.expressions(e.Arguments)
		//
		return &ast.FunctionCall[F]{Name: e.Name, Arguments: arguments}, err
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown field expression: %s", e))
}

// Lookup a field identifier in the constant environment, substituting the
// bound literal when one exists.  Kind consistency is guaranteed by upstream
// type checking, hence a boolean binding under a field key is a bug.
func (p *propagator[F]) fieldIdentifier(e *ast.Identifier[F]) ast.FieldElementExpression[F] {
	if c, ok := p.constants[ast.FieldVariable(e.Name)]; ok {
		n, ok := c.(*ast.Number[F])
		//
		if !ok {
			panic(fmt.Sprintf("constant bound to field variable %s has boolean kind", e.Name))
		}
		//
		return n
	}
	// Not (yet) known to be constant.
	return e
}

// Fold a binary arithmetic operator when both propagated operands are
// literals, rebuilding the same operator over the propagated operands
// otherwise.
func (p *propagator[F]) foldBinary(left, right ast.FieldElementExpression[F], op func(F, F) F,
	rebuild func(ast.FieldElementExpression[F], ast.FieldElementExpression[F]) ast.FieldElementExpression[F],
) (ast.FieldElementExpression[F], error) {
	//
	nleft, nright, err := p.operands(left, right)
	//
	if err != nil {
		return nil, err
	}
	//
	if l, r := nleft.AsConstant(), nright.AsConstant(); l != nil && r != nil {
		return ast.NewNumber(op(*l, *r)), nil
	}
	//
	return rebuild(nleft, nright), nil
}

// Division folds via the multiplicative inverse of the divisor.  A divisor
// which provably folds to zero is a compile error, since zero has no inverse
// in the field.
func (p *propagator[F]) div(e *ast.Div[F]) (ast.FieldElementExpression[F], error) {
	nleft, nright, err := p.operands(e.Left, e.Right)
	//
	if err != nil {
		return nil, err
	}
	//
	if l, r := nleft.AsConstant(), nright.AsConstant(); l != nil && r != nil {
		if (*r).IsZero() {
			return nil, divisionByZero(ast.NewDiv(nleft, nright))
		}
		//
		return ast.NewNumber((*l).Mul((*r).Inverse())), nil
	}
	//
	return ast.NewDiv(nleft, nright), nil
}

// Exponentiation folds by repeated squaring, interpreting the exponent
// literal as a non-negative integer.  Exponents beyond MaxExponent are a
// compile error rather than an invitation to grind the compiler.
func (p *propagator[F]) pow(e *ast.Pow[F]) (ast.FieldElementExpression[F], error) {
	nleft, nright, err := p.operands(e.Left, e.Right)
	//
	if err != nil {
		return nil, err
	}
	//
	if l, r := nleft.AsConstant(), nright.AsConstant(); l != nil && r != nil {
		exponent := *r
		//
		if !exponent.IsUint64() || exponent.Uint64() > MaxExponent {
			return nil, exponentOutOfBounds(ast.NewPow(nleft, nright))
		}
		//
		return ast.NewNumber(field.Pow(*l, exponent.Uint64())), nil
	}
	//
	return ast.NewPow(nleft, nright), nil
}

// Conditionals propagate all three children unconditionally; folding is
// side-effect free, so folding the branch that ends up discarded is safe.
// Once the condition folds to a literal the conditional collapses to the
// corresponding branch.
func (p *propagator[F]) ifElse(e *ast.IfElse[F]) (ast.FieldElementExpression[F], error) {
	condition, err := p.booleanExpression(e.Condition)
	//
	if err != nil {
		return nil, err
	}
	//
	consequence, err := p.fieldExpression(e.Consequence)
	//
	if err != nil {
		return nil, err
	}
	//
	alternative, err := p.fieldExpression(e.Alternative)
	//
	if err != nil {
		return nil, err
	}
	//
	if c := condition.AsBool(); c != nil {
		if *c {
			return consequence, nil
		}
		//
		return alternative, nil
	}
	//
	return ast.NewIfElse(condition, consequence, alternative), nil
}

func (p *propagator[F]) booleanExpression(e ast.BooleanExpression[F]) (ast.BooleanExpression[F], error) {
	switch e := e.(type) {
	case *ast.Value[F]:
		return e, nil
	case *ast.BoolIdentifier[F]:
		return p.boolIdentifier(e), nil
	case *ast.Eq[F]:
		return p.foldComparison(e.Left, e.Right, func(c int) bool { return c == 0 }, ast.NewEq)
	case *ast.Lt[F]:
		return p.foldComparison(e.Left, e.Right, func(c int) bool { return c < 0 }, ast.NewLt)
	case *ast.Le[F]:
		return p.foldComparison(e.Left, e.Right, func(c int) bool { return c <= 0 }, ast.NewLe)
	case *ast.Gt[F]:
		return p.foldComparison(e.Left, e.Right, func(c int) bool { return c > 0 }, ast.NewGt)
	case *ast.Ge[F]:
		return p.foldComparison(e.Left, e.Right, func(c int) bool { return c >= 0 }, ast.NewGe)
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown boolean expression: %s", e))
}

func (p *propagator[F]) boolIdentifier(e *ast.BoolIdentifier[F]) ast.BooleanExpression[F] {
	if c, ok := p.constants[ast.BoolVariable(e.Name)]; ok {
		v, ok := c.(*ast.Value[F])
		//
		if !ok {
			panic(fmt.Sprintf("constant bound to boolean variable %s has field kind", e.Name))
		}
		//
		return v
	}
	// Not (yet) known to be constant.
	return e
}

// Fold a comparison over two field operands when both propagated operands
// are literals, using the order induced by their canonical integer
// representatives.
func (p *propagator[F]) foldComparison(left, right ast.FieldElementExpression[F], cmp func(int) bool,
	rebuild func(ast.FieldElementExpression[F], ast.FieldElementExpression[F]) ast.BooleanExpression[F],
) (ast.BooleanExpression[F], error) {
	//
	nleft, nright, err := p.operands(left, right)
	//
	if err != nil {
		return nil, err
	}
	//
	if l, r := nleft.AsConstant(), nright.AsConstant(); l != nil && r != nil {
		return ast.NewValue[F](cmp((*l).Cmp(*r))), nil
	}
	//
	return rebuild(nleft, nright), nil
}

func (p *propagator[F]) expressionList(l ast.TypedExpressionList[F]) (ast.TypedExpressionList[F], error) {
	if l, ok := l.(*ast.ExpressionListCall[F]); ok {
		arguments, err := p.expressions(l.Arguments)
		//
		return ast.NewExpressionListCall(l.Name, arguments, l.ReturnTypes), err
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown expression list: %s", l))
}

// Propagate both operands of a binary node, in left-to-right order.
func (p *propagator[F]) operands(left, right ast.FieldElementExpression[F],
) (ast.FieldElementExpression[F], ast.FieldElementExpression[F], error) {
	//
	nleft, err := p.fieldExpression(left)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	nright, err := p.fieldExpression(right)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	return nleft, nright, nil
}
