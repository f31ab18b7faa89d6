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
	"fmt"

	"github.com/consensys/go-zircon/pkg/ast"
	"github.com/consensys/go-zircon/pkg/util/field"
)

// Code identifies the class of a user-detectable failure arising during
// constant folding.  Such failures stem from the user's source program and
// are reported as ordinary compile diagnostics.  In contrast, violations of
// the pass's own preconditions (e.g. a loop construct surviving unrolling)
// are panics, since they indicate a bug in an upstream stage.
type Code uint8

const (
	// DIVISION_BY_ZERO arises when the divisor of a division provably folds
	// to the additive identity.
	DIVISION_BY_ZERO Code = iota
	// EXPONENT_OUT_OF_BOUNDS arises when an exponent does not fold to a
	// non-negative integer of reasonable magnitude (see MaxExponent).
	EXPONENT_OUT_OF_BOUNDS
)

// Error is a structured compile diagnostic which retains the offending
// expression, so the user can locate and fix their program.
type Error[F field.Element[F]] struct {
	code Code
	// Expression where the failure arose.
	expr ast.TypedExpression[F]
	// Diagnostic message being reported.
	msg string
}

// Code returns the failure class of this diagnostic.
func (p *Error[F]) Code() Code {
	return p.code
}

// Expression returns the offending expression.
func (p *Error[F]) Expression() ast.TypedExpression[F] {
	return p.expr
}

// Error implementation for the error interface.
func (p *Error[F]) Error() string {
	return fmt.Sprintf("%s: %s", p.msg, p.expr)
}

func divisionByZero[F field.Element[F]](expr ast.FieldElementExpression[F]) *Error[F] {
	return &Error[F]{DIVISION_BY_ZERO, expr, "division by zero"}
}

func exponentOutOfBounds[F field.Element[F]](expr ast.FieldElementExpression[F]) *Error[F] {
	msg := fmt.Sprintf("exponent not a non-negative integer below %d", MaxExponent)
	//
	return &Error[F]{EXPONENT_OUT_OF_BOUNDS, expr, msg}
}
