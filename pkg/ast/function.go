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

// Parameter describes a single formal parameter of a function.  Parameters
// marked private correspond to prover-supplied witness values and those
// public to values visible to the verifier; either way the flag is inert to
// the middle end and simply round-trips through it.
type Parameter struct {
	Var     Variable
	Private bool
}

// NewParameter constructs a (public) function parameter.
func NewParameter(v Variable) Parameter {
	return Parameter{v, false}
}

// NewPrivateParameter constructs a private (witness) function parameter.
func NewPrivateParameter(v Variable) Parameter {
	return Parameter{v, true}
}

// TypedFunction describes a single function: its signature and the ordered
// statement sequence making up its body.
type TypedFunction[F field.Element[F]] struct {
	// Name of this function
	Name string
	// Formal parameters, in declaration order
	Parameters []Parameter
	// Kinds of the values this function returns
	ReturnTypes []Type
	// Body of this function, in program order
	Statements []TypedStatement[F]
}

// Equals determines whether two functions are structurally equivalent.
func (p *TypedFunction[F]) Equals(o *TypedFunction[F]) bool {
	if p.Name != o.Name || len(p.Parameters) != len(o.Parameters) ||
		len(p.ReturnTypes) != len(o.ReturnTypes) {
		return false
	}
	//
	for i := range len(p.Parameters) {
		if p.Parameters[i] != o.Parameters[i] {
			return false
		}
	}
	//
	for i := range len(p.ReturnTypes) {
		if p.ReturnTypes[i] != o.ReturnTypes[i] {
			return false
		}
	}
	//
	return StatementsEqual(p.Statements, o.Statements)
}
