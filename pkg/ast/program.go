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

// TypedProgram encapsulates one or more functions, such that one may call
// another.  Declaration order is significant: later functions may call
// earlier ones, and middle-end passes process functions in this order.
type TypedProgram[F field.Element[F]] struct {
	Functions []TypedFunction[F]
}

// NewTypedProgram constructs a program from a given set of functions.
func NewTypedProgram[F field.Element[F]](functions ...TypedFunction[F]) TypedProgram[F] {
	return TypedProgram[F]{functions}
}

// Function returns the first function with a given name, or nil if no such
// function exists.
func (p *TypedProgram[F]) Function(name string) *TypedFunction[F] {
	for i := range p.Functions {
		if p.Functions[i].Name == name {
			return &p.Functions[i]
		}
	}
	//
	return nil
}

// Equals determines whether two programs are structurally equivalent.
func (p *TypedProgram[F]) Equals(o *TypedProgram[F]) bool {
	if len(p.Functions) != len(o.Functions) {
		return false
	}
	//
	for i := range len(p.Functions) {
		if !p.Functions[i].Equals(&o.Functions[i]) {
			return false
		}
	}
	//
	return true
}
