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

import "fmt"

// Type determines the value kind of an expression or variable.  The source
// language has exactly two kinds: elements of the underlying prime field, and
// booleans (which only ever arise from comparisons, literals or identifiers).
type Type uint8

const (
	// FIELD_ELEMENT is the type of prime field values.
	FIELD_ELEMENT Type = iota
	// BOOLEAN is the type of truth values.
	BOOLEAN
)

func (t Type) String() string {
	switch t {
	case FIELD_ELEMENT:
		return "field"
	case BOOLEAN:
		return "bool"
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown type: %d", t))
}
