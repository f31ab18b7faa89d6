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

// Variable describes a named value of a given kind.  Two variables with the
// same name but different kinds are distinct, since the same surface name can
// be declared with either kind in source.  Variables are comparable and are
// used directly as map keys (e.g. for the constant environment during
// propagation).
type Variable struct {
	// Name of the variable
	Name string
	// Kind of value this variable holds
	Type Type
}

// NewVariable constructs a new variable of a given name and kind.
func NewVariable(name string, datatype Type) Variable {
	return Variable{name, datatype}
}

// FieldVariable constructs a variable holding a field element.
func FieldVariable(name string) Variable {
	return Variable{name, FIELD_ELEMENT}
}

// BoolVariable constructs a variable holding a truth value.
func BoolVariable(name string) Variable {
	return Variable{name, BOOLEAN}
}

func (v Variable) String() string {
	return fmt.Sprintf("%s %s", v.Type, v.Name)
}
