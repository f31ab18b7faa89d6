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
package binfile

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-zircon/pkg/ast"
	"github.com/consensys/go-zircon/pkg/util/field"
)

// Operator names used in the wire format.  Field-valued and boolean-valued
// operators are disjoint sets, which is what lets decoding dispatch on the
// operator alone.
var fieldOps = map[string]bool{
	"number": true, "identifier": true, "add": true, "sub": true,
	"mult": true, "div": true, "pow": true, "if": true, "call": true,
}

// ============================================================================
// Decoding
// ============================================================================

func decodeTypedExpression[F field.Element[F]](data jsonExpression) (ast.TypedExpression[F], error) {
	if fieldOps[data.Op] {
		return decodeFieldExpression[F](data)
	}
	//
	return decodeBooleanExpression[F](data)
}

func decodeTypedExpressions[F field.Element[F]](data []jsonExpression) ([]ast.TypedExpression[F], error) {
	exprs := make([]ast.TypedExpression[F], len(data))
	//
	for i, e := range data {
		ne, err := decodeTypedExpression[F](e)
		//
		if err != nil {
			return nil, err
		}
		//
		exprs[i] = ne
	}
	//
	return exprs, nil
}

//nolint:gocyclo
func decodeFieldExpression[F field.Element[F]](data jsonExpression) (ast.FieldElementExpression[F], error) {
	switch data.Op {
	case "number":
		value, err := decodeFieldValue[F](data.Value)
		//
		return ast.NewNumber(value), err
	case "identifier":
		return ast.NewIdentifier[F](data.Name), nil
	case "add":
		return decodeBinary(data, ast.NewAdd[F])
	case "sub":
		return decodeBinary(data, ast.NewSub[F])
	case "mult":
		return decodeBinary(data, ast.NewMult[F])
	case "div":
		return decodeBinary(data, ast.NewDiv[F])
	case "pow":
		return decodeBinary(data, ast.NewPow[F])
	case "if":
		return decodeIfElse[F](data)
	case "call":
		arguments, err := decodeTypedExpressions[F](data.Arguments)
		//
		return ast.NewFunctionCall(data.Name, arguments...), err
	}
	//
	return nil, fmt.Errorf("unknown field operator \"%s\"", data.Op)
}

func decodeBooleanExpression[F field.Element[F]](data jsonExpression) (ast.BooleanExpression[F], error) {
	switch data.Op {
	case "bool":
		if data.Bool == nil {
			return nil, fmt.Errorf("boolean literal missing value")
		}
		//
		return ast.NewValue[F](*data.Bool), nil
	case "bool_identifier":
		return ast.NewBoolIdentifier[F](data.Name), nil
	case "eq":
		return decodeComparison(data, ast.NewEq[F])
	case "lt":
		return decodeComparison(data, ast.NewLt[F])
	case "le":
		return decodeComparison(data, ast.NewLe[F])
	case "gt":
		return decodeComparison(data, ast.NewGt[F])
	case "ge":
		return decodeComparison(data, ast.NewGe[F])
	}
	//
	return nil, fmt.Errorf("unknown boolean operator \"%s\"", data.Op)
}

func decodeBinary[F field.Element[F], E any](data jsonExpression,
	construct func(ast.FieldElementExpression[F], ast.FieldElementExpression[F]) E) (E, error) {
	//
	var empty E
	//
	if data.Left == nil || data.Right == nil {
		return empty, fmt.Errorf("operator \"%s\" missing operand", data.Op)
	}
	//
	left, err := decodeFieldExpression[F](*data.Left)
	//
	if err != nil {
		return empty, err
	}
	//
	right, err := decodeFieldExpression[F](*data.Right)
	//
	if err != nil {
		return empty, err
	}
	//
	return construct(left, right), nil
}

func decodeComparison[F field.Element[F]](data jsonExpression,
	construct func(ast.FieldElementExpression[F], ast.FieldElementExpression[F]) ast.BooleanExpression[F],
) (ast.BooleanExpression[F], error) {
	//
	return decodeBinary(data, construct)
}

func decodeIfElse[F field.Element[F]](data jsonExpression) (ast.FieldElementExpression[F], error) {
	if data.Condition == nil || data.Consequence == nil || data.Alternative == nil {
		return nil, fmt.Errorf("conditional missing branch")
	}
	//
	condition, err := decodeBooleanExpression[F](*data.Condition)
	//
	if err != nil {
		return nil, err
	}
	//
	consequence, err := decodeFieldExpression[F](*data.Consequence)
	//
	if err != nil {
		return nil, err
	}
	//
	alternative, err := decodeFieldExpression[F](*data.Alternative)
	//
	if err != nil {
		return nil, err
	}
	//
	return ast.NewIfElse(condition, consequence, alternative), nil
}

// Parse a decimal string into a field element.  Values at or above the
// modulus are rejected rather than silently reduced, since the front end
// only ever emits canonical representatives.
func decodeFieldValue[F field.Element[F]](text string) (F, error) {
	var (
		value   big.Int
		element F
	)
	//
	if _, ok := value.SetString(text, 10); !ok {
		return element, fmt.Errorf("malformed field value \"%s\"", text)
	} else if value.Sign() < 0 {
		return element, fmt.Errorf("negative field value \"%s\"", text)
	} else if value.Cmp(element.Modulus()) >= 0 {
		return element, fmt.Errorf("field value \"%s\" exceeds modulus", text)
	}
	//
	return field.BigInt[F](value), nil
}

// ============================================================================
// Encoding
// ============================================================================

func encodeTypedExpression[F field.Element[F]](e ast.TypedExpression[F]) (jsonExpression, error) {
	switch e := e.(type) {
	case ast.FieldElementExpression[F]:
		return encodeFieldExpression(e)
	case ast.BooleanExpression[F]:
		return encodeBooleanExpression(e)
	}
	//
	return jsonExpression{}, fmt.Errorf("unknown expression %s", e)
}

func encodeTypedExpressions[F field.Element[F]](es []ast.TypedExpression[F]) ([]jsonExpression, error) {
	data := make([]jsonExpression, len(es))
	//
	for i, e := range es {
		ne, err := encodeTypedExpression(e)
		//
		if err != nil {
			return nil, err
		}
		//
		data[i] = ne
	}
	//
	return data, nil
}

//nolint:gocyclo
func encodeFieldExpression[F field.Element[F]](e ast.FieldElementExpression[F]) (jsonExpression, error) {
	switch e := e.(type) {
	case *ast.Number[F]:
		return jsonExpression{Op: "number", Value: e.Value.Text(10)}, nil
	case *ast.Identifier[F]:
		return jsonExpression{Op: "identifier", Name: e.Name}, nil
	case *ast.Add[F]:
		return encodeBinary("add", e.Left, e.Right)
	case *ast.Sub[F]:
		return encodeBinary("sub", e.Left, e.Right)
	case *ast.Mult[F]:
		return encodeBinary("mult", e.Left, e.Right)
	case *ast.Div[F]:
		return encodeBinary("div", e.Left, e.Right)
	case *ast.Pow[F]:
		return encodeBinary("pow", e.Left, e.Right)
	case *ast.IfElse[F]:
		return encodeIfElse(e)
	case *ast.FunctionCall[F]:
		arguments, err := encodeTypedExpressions(e.Arguments)
		//
		return jsonExpression{Op: "call", Name: e.Name, Arguments: arguments}, err
	}
	//
	return jsonExpression{}, fmt.Errorf("unknown field expression %s", e)
}

func encodeBooleanExpression[F field.Element[F]](e ast.BooleanExpression[F]) (jsonExpression, error) {
	switch e := e.(type) {
	case *ast.Value[F]:
		return jsonExpression{Op: "bool", Bool: &e.Value}, nil
	case *ast.BoolIdentifier[F]:
		return jsonExpression{Op: "bool_identifier", Name: e.Name}, nil
	case *ast.Eq[F]:
		return encodeBinary("eq", e.Left, e.Right)
	case *ast.Lt[F]:
		return encodeBinary("lt", e.Left, e.Right)
	case *ast.Le[F]:
		return encodeBinary("le", e.Left, e.Right)
	case *ast.Gt[F]:
		return encodeBinary("gt", e.Left, e.Right)
	case *ast.Ge[F]:
		return encodeBinary("ge", e.Left, e.Right)
	}
	//
	return jsonExpression{}, fmt.Errorf("unknown boolean expression %s", e)
}

func encodeBinary[F field.Element[F]](op string, left, right ast.FieldElementExpression[F],
) (jsonExpression, error) {
	//
	nleft, err := encodeFieldExpression(left)
	//
	if err != nil {
		return jsonExpression{}, err
	}
	//
	nright, err := encodeFieldExpression(right)
	//
	return jsonExpression{Op: op, Left: &nleft, Right: &nright}, err
}

func encodeIfElse[F field.Element[F]](e *ast.IfElse[F]) (jsonExpression, error) {
	condition, err := encodeBooleanExpression(e.Condition)
	//
	if err != nil {
		return jsonExpression{}, err
	}
	//
	consequence, err := encodeFieldExpression(e.Consequence)
	//
	if err != nil {
		return jsonExpression{}, err
	}
	//
	alternative, err := encodeFieldExpression(e.Alternative)
	//
	return jsonExpression{
		Op:          "if",
		Condition:   &condition,
		Consequence: &consequence,
		Alternative: &alternative,
	}, err
}
