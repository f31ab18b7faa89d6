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

// Package binfile provides the JSON hand-off format in which well-typed,
// unrolled programs arrive from the front end.  Decoding validates the
// operator and type names appearing in the file, since these artifacts can
// be (re)generated or hand-edited outside the compiler; malformed input is
// therefore reported as an ordinary error, never a panic.
package binfile

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-zircon/pkg/ast"
	"github.com/consensys/go-zircon/pkg/util/field"
)

// Decode parses the JSON encoding of a typed program, instantiating its
// field literals in the field F.
func Decode[F field.Element[F]](bytes []byte) (ast.TypedProgram[F], error) {
	var data jsonProgram
	//
	if err := json.Unmarshal(bytes, &data); err != nil {
		return ast.TypedProgram[F]{}, err
	}
	//
	return decodeProgram[F](data)
}

// Encode converts a typed program into its JSON encoding, with field
// literals written as decimal strings of their canonical representatives.
func Encode[F field.Element[F]](p ast.TypedProgram[F]) ([]byte, error) {
	data, err := encodeProgram(p)
	//
	if err != nil {
		return nil, err
	}
	//
	return json.MarshalIndent(data, "", "  ")
}

// ============================================================================
// JSON data model
// ============================================================================

type jsonProgram struct {
	Functions []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	Name       string          `json:"name"`
	Parameters []jsonParameter `json:"parameters,omitempty"`
	Returns    []string        `json:"returns,omitempty"`
	Statements []jsonStatement `json:"statements"`
}

type jsonParameter struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Private bool   `json:"private,omitempty"`
}

type jsonVariable struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonStatement struct {
	Stmt   string           `json:"stmt"`
	Var    *jsonVariable    `json:"var,omitempty"`
	Vars   []jsonVariable   `json:"vars,omitempty"`
	Value  *jsonExpression  `json:"value,omitempty"`
	Values []jsonExpression `json:"values,omitempty"`
	Left   *jsonExpression  `json:"left,omitempty"`
	Right  *jsonExpression  `json:"right,omitempty"`
	Call   *jsonCall        `json:"call,omitempty"`
	Start  string           `json:"start,omitempty"`
	End    string           `json:"end,omitempty"`
	Body   []jsonStatement  `json:"body,omitempty"`
}

type jsonCall struct {
	Name      string           `json:"name"`
	Arguments []jsonExpression `json:"arguments,omitempty"`
	Returns   []string         `json:"returns"`
}

type jsonExpression struct {
	Op          string           `json:"op"`
	Value       string           `json:"value,omitempty"`
	Bool        *bool            `json:"bool,omitempty"`
	Name        string           `json:"name,omitempty"`
	Left        *jsonExpression  `json:"left,omitempty"`
	Right       *jsonExpression  `json:"right,omitempty"`
	Condition   *jsonExpression  `json:"condition,omitempty"`
	Consequence *jsonExpression  `json:"consequence,omitempty"`
	Alternative *jsonExpression  `json:"alternative,omitempty"`
	Arguments   []jsonExpression `json:"arguments,omitempty"`
}

// ============================================================================
// Decoding
// ============================================================================

func decodeProgram[F field.Element[F]](data jsonProgram) (ast.TypedProgram[F], error) {
	functions := make([]ast.TypedFunction[F], len(data.Functions))
	//
	for i, fn := range data.Functions {
		nfn, err := decodeFunction[F](fn)
		//
		if err != nil {
			return ast.TypedProgram[F]{}, err
		}
		//
		functions[i] = nfn
	}
	//
	return ast.TypedProgram[F]{Functions: functions}, nil
}

func decodeFunction[F field.Element[F]](data jsonFunction) (ast.TypedFunction[F], error) {
	var (
		fn  ast.TypedFunction[F]
		err error
	)
	//
	fn.Name = data.Name
	fn.Parameters = make([]ast.Parameter, len(data.Parameters))
	fn.Statements = make([]ast.TypedStatement[F], len(data.Statements))
	//
	for i, param := range data.Parameters {
		datatype, err := decodeType(param.Type)
		//
		if err != nil {
			return fn, err
		}
		//
		fn.Parameters[i] = ast.Parameter{
			Var:     ast.NewVariable(param.Name, datatype),
			Private: param.Private,
		}
	}
	//
	if fn.ReturnTypes, err = decodeTypes(data.Returns); err != nil {
		return fn, err
	}
	//
	for i, stmt := range data.Statements {
		if fn.Statements[i], err = decodeStatement[F](stmt); err != nil {
			return fn, err
		}
	}
	//
	return fn, nil
}

func decodeStatement[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	switch data.Stmt {
	case "declaration":
		return decodeDeclaration[F](data)
	case "definition":
		return decodeDefinition[F](data)
	case "multi":
		return decodeMultipleDefinition[F](data)
	case "return":
		values, err := decodeTypedExpressions[F](data.Values)
		//
		return &ast.Return[F]{Values: values}, err
	case "condition":
		return decodeCondition[F](data)
	case "for":
		return decodeFor[F](data)
	}
	//
	return nil, fmt.Errorf("unknown statement \"%s\"", data.Stmt)
}

func decodeDeclaration[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	if data.Var == nil {
		return nil, fmt.Errorf("declaration missing variable")
	}
	//
	v, err := decodeVariable(*data.Var)
	//
	return ast.NewDeclaration[F](v), err
}

func decodeDefinition[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	if data.Var == nil || data.Value == nil {
		return nil, fmt.Errorf("definition missing variable or value")
	}
	//
	v, err := decodeVariable(*data.Var)
	//
	if err != nil {
		return nil, err
	}
	//
	value, err := decodeTypedExpression[F](*data.Value)
	//
	if err != nil {
		return nil, err
	} else if value.Type() != v.Type {
		return nil, fmt.Errorf("definition of %s has %s value", v, value.Type())
	}
	//
	return ast.NewDefinition(v, value), nil
}

func decodeMultipleDefinition[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	if data.Call == nil {
		return nil, fmt.Errorf("multiple definition missing call")
	}
	//
	vars := make([]ast.Variable, len(data.Vars))
	//
	for i, jv := range data.Vars {
		v, err := decodeVariable(jv)
		//
		if err != nil {
			return nil, err
		}
		//
		vars[i] = v
	}
	//
	arguments, err := decodeTypedExpressions[F](data.Call.Arguments)
	//
	if err != nil {
		return nil, err
	}
	//
	returns, err := decodeTypes(data.Call.Returns)
	//
	if err != nil {
		return nil, err
	}
	//
	return ast.NewMultipleDefinition(vars, ast.NewExpressionListCall(data.Call.Name, arguments, returns)), nil
}

func decodeCondition[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	if data.Left == nil || data.Right == nil {
		return nil, fmt.Errorf("condition missing operand")
	}
	//
	left, err := decodeTypedExpression[F](*data.Left)
	//
	if err != nil {
		return nil, err
	}
	//
	right, err := decodeTypedExpression[F](*data.Right)
	//
	if err != nil {
		return nil, err
	} else if left.Type() != right.Type() {
		return nil, fmt.Errorf("condition compares %s with %s", left.Type(), right.Type())
	}
	//
	return ast.NewCondition(left, right), nil
}

func decodeFor[F field.Element[F]](data jsonStatement) (ast.TypedStatement[F], error) {
	if data.Var == nil {
		return nil, fmt.Errorf("for missing variable")
	}
	//
	v, err := decodeVariable(*data.Var)
	//
	if err != nil {
		return nil, err
	}
	//
	start, err := decodeFieldValue[F](data.Start)
	//
	if err != nil {
		return nil, err
	}
	//
	end, err := decodeFieldValue[F](data.End)
	//
	if err != nil {
		return nil, err
	}
	//
	body := make([]ast.TypedStatement[F], len(data.Body))
	//
	for i, stmt := range data.Body {
		if body[i], err = decodeStatement[F](stmt); err != nil {
			return nil, err
		}
	}
	//
	return ast.NewFor(v, start, end, body), nil
}

func decodeVariable(data jsonVariable) (ast.Variable, error) {
	datatype, err := decodeType(data.Type)
	//
	return ast.NewVariable(data.Name, datatype), err
}

func decodeType(name string) (ast.Type, error) {
	switch name {
	case "field":
		return ast.FIELD_ELEMENT, nil
	case "bool":
		return ast.BOOLEAN, nil
	}
	//
	return 0, fmt.Errorf("unknown type \"%s\"", name)
}

func decodeTypes(names []string) ([]ast.Type, error) {
	types := make([]ast.Type, len(names))
	//
	for i, name := range names {
		datatype, err := decodeType(name)
		//
		if err != nil {
			return nil, err
		}
		//
		types[i] = datatype
	}
	//
	return types, nil
}

// ============================================================================
// Encoding
// ============================================================================

func encodeProgram[F field.Element[F]](p ast.TypedProgram[F]) (jsonProgram, error) {
	functions := make([]jsonFunction, len(p.Functions))
	//
	for i := range p.Functions {
		fn, err := encodeFunction(&p.Functions[i])
		//
		if err != nil {
			return jsonProgram{}, err
		}
		//
		functions[i] = fn
	}
	//
	return jsonProgram{Functions: functions}, nil
}

func encodeFunction[F field.Element[F]](fn *ast.TypedFunction[F]) (jsonFunction, error) {
	data := jsonFunction{
		Name:       fn.Name,
		Parameters: make([]jsonParameter, len(fn.Parameters)),
		Returns:    encodeTypes(fn.ReturnTypes),
		Statements: make([]jsonStatement, len(fn.Statements)),
	}
	//
	for i, param := range fn.Parameters {
		data.Parameters[i] = jsonParameter{
			Name:    param.Var.Name,
			Type:    param.Var.Type.String(),
			Private: param.Private,
		}
	}
	//
	for i, stmt := range fn.Statements {
		nstmt, err := encodeStatement(stmt)
		//
		if err != nil {
			return data, err
		}
		//
		data.Statements[i] = nstmt
	}
	//
	return data, nil
}

func encodeStatement[F field.Element[F]](s ast.TypedStatement[F]) (jsonStatement, error) {
	switch s := s.(type) {
	case *ast.Declaration[F]:
		v := encodeVariable(s.Var)
		//
		return jsonStatement{Stmt: "declaration", Var: &v}, nil
	case *ast.Definition[F]:
		return encodeDefinition(s)
	case *ast.MultipleDefinition[F]:
		return encodeMultipleDefinition(s)
	case *ast.Return[F]:
		values, err := encodeTypedExpressions(s.Values)
		//
		return jsonStatement{Stmt: "return", Values: values}, err
	case *ast.Condition[F]:
		return encodeCondition(s)
	case *ast.For[F]:
		return encodeFor(s)
	}
	//
	return jsonStatement{}, fmt.Errorf("unknown statement %s", s)
}

func encodeDefinition[F field.Element[F]](s *ast.Definition[F]) (jsonStatement, error) {
	v := encodeVariable(s.Var)
	//
	value, err := encodeTypedExpression(s.Value)
	//
	return jsonStatement{Stmt: "definition", Var: &v, Value: &value}, err
}

func encodeMultipleDefinition[F field.Element[F]](s *ast.MultipleDefinition[F]) (jsonStatement, error) {
	call, ok := s.Call.(*ast.ExpressionListCall[F])
	//
	if !ok {
		return jsonStatement{}, fmt.Errorf("unknown expression list %s", s.Call)
	}
	//
	vars := make([]jsonVariable, len(s.Vars))
	//
	for i, v := range s.Vars {
		vars[i] = encodeVariable(v)
	}
	//
	arguments, err := encodeTypedExpressions(call.Arguments)
	//
	if err != nil {
		return jsonStatement{}, err
	}
	//
	return jsonStatement{Stmt: "multi", Vars: vars, Call: &jsonCall{
		Name:      call.Name,
		Arguments: arguments,
		Returns:   encodeTypes(call.ReturnTypes),
	}}, nil
}

func encodeCondition[F field.Element[F]](s *ast.Condition[F]) (jsonStatement, error) {
	left, err := encodeTypedExpression(s.Left)
	//
	if err != nil {
		return jsonStatement{}, err
	}
	//
	right, err := encodeTypedExpression(s.Right)
	//
	return jsonStatement{Stmt: "condition", Left: &left, Right: &right}, err
}

func encodeFor[F field.Element[F]](s *ast.For[F]) (jsonStatement, error) {
	var (
		v    = encodeVariable(s.Var)
		body = make([]jsonStatement, len(s.Body))
		err  error
	)
	//
	for i, stmt := range s.Body {
		if body[i], err = encodeStatement(stmt); err != nil {
			return jsonStatement{}, err
		}
	}
	//
	return jsonStatement{
		Stmt:  "for",
		Var:   &v,
		Start: s.Start.Text(10),
		End:   s.End.Text(10),
		Body:  body,
	}, nil
}

func encodeVariable(v ast.Variable) jsonVariable {
	return jsonVariable{Name: v.Name, Type: v.Type.String()}
}

func encodeTypes(types []ast.Type) []string {
	names := make([]string, len(types))
	//
	for i, t := range types {
		names[i] = t.String()
	}
	//
	return names
}
