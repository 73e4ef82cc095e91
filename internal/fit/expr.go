// Copyright ©2016 Jonathan J Lawlor. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"regexp"
	"strconv"
)

// An Expr is a model term written as a Go expression, such as
// "N * math.Log(N)".  Only float64 literals, known variables, the four
// arithmetic operators, unary +/- and float64 functions from the math
// package are allowed.
//
// Exprs are compiled to reverse polish notation once and evaluated many
// times.
type Expr struct {
	s   string
	rpn []step
}

// step is one element of the compiled RPN program.
type step interface {
	String() string
	apply(stack []float64, vars map[string]float64) []float64
}

var unaryFuncs = map[string]func(float64) float64{
	"Abs":   math.Abs,
	"Acos":  math.Acos,
	"Acosh": math.Acosh,
	"Asin":  math.Asin,
	"Asinh": math.Asinh,
	"Atan":  math.Atan,
	"Atanh": math.Atanh,
	"Cbrt":  math.Cbrt,
	"Ceil":  math.Ceil,
	"Cos":   math.Cos,
	"Cosh":  math.Cosh,
	"Erf":   math.Erf,
	"Erfc":  math.Erfc,
	"Exp":   math.Exp,
	"Exp2":  math.Exp2,
	"Expm1": math.Expm1,
	"Floor": math.Floor,
	"Gamma": math.Gamma,
	"Log":   math.Log,
	"Log10": math.Log10,
	"Log1p": math.Log1p,
	"Log2":  math.Log2,
	"Logb":  math.Logb,
	"Sin":   math.Sin,
	"Sinh":  math.Sinh,
	"Sqrt":  math.Sqrt,
	"Tan":   math.Tan,
	"Tanh":  math.Tanh,
	"Trunc": math.Trunc,
}

var binaryFuncs = map[string]func(float64, float64) float64{
	"Atan2":     math.Atan2,
	"Copysign":  math.Copysign,
	"Dim":       math.Dim,
	"Hypot":     math.Hypot,
	"Max":       math.Max,
	"Min":       math.Min,
	"Mod":       math.Mod,
	"Nextafter": math.Nextafter,
	"Pow":       math.Pow,
	"Remainder": math.Remainder,
}

type literal struct {
	s string
	v float64
}

func (l literal) String() string { return l.s }
func (l literal) apply(stack []float64, _ map[string]float64) []float64 {
	return append(stack, l.v)
}

type variable string

func (v variable) String() string { return string(v) }
func (v variable) apply(stack []float64, vars map[string]float64) []float64 {
	return append(stack, vars[string(v)])
}

type unary struct {
	s string
	f func(float64) float64
}

func (u unary) String() string { return u.s }
func (u unary) apply(stack []float64, _ map[string]float64) []float64 {
	stack[len(stack)-1] = u.f(stack[len(stack)-1])
	return stack
}

type binary struct {
	s string
	f func(float64, float64) float64
}

func (b binary) String() string { return b.s }
func (b binary) apply(stack []float64, _ map[string]float64) []float64 {
	l := len(stack)
	stack[l-2] = b.f(stack[l-2], stack[l-1])
	return stack[:l-1]
}

var (
	uplus  = unary{"u+", func(x float64) float64 { return x }}
	uminus = unary{"u-", func(x float64) float64 { return -x }}
	add    = binary{"+", func(x, y float64) float64 { return x + y }}
	sub    = binary{"-", func(x, y float64) float64 { return x - y }}
	mul    = binary{"*", func(x, y float64) float64 { return x * y }}
	quo    = binary{"/", func(x, y float64) float64 { return x / y }}
)

// String returns the source text of the expression.
func (e *Expr) String() string { return e.s }

// Eval evaluates the expression.  Variables missing from vars are zero.
func (e *Expr) Eval(vars map[string]float64) float64 {
	stack := make([]float64, 0, len(e.rpn))
	for _, st := range e.rpn {
		stack = st.apply(stack, vars)
	}
	return stack[0]
}

// NamedVars returns the names of the capture groups in re.
func NamedVars(re *regexp.Regexp) map[string]struct{} {
	vars := make(map[string]struct{})
	for _, n := range re.SubexpNames() {
		if n != "" {
			vars[n] = struct{}{}
		}
	}
	return vars
}

// ParseExpr compiles a single expression over the given variables.
func ParseExpr(expr string, vars map[string]struct{}) (*Expr, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}
	c := compiler{vars: vars}
	c.walk(node)
	if c.err != nil {
		return nil, fmt.Errorf("%s: %w", expr, c.err)
	}
	// leaves push one value and binary steps pop one
	depth := 0
	for _, st := range c.out {
		switch st.(type) {
		case literal, variable:
			depth++
		case binary:
			depth--
		}
	}
	if depth != 1 {
		return nil, fmt.Errorf("%s: not a single value", expr)
	}
	return &Expr{s: expr, rpn: c.out}, nil
}

// ParseTerms compiles a comma separated list of expressions, as in
// "N * N, N, 1.0".
func ParseTerms(list string, vars map[string]struct{}) ([]*Expr, error) {
	src := "[]float64{" + list + "}"
	node, err := parser.ParseExpr(src)
	if err != nil {
		return nil, err
	}
	lit, ok := node.(*ast.CompositeLit)
	if !ok {
		return nil, fmt.Errorf("%s: not a list of terms", list)
	}
	if len(lit.Elts) == 0 {
		return nil, errors.New("no terms")
	}
	terms := make([]*Expr, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		// positions are 1-based offsets into src
		e, err := ParseExpr(src[elt.Pos()-1:elt.End()-1], vars)
		if err != nil {
			return nil, err
		}
		terms = append(terms, e)
	}
	return terms, nil
}

type compiler struct {
	vars map[string]struct{}
	out  []step
	err  error
}

func (c *compiler) walk(node ast.Expr) {
	if c.err != nil {
		return
	}
	switch t := node.(type) {
	case *ast.ParenExpr:
		c.walk(t.X)
	case *ast.BasicLit:
		if t.Kind != token.INT && t.Kind != token.FLOAT {
			c.err = errors.New("non numeric literal " + t.Value)
			return
		}
		v, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			c.err = err
			return
		}
		c.out = append(c.out, literal{t.Value, v})
	case *ast.Ident:
		if _, ok := c.vars[t.Name]; !ok {
			c.err = errors.New("unknown variable: " + t.Name)
			return
		}
		c.out = append(c.out, variable(t.Name))
	case *ast.CallExpr:
		sel, ok := t.Fun.(*ast.SelectorExpr)
		if !ok {
			c.err = errors.New("unknown function call")
			return
		}
		if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != "math" {
			c.err = errors.New("only math package functions are allowed")
			return
		}
		name := sel.Sel.Name
		if f, ok := unaryFuncs[name]; ok && len(t.Args) == 1 {
			c.walk(t.Args[0])
			c.out = append(c.out, unary{"math." + name, f})
			return
		}
		if f, ok := binaryFuncs[name]; ok && len(t.Args) == 2 {
			c.walk(t.Args[0])
			c.walk(t.Args[1])
			c.out = append(c.out, binary{"math." + name, f})
			return
		}
		c.err = fmt.Errorf("unknown math function math.%s/%d", name, len(t.Args))
	case *ast.UnaryExpr:
		c.walk(t.X)
		switch t.Op {
		case token.ADD:
			c.out = append(c.out, uplus)
		case token.SUB:
			c.out = append(c.out, uminus)
		default:
			c.err = errors.New("unrecognized unary operator: " + t.Op.String())
		}
	case *ast.BinaryExpr:
		c.walk(t.X)
		c.walk(t.Y)
		switch t.Op {
		case token.ADD:
			c.out = append(c.out, add)
		case token.SUB:
			c.out = append(c.out, sub)
		case token.MUL:
			c.out = append(c.out, mul)
		case token.QUO:
			c.out = append(c.out, quo)
		default:
			c.err = errors.New("unrecognized binary operator: " + t.Op.String())
		}
	default:
		c.err = fmt.Errorf("unsupported expression %T", node)
	}
}
