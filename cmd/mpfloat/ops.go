package main

import (
	"fmt"

	bigfloat "github.com/BrianGladman/mpfloat"
)

// operation describes one named entry point into the library: how many
// decimal operands it takes (via float64, §6.5's declared I/O boundary)
// and how to compute the result at a given working precision and mode.
type operation struct {
	arity int
	eval  func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy)
}

func unary(f func(z, x *bigfloat.Float) bigfloat.Accuracy) operation {
	return operation{
		arity: 1,
		eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) {
			x := newOperand(prec, mode, args[0])
			z := bigfloat.NewFloat(prec, mode)
			acc := f(z, x)
			return z, acc
		},
	}
}

func binary(f func(z, x, y *bigfloat.Float) bigfloat.Accuracy) operation {
	return operation{
		arity: 2,
		eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) {
			x := newOperand(prec, mode, args[0])
			y := newOperand(prec, mode, args[1])
			z := bigfloat.NewFloat(prec, mode)
			acc := f(z, x, y)
			return z, acc
		},
	}
}

func newOperand(prec uint, mode bigfloat.RoundingMode, v float64) *bigfloat.Float {
	x := bigfloat.NewFloat(prec, mode)
	x.SetFloat64(v)
	return x
}

// operations is the CLI's whole dispatch table, covering every
// transcendental and arithmetic entry point in the library. Names are
// lowercase and match the spec's own operation vocabulary rather than
// the Go method names, since this table is the shell-facing surface.
var operations = map[string]operation{
	"add": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Add(x, y) }),
	"sub": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Sub(x, y) }),
	"mul": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Mul(x, y) }),
	"div": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Div(x, y) }),
	"pow": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Pow(x, y) }),

	"sqrt": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Sqrt(x) }),
	"cbrt": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Cbrt(x) }),
	"exp":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Exp(x) }),
	"log":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Log(x) }),

	"sin":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Sin(x) }),
	"cos":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Cos(x) }),
	"tan":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Tan(x) }),
	"asin": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Asin(x) }),
	"acos": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Acos(x) }),
	"atan": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Atan(x) }),

	"sinh":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Sinh(x) }),
	"cosh":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Cosh(x) }),
	"tanh":  unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Tanh(x) }),
	"asinh": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Asinh(x) }),
	"acosh": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Acosh(x) }),
	"atanh": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Atanh(x) }),

	"expm1": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Expm1(x) }),
	"log1p": unary(func(z, x *bigfloat.Float) bigfloat.Accuracy { return z.Log1p(x) }),

	"atan2": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return bigfloat.Atan2(z, x, y) }),
	"hypot": binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return bigfloat.Hypot(z, x, y) }),
	"min":   binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Min(x, y) }),
	"max":   binary(func(z, x, y *bigfloat.Float) bigfloat.Accuracy { return z.Max(x, y) }),

	"pi":    {arity: 0, eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) { return bigfloat.Pi(prec), bigfloat.Exact }},
	"log2":  {arity: 0, eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) { return bigfloat.Log2(prec), bigfloat.Exact }},
	"gamma": {arity: 0, eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) { return bigfloat.EulerGamma(prec), bigfloat.Exact }},
	"catalan": {arity: 0, eval: func(prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy) {
		return bigfloat.Catalan(prec), bigfloat.Exact
	}},
}

// run evaluates the named operation against decimal operands, using
// strconv-parsed float64 as the package's only conversion boundary
// to/from decimal text (no SetString/String exists on Float, by
// design — see DESIGN.md).
func run(name string, prec uint, mode bigfloat.RoundingMode, args []float64) (*bigfloat.Float, bigfloat.Accuracy, error) {
	op, ok := operations[name]
	if !ok {
		return nil, 0, fmt.Errorf("unknown operation %q", name)
	}
	if len(args) != op.arity {
		return nil, 0, fmt.Errorf("operation %q takes %d operand(s), got %d", name, op.arity, len(args))
	}
	z, acc := op.eval(prec, mode, args)
	return z, acc, nil
}
