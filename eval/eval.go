package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/scl-format/debug"
	"github.com/signadot/scl-format/gomap"
	"github.com/signadot/scl-format/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env returns the variables an expression over doc sees.
func Env(doc *ir.Node) map[string]any {
	env := gomap.ToMap(doc)
	if env == nil {
		env = map[string]any{}
	}
	return env
}

// Eval evaluates expression over doc and converts the result to a node.
func Eval(doc *ir.Node, expression string) (*ir.Node, error) {
	res, err := run(doc, expression)
	if err != nil {
		return nil, err
	}
	y, err := gomap.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, expression, err)
	}
	return y, nil
}

// Bool evaluates a boolean expression over doc.
func Bool(doc *ir.Node, expression string) (bool, error) {
	res, err := run(doc, expression, expr.AsBool())
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, expression, res)
	}
	return b, nil
}

func run(doc *ir.Node, expression string, opts ...expr.Option) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q on\n%s", expression, doc)
	}
	env := Env(doc)
	compileOpts := append(exprOpts(doc), expr.Env(env))
	compileOpts = append(compileOpts, opts...)
	program, err := expr.Compile(expression, compileOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %v", expression, res)
	}
	return res, nil
}
